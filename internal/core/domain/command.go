package domain

import "strings"

// Command is a local shell command line.
type Command struct {
	// Line is run through /bin/sh -c.
	Line string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is added on top of the inherited environment.
	Env map[string]string
}

// ShellQuote quotes s for POSIX shells. Words made only of safe characters
// are returned unchanged.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.Trim(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%+=:,./_-") == "" {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// ShellJoin quotes and joins words into a command line.
func ShellJoin(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = ShellQuote(w)
	}
	return strings.Join(quoted, " ")
}
