package ports

// Prompter asks the operator questions on the terminal.
//
//go:generate mockgen -source=prompt.go -destination=mocks/mock_prompt.go -package=mocks
type Prompter interface {
	// Confirm asks a yes/no question until it gets a recognizable answer.
	Confirm(question string) (bool, error)

	// Ask asks for a value, returning def when the answer is empty.
	Ask(question, def string) (string, error)
}
