package logger

// Entry exposes errorEntry fields to the black-box tests.
type Entry struct {
	Message  string
	Metadata map[string]any
}

// CollectErrorEntries exports collectErrorEntries.
func CollectErrorEntries(err error) []Entry {
	var out []Entry
	for _, e := range collectErrorEntries(err) {
		out = append(out, Entry{Message: e.message, Metadata: e.metadata})
	}
	return out
}

// FormatErrorEntries exports formatErrorEntries.
func FormatErrorEntries(entries []Entry) string {
	in := make([]errorEntry, 0, len(entries))
	for _, e := range entries {
		in = append(in, errorEntry{message: e.Message, metadata: e.Metadata})
	}
	return formatErrorEntries(in)
}
