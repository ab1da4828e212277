package tui

import "time"

// MsgPlan announces the top-level steps of a command before they run.
type MsgPlan struct {
	Steps []string
}

// MsgStepStart is sent when a step begins.
type MsgStepStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries step output. Data may contain partial lines.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete is sent when a step finishes.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
