package parser

import "maintenance-task-parser/internal/model"

// ParseBatchInput is the raw multi-line request text.
type ParseBatchInput struct {
	Text string
	// CreateEvents asks for a calendar event per record that resolved a due
	// date. Ignored when no calendar client is configured.
	CreateEvents bool
}

// LineResult is the outcome for a single input line. Either Task is set or
// Err explains why this line's parse failed; other lines are unaffected.
type LineResult struct {
	ID        string
	Line      string
	Task      *model.ParsedTask
	EventLink string
	Err       error
}

// ParseBatchOutput holds one result per non-blank input line, in input order.
type ParseBatchOutput struct {
	Results []LineResult
}
