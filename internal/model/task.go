package model

import "time"

// TaskType is the maintenance category of a request.
type TaskType string

const (
	TaskTypeElectrical TaskType = "Electrical"
	TaskTypePlumbing   TaskType = "Plumbing"
	TaskTypeHvac       TaskType = "Hvac"
	TaskTypeCarpentry  TaskType = "Carpentry"
	TaskTypeGeneral    TaskType = "General"
)

// Priority is the urgency level of a request.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsedTask is the structured record extracted from one request sentence.
// TaskType and Priority always carry a value (General / Medium defaults);
// the remaining fields are nil when no pattern matched.
type ParsedTask struct {
	TaskType TaskType
	Location *string
	Asset    *string
	Priority Priority
	DueDate  *time.Time // calendar date only, time-of-day is meaningless here
}
