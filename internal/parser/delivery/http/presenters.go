package http

import (
	"maintenance-task-parser/internal/model"
	"maintenance-task-parser/internal/parser"
	"maintenance-task-parser/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
	// CreateEvents requests a calendar event per record with a due date.
	CreateEvents bool `json:"create_events"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() parser.ParseBatchInput {
	return parser.ParseBatchInput{
		Text:         r.Text,
		CreateEvents: r.CreateEvents,
	}
}

// --- Response DTOs ---

type taskResp struct {
	TaskType string  `json:"task_type"`
	Location *string `json:"location"`
	Asset    *string `json:"asset"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"`
}

func newTaskResp(task *model.ParsedTask) *taskResp {
	if task == nil {
		return nil
	}
	resp := &taskResp{
		TaskType: string(task.TaskType),
		Location: task.Location,
		Asset:    task.Asset,
		Priority: string(task.Priority),
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(response.DateFormat)
		resp.DueDate = &due
	}
	return resp
}

type lineResultResp struct {
	ID        string    `json:"id"`
	Line      string    `json:"line"`
	Task      *taskResp `json:"task,omitempty"`
	EventLink string    `json:"event_link,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type parseResp struct {
	Results []lineResultResp `json:"results"`
	Count   int              `json:"count"`
}

func (h *handler) newParseResp(out parser.ParseBatchOutput) parseResp {
	results := make([]lineResultResp, len(out.Results))
	for i, res := range out.Results {
		results[i] = lineResultResp{
			ID:        res.ID,
			Line:      res.Line,
			Task:      newTaskResp(res.Task),
			EventLink: res.EventLink,
		}
		if res.Err != nil {
			results[i].Error = res.Err.Error()
		}
	}
	return parseResp{
		Results: results,
		Count:   len(results),
	}
}
