package usecase

import (
	"context"
	"fmt"

	"maintenance-task-parser/internal/model"
	"maintenance-task-parser/pkg/gcalendar"
)

// exportDueDate creates an all-day calendar event for a record whose date
// resolved, so the due date shows up where the requester plans their week.
func (uc *implUseCase) exportDueDate(ctx context.Context, line string, task *model.ParsedTask) (string, error) {
	summary := fmt.Sprintf("%s maintenance", task.TaskType)
	if task.Asset != nil {
		summary = fmt.Sprintf("%s: %s", task.TaskType, *task.Asset)
	}

	description := line
	if task.Location != nil {
		description = fmt.Sprintf("%s\nLocation: %s", line, *task.Location)
	}

	event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.CreateAllDayEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: description,
		Date:        *task.DueDate,
	})
	if err != nil {
		return "", err
	}
	return event.HTMLLink, nil
}
