package usecase

import (
	"context"
	"time"

	"maintenance-task-parser/internal/parser"
	"maintenance-task-parser/pkg/datemath"
	"maintenance-task-parser/pkg/gcalendar"
	pkgLog "maintenance-task-parser/pkg/log"
	"maintenance-task-parser/pkg/nlpsvc"
)

// CalendarClient is the slice of the calendar API the usecase needs.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	tables     *parser.Tables
	nlp        nlpsvc.INLPService
	dateMath   *datemath.Parser
	calendar   CalendarClient // optional, nil disables due-date export
	calendarID string

	clock func() time.Time
}

// New creates a new parser UseCase instance.
func New(
	l pkgLog.Logger,
	tables *parser.Tables,
	nlp nlpsvc.INLPService,
	dateMath *datemath.Parser,
	calendar CalendarClient,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		tables:     tables,
		nlp:        nlp,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		clock:      time.Now,
	}
}
