package usecase

import (
	"context"
	"testing"
	"time"

	"maintenance-task-parser/internal/parser"
	"maintenance-task-parser/pkg/datemath"
	"maintenance-task-parser/pkg/gcalendar"
	"maintenance-task-parser/pkg/nlpsvc"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockNLP struct {
	nounFunc func(text string) ([]nlpsvc.Token, error)
	dateFunc func(text string) ([]nlpsvc.Entity, error)

	nounCalls int
	dateCalls int
}

func (m *mockNLP) NounTokens(ctx context.Context, text string) ([]nlpsvc.Token, error) {
	m.nounCalls++
	if m.nounFunc == nil {
		return nil, nil
	}
	return m.nounFunc(text)
}

func (m *mockNLP) DateEntities(ctx context.Context, text string) ([]nlpsvc.Entity, error) {
	m.dateCalls++
	if m.dateFunc == nil {
		return nil, nil
	}
	return m.dateFunc(text)
}

type mockCalendar struct {
	createFunc func(req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error)
	calls      []gcalendar.CreateAllDayEventRequest
}

func (m *mockCalendar) CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	if m.createFunc == nil {
		return &gcalendar.Event{ID: "evt-1", HTMLLink: "https://calendar.google.com/evt-1", Date: req.Date}, nil
	}
	return m.createFunc(req)
}

// testBase is a fixed Wednesday so weekday arithmetic is deterministic.
var testBase = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, nlp nlpsvc.INLPService, cal CalendarClient) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to build date parser: %v", err)
	}
	uc := New(&mockLogger{}, parser.DefaultTables(), nlp, dm, cal, "primary")
	uc.clock = func() time.Time { return testBase }
	return uc
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
