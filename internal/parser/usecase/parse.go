package usecase

import (
	"context"

	"github.com/google/uuid"

	"maintenance-task-parser/internal/model"
	"maintenance-task-parser/internal/parser"
)

// ParseBatch parses each non-blank line independently. A failed external
// call fails only its own line; the rest of the batch still resolves.
func (uc *implUseCase) ParseBatch(ctx context.Context, ip parser.ParseBatchInput) (parser.ParseBatchOutput, error) {
	lines := splitLines(ip.Text)
	if len(lines) == 0 {
		return parser.ParseBatchOutput{}, parser.ErrEmptyInput
	}

	out := parser.ParseBatchOutput{Results: make([]parser.LineResult, 0, len(lines))}
	for _, line := range lines {
		result := parser.LineResult{ID: uuid.NewString(), Line: line}

		task, err := uc.parseLine(ctx, line)
		if err != nil {
			uc.l.Errorf(ctx, "Failed to parse line %q: %v", line, err)
			result.Err = err
			out.Results = append(out.Results, result)
			continue
		}
		result.Task = task

		if ip.CreateEvents && uc.calendar != nil && task.DueDate != nil {
			link, calErr := uc.exportDueDate(ctx, line, task)
			if calErr != nil {
				// Export is best-effort; the parse itself succeeded.
				uc.l.Warnf(ctx, "Calendar export failed for line %q: %v", line, calErr)
			} else {
				result.EventLink = link
			}
		}

		out.Results = append(out.Results, result)
	}

	uc.l.Infof(ctx, "Parsed %d line(s)", len(out.Results))
	return out, nil
}

// parseLine runs the five extractors over one sentence. The task type is
// computed strictly before the asset because the asset resolver's first
// keyword strategy searches the detected category's list.
func (uc *implUseCase) parseLine(ctx context.Context, line string) (*model.ParsedTask, error) {
	now := uc.clock()

	taskType := uc.classifyTaskType(line)

	asset, err := uc.resolveAsset(ctx, line, taskType)
	if err != nil {
		return nil, err
	}

	dueDate, err := uc.resolveDate(ctx, line, now)
	if err != nil {
		return nil, err
	}

	return &model.ParsedTask{
		TaskType: taskType,
		Location: uc.extractLocation(line),
		Asset:    asset,
		Priority: uc.classifyPriority(line),
		DueDate:  dueDate,
	}, nil
}
