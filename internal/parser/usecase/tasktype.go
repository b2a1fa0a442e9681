package usecase

import (
	"strings"

	"maintenance-task-parser/internal/model"
	"maintenance-task-parser/internal/parser"
)

// classifyTaskType scans the category table in the fixed precedence order
// and returns the first category with a whole-word keyword hit. Vocabulary
// overlaps between trades and the General catch-all, so the order in
// parser.CategoryOrder is load-bearing.
func (uc *implUseCase) classifyTaskType(text string) model.TaskType {
	lowered := strings.ToLower(text)
	for _, cat := range parser.CategoryOrder {
		for _, kw := range uc.tables.Categories[cat] {
			if wholeWordIndex(lowered, kw) >= 0 {
				return cat
			}
		}
	}
	return model.TaskTypeGeneral
}
