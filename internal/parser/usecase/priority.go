package usecase

import (
	"strings"

	"maintenance-task-parser/internal/model"
)

// classifyPriority resolves the urgency level. Downplay and negation cues
// are consulted before any level keywords — "not urgent" must never reach
// the High list, where "urgent" would match.
func (uc *implUseCase) classifyPriority(text string) model.Priority {
	lowered := strings.ToLower(text)
	p := uc.tables.Priorities

	for _, cue := range p.Downplay {
		if wholeWordIndex(lowered, cue) >= 0 {
			return model.PriorityLow
		}
	}
	for _, cue := range p.Negated {
		if wholeWordIndex(lowered, cue) >= 0 {
			return model.PriorityLow
		}
	}
	for _, kw := range p.Low {
		if wholeWordIndex(lowered, kw) >= 0 {
			return model.PriorityLow
		}
	}
	for _, kw := range p.High {
		if wholeWordIndex(lowered, kw) >= 0 {
			return model.PriorityHigh
		}
	}
	for _, kw := range p.Medium {
		if wholeWordIndex(lowered, kw) >= 0 {
			return model.PriorityMedium
		}
	}
	return model.PriorityMedium
}
