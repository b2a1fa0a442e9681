package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"maintenance-task-parser/internal/model"
	"maintenance-task-parser/internal/parser"
)

// resolveAsset names the object the request is about. Strategies in order:
// fixed multi-word phrases, adjacent in-category keyword compounds, earliest
// in-category keyword, earliest keyword across all categories, then the NLP
// noun fallback. Requires the task type to be resolved first.
func (uc *implUseCase) resolveAsset(ctx context.Context, text string, taskType model.TaskType) (*string, error) {
	lowered := strings.ToLower(text)

	for _, phrase := range uc.tables.FixedAssetPhrases {
		if wholeWordIndex(lowered, phrase) >= 0 {
			return strPtr(phrase), nil
		}
	}

	categoryKws := uc.tables.Categories[taskType]
	if compound := findCompound(lowered, categoryKws); compound != "" {
		return strPtr(compound), nil
	}

	if kw := uc.earliestKeyword(lowered, categoryKws); kw != "" {
		return strPtr(kw), nil
	}

	var allKws []string
	for _, cat := range parser.CategoryOrder {
		allKws = append(allKws, uc.tables.Categories[cat]...)
	}
	if kw := uc.earliestKeyword(lowered, allKws); kw != "" {
		return strPtr(kw), nil
	}

	nouns, err := uc.nlp.NounTokens(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("noun fallback failed: %w", err)
	}
	for _, tok := range nouns {
		if !uc.tables.IsGeneric(strings.ToLower(tok.Text)) {
			return strPtr(tok.Text), nil
		}
	}
	if len(nouns) > 0 {
		return strPtr(nouns[0].Text), nil
	}

	return nil, nil
}

// findCompound looks for two different category keywords standing next to
// each other ("door handle") and returns them joined by a space.
func findCompound(lowered string, keywords []string) string {
	for _, first := range keywords {
		for _, second := range keywords {
			if first == second {
				continue
			}
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(first) + `\s+` + regexp.QuoteMeta(second) + `\b`)
			if re.MatchString(lowered) {
				return first + " " + second
			}
		}
	}
	return ""
}

// earliestKeyword returns the earliest-positioned whole-word keyword hit.
// With several candidates, generic ones are dropped first — but never down
// to zero: a sentence mentioning only "leak" still reports "leak".
func (uc *implUseCase) earliestKeyword(lowered string, keywords []string) string {
	type candidate struct {
		kw  string
		pos int
	}

	var candidates []candidate
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if pos := wholeWordIndex(lowered, kw); pos >= 0 {
			candidates = append(candidates, candidate{kw: kw, pos: pos})
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	if len(candidates) > 1 {
		var specific []candidate
		for _, c := range candidates {
			if !uc.tables.IsGeneric(c.kw) {
				specific = append(specific, c)
			}
		}
		if len(specific) > 0 {
			candidates = specific
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.pos < best.pos {
			best = c
		}
	}
	return best.kw
}
