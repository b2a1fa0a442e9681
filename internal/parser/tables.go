package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"maintenance-task-parser/internal/model"
)

// CategoryOrder is the fixed scan order for task-type classification.
// Specific trades come before the catch-all General vocabulary so that
// "broken light" classifies as Electrical, not General.
var CategoryOrder = []model.TaskType{
	model.TaskTypeHvac,
	model.TaskTypeElectrical,
	model.TaskTypePlumbing,
	model.TaskTypeCarpentry,
	model.TaskTypeGeneral,
}

// PriorityTable holds the cue phrase lists checked by the priority
// classifier. Precedence is positional, not alphabetical: downplay and
// negation cues are consulted before any level keywords, then Low before
// High before Medium.
type PriorityTable struct {
	Downplay []string `yaml:"downplay"`
	Negated  []string `yaml:"negated"`
	Low      []string `yaml:"low"`
	High     []string `yaml:"high"`
	Medium   []string `yaml:"medium"`
}

// Tables is the immutable keyword configuration shared by all requests.
// Built once at startup and passed by reference; never mutated afterwards.
type Tables struct {
	Categories        map[model.TaskType][]string `yaml:"categories"`
	GenericAssets     []string                    `yaml:"generic_assets"`
	FixedAssetPhrases []string                    `yaml:"fixed_asset_phrases"`
	Priorities        PriorityTable               `yaml:"priorities"`

	generic map[string]struct{}
}

// DefaultTables returns the built-in keyword configuration.
func DefaultTables() *Tables {
	t := &Tables{
		Categories: map[model.TaskType][]string{
			model.TaskTypeElectrical: {"light", "bulb", "outlet", "socket", "switch", "fixture", "wiring", "breaker", "lamp"},
			model.TaskTypePlumbing:   {"leak", "pipe", "toilet", "sink", "faucet", "drain", "shower"},
			model.TaskTypeHvac:       {"ac", "air conditioner", "vent", "cooling", "heater", "thermostat", "furnace", "hvac"},
			model.TaskTypeCarpentry:  {"door", "window", "handle", "frame", "cabinet", "shelf", "hinge"},
			model.TaskTypeGeneral:    {"broken", "fix", "repair", "maintenance", "issue"},
		},
		GenericAssets:     []string{"leak", "fixture", "broken", "fix", "repair", "issue", "damage", "unit"},
		FixedAssetPhrases: []string{"wet floor sign", "caution sign", "exit sign"},
		Priorities: PriorityTable{
			Downplay: []string{"minor", "not a big deal", "small issue", "trivial"},
			Negated:  []string{"not urgent", "not high priority", "not critical", "not an emergency"},
			Low:      []string{"low priority", "whenever", "no rush", "sometime", "can wait"},
			High:     []string{"high priority", "urgent", "asap", "immediately", "emergency", "critical"},
			Medium:   []string{"medium priority", "normal priority", "soon", "quick", "needs attention"},
		},
	}
	t.index()
	return t
}

// LoadTables reads a YAML override file and merges it over the defaults.
// Sections absent from the file keep their built-in values.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword tables %q: %w", path, err)
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables %q: %w", path, err)
	}

	t := DefaultTables()
	for cat, phrases := range override.Categories {
		if _, known := t.Categories[cat]; !known {
			return nil, fmt.Errorf("keyword tables %q: unknown category %q", path, cat)
		}
		t.Categories[cat] = phrases
	}
	if override.GenericAssets != nil {
		t.GenericAssets = override.GenericAssets
	}
	if override.FixedAssetPhrases != nil {
		t.FixedAssetPhrases = override.FixedAssetPhrases
	}
	if override.Priorities.Downplay != nil {
		t.Priorities.Downplay = override.Priorities.Downplay
	}
	if override.Priorities.Negated != nil {
		t.Priorities.Negated = override.Priorities.Negated
	}
	if override.Priorities.Low != nil {
		t.Priorities.Low = override.Priorities.Low
	}
	if override.Priorities.High != nil {
		t.Priorities.High = override.Priorities.High
	}
	if override.Priorities.Medium != nil {
		t.Priorities.Medium = override.Priorities.Medium
	}

	t.index()
	return t, nil
}

// IsGeneric reports whether the word is too vague to report as an asset
// when a more specific candidate is present.
func (t *Tables) IsGeneric(word string) bool {
	_, ok := t.generic[word]
	return ok
}

func (t *Tables) index() {
	t.generic = make(map[string]struct{}, len(t.GenericAssets))
	for _, w := range t.GenericAssets {
		t.generic[w] = struct{}{}
	}
}
