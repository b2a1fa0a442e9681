package datemath_test

import (
	"testing"
	"time"

	"maintenance-task-parser/pkg/datemath"
)

func TestSearchDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name      string
		text      string
		wantTexts []string
		wantDates []time.Time
	}{
		{
			name:      "Weekday inside a sentence",
			text:      "fix the sink by friday please",
			wantTexts: []string{"friday"},
			wantDates: []time.Time{time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:      "Multi word day and month wins over single word",
			text:      "deadline is 15th of July sharp",
			wantTexts: []string{"15th of July"},
			wantDates: []time.Time{time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:      "Vague other-day phrase still surfaces",
			text:      "it happened the other day",
			wantTexts: []string{"the other day"},
			wantDates: []time.Time{time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:      "Plain sentence yields nothing",
			text:      "the sink is broken",
			wantTexts: nil,
			wantDates: nil,
		},
		{
			name:      "Two separate hits",
			text:      "tomorrow or next monday",
			wantTexts: []string{"tomorrow", "next monday"},
			wantDates: []time.Time{
				time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.SearchDates(tt.text, base)
			if len(got) != len(tt.wantTexts) {
				t.Fatalf("SearchDates() returned %d matches, want %d: %+v", len(got), len(tt.wantTexts), got)
			}
			for i, m := range got {
				if m.Text != tt.wantTexts[i] {
					t.Errorf("match %d text = %q, want %q", i, m.Text, tt.wantTexts[i])
				}
				if !m.Date.Equal(tt.wantDates[i]) {
					t.Errorf("match %d date = %v, want %v", i, m.Date, tt.wantDates[i])
				}
			}
		})
	}
}

func TestContainsDateCue(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"fix by friday", true},
		{"due on Tue", true},
		{"15th of July", true},
		{"do it tomorrow", true},
		{"next time", true},
		{"the 3rd one", true},
		{"the sink is broken", false},
		{"room 204 leak", false},
	}
	for _, tt := range tests {
		if got := datemath.ContainsDateCue(tt.text); got != tt.want {
			t.Errorf("ContainsDateCue(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
