package usecase

import (
	"regexp"
	"strings"
)

// Location cue patterns. Each is scanned independently; a sentence can
// contribute several fragments. The keyword part is case-insensitive but a
// building letter must be a bare capital, so the (?i:) group is scoped.
var (
	buildingRE = regexp.MustCompile(`\b(?i:building|bldg\.?)\s*[A-Z]\b`)
	suiteRE    = regexp.MustCompile(`(?i)\b(?:suite|ste)\s*\d+\b`)
	roomRE     = regexp.MustCompile(`(?i)\broom\s*\d+\b`)
	bareRoomRE = regexp.MustCompile(`\b\d{3}\b`)
	floorRE    = regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)?\s+floor\b`)
	streetRE   = regexp.MustCompile(`\bon\s+((?:[A-Z][a-z]+\s+)+(?:Street|St\.|Avenue|Ave\.|Road|Rd\.))`)
)

// fixedPlaceREs are landmark phrases reported verbatim, in output order.
var fixedPlaceREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bresidence hall\b`),
	regexp.MustCompile(`(?i)\blobby\b`),
	regexp.MustCompile(`(?i)\bmezzanine\b`),
	regexp.MustCompile(`(?i)\bcorridor\s*\d+\b`),
	regexp.MustCompile(`(?i)\b(?:north|south|east|west)\s+(?:wing|wall)\b`),
}

// extractLocation collects every location fragment found in the text and
// joins them in fragment-kind order. Returns nil when nothing matched.
func (uc *implUseCase) extractLocation(text string) *string {
	var parts []string

	if m := buildingRE.FindString(text); m != "" {
		parts = append(parts, m)
	}

	suite := suiteRE.FindString(text)
	if suite != "" {
		parts = append(parts, suite)
	}

	if m := roomRE.FindString(text); m != "" {
		parts = append(parts, m)
	} else if suite == "" {
		// Bare 3-digit number as a room fallback, only when no explicit
		// room or suite already claimed a number.
		if m := bareRoomRE.FindString(text); m != "" {
			parts = append(parts, m)
		}
	}

	if m := floorRE.FindString(text); m != "" {
		parts = append(parts, m)
	}

	if m := streetRE.FindStringSubmatch(text); m != nil {
		parts = append(parts, strings.TrimSpace(m[1]))
	}

	for _, re := range fixedPlaceREs {
		if m := re.FindString(text); m != "" {
			parts = append(parts, m)
		}
	}

	if len(parts) == 0 {
		return nil
	}
	return strPtr(strings.Join(parts, " | "))
}
