// Package extract pulls structured fields out of free-text analysis
// responses: an overall score, a recommendations block, and a risk block.
// Extraction is deliberately best-effort; unmatched fields fall back to
// fixed defaults instead of failing the run.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is what extraction yields for one response text.
type Result struct {
	// Score is the overall score in [1,10]; DefaultScore when unparseable.
	Score int
	// Recommendations is the captured recommendations block, or the
	// placeholder when nothing was captured.
	Recommendations string
	// RiskAssessment is the captured risk block, or the placeholder.
	RiskAssessment string
}

// DefaultScore is substituted when no score in range can be parsed. A
// concrete neutral value, never an absent field.
const DefaultScore = 5

// Placeholders returned when a block could not be located.
const (
	RecommendationsPlaceholder = "권장사항을 추출할 수 없습니다."
	RiskPlaceholder            = "리스크 평가를 추출할 수 없습니다."
)

// scorePatterns are tried in priority order; the first match wins and is
// range-checked. A match outside [1,10] falls back to DefaultScore without
// consulting later patterns.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`종합\s*점수[:：]?\s*(\d+)`),
	regexp.MustCompile(`점수[:：]?\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*점`),
	regexp.MustCompile(`(\d+)\s*/\s*10`),
}

// Block capture markers. A line containing any marker starts the capture;
// capture stops at the next heading line ("#" or "==" prefix). The two
// captures run independently over the same text and may overlap.
var (
	recommendationMarkers = []string{"권장사항", "권장 사항", "제언", "추천", "개선 방안", "recommendation"}
	riskMarkers           = []string{"리스크", "위험", "risk"}
)

// Extract parses a completed response text. It is a pure function: running
// it twice over the same text yields identical results.
func Extract(text string) Result {
	return Result{
		Score:           Score(text),
		Recommendations: block(text, recommendationMarkers, RecommendationsPlaceholder),
		RiskAssessment:  block(text, riskMarkers, RiskPlaceholder),
	}
}

// Score extracts the overall score from text.
func Score(text string) int {
	for _, pattern := range scorePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > 10 {
			return DefaultScore
		}
		return n
	}
	return DefaultScore
}

// block captures the lines following the first marker hit, stopping at the
// next heading. The marker line itself is not captured; markers are matched
// case-insensitively.
func block(text string, markers []string, placeholder string) string {
	var captured []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		if capturing {
			if isHeading(line) {
				break
			}
			captured = append(captured, line)
			continue
		}
		if containsMarker(line, markers) {
			capturing = true
		}
	}

	out := strings.TrimSpace(strings.Join(captured, "\n"))
	if out == "" {
		return placeholder
	}
	return out
}

func isHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "==")
}

func containsMarker(line string, markers []string) bool {
	lower := strings.ToLower(line)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
