package perception

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

// DecodeAssessment parses model output into a HealthAssessment. Models
// sometimes wrap JSON in a markdown fence, which is tolerated. Anything
// else that is not a JSON object with an integer healthScore, a
// non-empty status and a non-empty tip is rejected.
func DecodeAssessment(raw string) (*domain.HealthAssessment, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty model response", domain.ErrUpstreamData)
	}
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("%w: model response is not valid JSON", domain.ErrUpstreamData)
	}

	doc := gjson.Parse(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: model response is not a JSON object", domain.ErrUpstreamData)
	}

	score := doc.Get(fieldHealthScore)
	if score.Type != gjson.Number {
		return nil, fmt.Errorf("%w: %s missing or not a number", domain.ErrUpstreamData, fieldHealthScore)
	}
	if score.Num != math.Trunc(score.Num) {
		return nil, fmt.Errorf("%w: %s %v is not an integer", domain.ErrUpstreamData, fieldHealthScore, score.Num)
	}
	if score.Num < domain.MinHealthScore || score.Num > domain.MaxHealthScore {
		return nil, fmt.Errorf("%w: %s %v outside %d-%d", domain.ErrUpstreamData, fieldHealthScore, score.Num, domain.MinHealthScore, domain.MaxHealthScore)
	}

	status := doc.Get(fieldStatus)
	if status.Type != gjson.String {
		return nil, fmt.Errorf("%w: %s missing or not a string", domain.ErrUpstreamData, fieldStatus)
	}

	tip := doc.Get(fieldTip)
	if tip.Type != gjson.String {
		return nil, fmt.Errorf("%w: %s missing or not a string", domain.ErrUpstreamData, fieldTip)
	}
	if strings.TrimSpace(tip.Str) == "" {
		return nil, fmt.Errorf("%w: empty %s", domain.ErrUpstreamData, fieldTip)
	}

	a := &domain.HealthAssessment{
		HealthScore: int(score.Num),
		Status:      strings.TrimSpace(status.String()),
		Tip:         strings.TrimSpace(tip.String()),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop an info string such as "json"
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
