// README: Reply cleanup, JSON parsing, and shape validation.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanJSONText removes markdown code-fence markers anywhere in the reply
// (```json / ```) and trims surrounding whitespace. Already-clean input
// passes through unchanged, so the cleanup is idempotent.
func cleanJSONText(input string) string {
	input = strings.ReplaceAll(input, "```json", "")
	input = strings.ReplaceAll(input, "```", "")
	return strings.TrimSpace(input)
}

// ParseReply turns the raw model reply into a validated Itinerary.
// days is the requested trip length the day plans must cover.
func ParseReply(raw string, days int) (*Itinerary, error) {
	cleaned := cleanJSONText(raw)

	var it Itinerary
	if err := json.Unmarshal([]byte(cleaned), &it); err != nil {
		return nil, MalformedPayload(err)
	}
	if err := validateShape(&it, days); err != nil {
		return nil, err
	}
	normalize(&it)
	return &it, nil
}

// validateShape enforces the itinerary invariants the upstream model is asked
// for but cannot be trusted to honour: a non-empty overview, day plans
// covering 1..days with no gaps, a full forecast, and non-empty breakdown and
// places sections.
func validateShape(it *Itinerary, days int) error {
	if strings.TrimSpace(it.Overview) == "" {
		return MalformedItinerary("missing overview")
	}
	if len(it.DayPlans) != days {
		return MalformedItinerary(fmt.Sprintf("expected %d day plans, got %d", days, len(it.DayPlans)))
	}
	for i, p := range it.DayPlans {
		if p.Day != i+1 {
			return MalformedItinerary(fmt.Sprintf("day plans out of sequence at position %d", i+1))
		}
		if len(p.Activities) == 0 {
			return MalformedItinerary(fmt.Sprintf("day %d has no activities", p.Day))
		}
	}
	if len(it.Weather) != ForecastDays {
		return MalformedItinerary(fmt.Sprintf("expected %d weather entries, got %d", ForecastDays, len(it.Weather)))
	}
	if len(it.CostBreakdown) == 0 {
		return MalformedItinerary("missing cost breakdown")
	}
	if len(it.Places) == 0 {
		return MalformedItinerary("missing places")
	}
	return nil
}

// normalize clamps place ratings into [0, 5]. Out-of-range ratings are a
// cosmetic model slip, not a reason to fail the whole generation.
func normalize(it *Itinerary) {
	for i := range it.Places {
		if it.Places[i].Rating < 0 {
			it.Places[i].Rating = 0
		}
		if it.Places[i].Rating > 5 {
			it.Places[i].Rating = 5
		}
	}
}
