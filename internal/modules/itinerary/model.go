// README: Trip request input and generated itinerary shapes.
package itinerary

import "strings"

const (
	MinDays = 1
	MaxDays = 30
)

// Currencies is the fixed set of currency codes the planner form offers.
var Currencies = []string{"USD", "EUR", "GBP", "INR", "AED", "JPY"}

// Cost breakdown categories the prompt asks the model for. The upstream reply
// is expected, but not guaranteed, to stick to these labels.
const (
	CategoryAccommodation = "Accommodation"
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transport"
	CategoryActivities    = "Activities"
	CategoryShopping      = "Shopping & Misc"
)

// Weather conditions the prompt enumerates. Unknown conditions are passed
// through untouched; consumers fall back to a default rendering.
const (
	ConditionSunny  = "Sunny"
	ConditionClear  = "Clear"
	ConditionCloudy = "Cloudy"
	ConditionRainy  = "Rainy"
)

// ForecastDays is the fixed length of the weather section.
const ForecastDays = 5

// TripRequest is the user-supplied input, immutable once submitted.
type TripRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	Currency    string  `json:"currency"`
}

// Validate re-checks every field server-side. The original relied on the
// form's range sliders alone; the proxy now enforces the same bounds itself.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return badRequest("destination is required")
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return badRequest("days must be between 1 and 30")
	}
	if r.Budget <= 0 {
		return badRequest("budget must be positive")
	}
	if !ValidCurrency(r.Currency) {
		return badRequest("unsupported currency")
	}
	return nil
}

// ValidCurrency reports whether code is one of the supported currency codes.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// DayPlan is one day's entry within an itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
	Cost       *float64 `json:"cost,omitempty"`
}

// WeatherEntry is one day of the 5-day forecast.
type WeatherEntry struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// CostItem is one category of the cost breakdown.
type CostItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Place is a recommended point of interest.
type Place struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Type   string  `json:"type"`
}

// Itinerary is the structured trip plan the proxy returns. Not mutated after
// creation; the planner client owns its copy until it is explicitly persisted.
type Itinerary struct {
	Overview      string         `json:"overview"`
	DayPlans      []DayPlan      `json:"dayPlans"`
	Weather       []WeatherEntry `json:"weather"`
	CostBreakdown []CostItem     `json:"costBreakdown"`
	Places        []Place        `json:"places"`
	Tips          []string       `json:"tips,omitempty"`
}
