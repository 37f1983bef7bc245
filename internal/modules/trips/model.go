// README: SavedTrip aggregate and module errors.
package trips

import (
	"errors"
	"time"

	"tripweaver/internal/modules/itinerary"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("bad request")
)

// SavedTrip is a persisted itinerary plus its originating request fields,
// owned by a user identity. Created on explicit save, deleted on explicit
// delete, otherwise immutable.
type SavedTrip struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"user_id"`
	Destination   string                   `json:"destination"`
	Days          int                      `json:"days"`
	Budget        float64                  `json:"budget"`
	Currency      string                   `json:"currency"`
	Overview      string                   `json:"overview"`
	DayPlans      []itinerary.DayPlan      `json:"dayPlans"`
	Weather       []itinerary.WeatherEntry `json:"weather"`
	CostBreakdown []itinerary.CostItem     `json:"costBreakdown"`
	Places        []itinerary.Place        `json:"places"`
	CreatedAt     time.Time                `json:"created_at"`
}

// Summary is the dashboard aggregation over a user's saved trips.
type Summary struct {
	TripCount    int     `json:"trip_count"`
	TotalBudget  float64 `json:"total_budget"`
	Destinations int     `json:"destinations"`
}
