// README: Trips service; save, list, fetch, and delete saved itineraries.
package trips

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/modules/itinerary"
)

// Repository is the row store the service persists through.
type Repository interface {
	Insert(ctx context.Context, t *SavedTrip) error
	ListByUser(ctx context.Context, userID string) ([]SavedTrip, error)
	GetByID(ctx context.Context, userID, id string) (*SavedTrip, error)
	Delete(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveCommand carries the originating request fields alongside the itinerary,
// so a saved trip can be revisited exactly as it was generated.
type SaveCommand struct {
	UserID    string
	Request   itinerary.TripRequest
	Itinerary itinerary.Itinerary
}

func (s *Service) Save(ctx context.Context, cmd SaveCommand) (*SavedTrip, error) {
	if cmd.UserID == "" {
		return nil, ErrBadRequest
	}
	if err := cmd.Request.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	t := &SavedTrip{
		ID:            uuid.NewString(),
		UserID:        cmd.UserID,
		Destination:   cmd.Request.Destination,
		Days:          cmd.Request.Days,
		Budget:        cmd.Request.Budget,
		Currency:      cmd.Request.Currency,
		Overview:      cmd.Itinerary.Overview,
		DayPlans:      cmd.Itinerary.DayPlans,
		Weather:       cmd.Itinerary.Weather,
		CostBreakdown: cmd.Itinerary.CostBreakdown,
		Places:        cmd.Itinerary.Places,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the user's trips, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]SavedTrip, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.repo.ListByUser(ctx, userID)
}

// Get returns one trip, scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, id string) (*SavedTrip, error) {
	if userID == "" || id == "" {
		return nil, ErrBadRequest
	}
	return s.repo.GetByID(ctx, userID, id)
}

// Delete removes one trip, scoped to its owner.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrBadRequest
	}
	return s.repo.Delete(ctx, userID, id)
}

// Summarize aggregates the dashboard stats over the user's trips. A
// "City, Country" destination counts by its country part, so two Kyoto and
// Osaka trips both filed under Japan count as one destination.
func (s *Service) Summarize(ctx context.Context, userID string) (Summary, []SavedTrip, error) {
	list, err := s.List(ctx, userID)
	if err != nil {
		return Summary{}, nil, err
	}

	var sum Summary
	sum.TripCount = len(list)
	seen := map[string]struct{}{}
	for _, t := range list {
		sum.TotalBudget += t.Budget
		key := t.Destination
		if parts := strings.SplitN(t.Destination, ",", 2); len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			key = strings.TrimSpace(parts[1])
		}
		seen[key] = struct{}{}
	}
	sum.Destinations = len(seen)
	return sum, list, nil
}
