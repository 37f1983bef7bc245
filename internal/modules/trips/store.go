// README: Trips store backed by PostgreSQL; itinerary sections live in JSONB columns.
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, t *SavedTrip) error {
	dayPlans, weather, breakdown, places, err := marshalSections(t)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO saved_trips (
			id, user_id, destination, days, budget, currency,
			overview, itinerary, weather, cost_breakdown, places, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12
		)`,
		t.ID, t.UserID, t.Destination, t.Days, t.Budget, t.Currency,
		t.Overview, dayPlans, weather, breakdown, places, t.CreatedAt,
	)
	return err
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]SavedTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, destination, days, budget, currency,
		       overview, itinerary, weather, cost_breakdown, places, created_at
		FROM saved_trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedTrip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, userID, id string) (*SavedTrip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination, days, budget, currency,
		       overview, itinerary, weather, cost_breakdown, places, created_at
		FROM saved_trips
		WHERE id = $1 AND user_id = $2`, id, userID,
	)
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM saved_trips WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSections(t *SavedTrip) (dayPlans, weather, breakdown, places []byte, err error) {
	if dayPlans, err = json.Marshal(t.DayPlans); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal day plans: %w", err)
	}
	if weather, err = json.Marshal(t.Weather); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal weather: %w", err)
	}
	if breakdown, err = json.Marshal(t.CostBreakdown); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal cost breakdown: %w", err)
	}
	if places, err = json.Marshal(t.Places); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal places: %w", err)
	}
	return dayPlans, weather, breakdown, places, nil
}

func scanTrip(row pgx.Row) (*SavedTrip, error) {
	var t SavedTrip
	var dayPlans, weather, breakdown, places []byte
	err := row.Scan(
		&t.ID, &t.UserID, &t.Destination, &t.Days, &t.Budget, &t.Currency,
		&t.Overview, &dayPlans, &weather, &breakdown, &places, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dayPlans, &t.DayPlans); err != nil {
		return nil, fmt.Errorf("unmarshal day plans: %w", err)
	}
	if err := json.Unmarshal(weather, &t.Weather); err != nil {
		return nil, fmt.Errorf("unmarshal weather: %w", err)
	}
	if err := json.Unmarshal(breakdown, &t.CostBreakdown); err != nil {
		return nil, fmt.Errorf("unmarshal cost breakdown: %w", err)
	}
	if err := json.Unmarshal(places, &t.Places); err != nil {
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}
	return &t, nil
}
