// README: Google Places enrichment for generated place recommendations.
package maps

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"

	"tripweaver/internal/modules/itinerary"
)

// PlacesService refreshes model-invented place ratings against the Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// EnrichPlaces looks each generated place up near the trip destination and
// replaces the model's guessed rating with the real one when a match is found.
// Strictly best-effort: lookup failures keep the generated values, and the
// itinerary is returned with places in their original order.
func (s *PlacesService) EnrichPlaces(ctx context.Context, destination string, places []itinerary.Place) []itinerary.Place {
	out := make([]itinerary.Place, len(places))
	copy(out, places)

	for i := range out {
		r := &maps.TextSearchRequest{
			Query: fmt.Sprintf("%s, %s", out[i].Name, destination),
		}
		resp, err := s.client.TextSearch(ctx, r)
		if err != nil {
			log.Printf("places enrich %q: %v", out[i].Name, err)
			continue
		}
		if len(resp.Results) == 0 {
			continue
		}
		top := resp.Results[0]
		if top.Rating > 0 {
			out[i].Rating = float64(top.Rating)
		}
		if top.Name != "" {
			out[i].Name = top.Name
		}
	}
	return out
}
