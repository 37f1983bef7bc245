// README: Generation service; validates requests and runs the prompt/parse pipeline.
package itinerary

import (
	"context"
	"log"
)

// Provider is the upstream chat-completion call. Implementations map their
// transport failures onto the *Error taxonomy in this package.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Enricher optionally refreshes the generated places list with real ratings.
type Enricher interface {
	EnrichPlaces(ctx context.Context, destination string, places []Place) []Place
}

// Service runs the generation pipeline. It holds no per-request state; a
// single upstream failure is surfaced directly, never retried.
type Service struct {
	provider Provider
	cache    *Cache   // nil disables the response cache
	enricher Enricher // nil disables places enrichment
}

func NewService(provider Provider, cache *Cache, enricher Enricher) *Service {
	return &Service{provider: provider, cache: cache, enricher: enricher}
}

// Generate produces a complete itinerary for req or fails with a tagged error.
// There is no partial-success mode.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if it, ok := s.cache.Get(ctx, req); ok {
			return it, nil
		}
	}

	raw, err := s.provider.Complete(ctx, SystemPrompt, UserPrompt(req))
	if err != nil {
		log.Printf("generate %q: upstream: %v", req.Destination, err)
		return nil, err
	}

	it, err := ParseReply(raw, req.Days)
	if err != nil {
		log.Printf("generate %q: parse: %v", req.Destination, err)
		return nil, err
	}

	if s.enricher != nil {
		it.Places = s.enricher.EnrichPlaces(ctx, req.Destination, it.Places)
	}

	if s.cache != nil {
		s.cache.Put(ctx, req, it)
	}
	return it, nil
}
