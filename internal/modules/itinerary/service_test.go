// README: Generation service tests with a stubbed provider.
package itinerary

import (
	"context"
	"strings"
	"testing"
)

// stubProvider is a test double for Provider.
type stubProvider struct {
	reply string
	err   error
	calls int
	// lastUser records the user prompt for inspection.
	lastUser string
}

func (s *stubProvider) Complete(_ context.Context, _, user string) (string, error) {
	s.calls++
	s.lastUser = user
	return s.reply, s.err
}

func validRequest() TripRequest {
	return TripRequest{Destination: "Kyoto", Days: 3, Budget: 900, Currency: "USD"}
}

func TestGenerate_Success(t *testing.T) {
	p := &stubProvider{reply: wellFormedReply}
	svc := NewService(p, nil, nil)

	it, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(it.DayPlans) != 3 {
		t.Errorf("expected dayPlans length to equal days, got %d", len(it.DayPlans))
	}
	if p.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", p.calls)
	}
}

func TestGenerate_PromptEmbedsRequest(t *testing.T) {
	p := &stubProvider{reply: wellFormedReply}
	svc := NewService(p, nil, nil)

	if _, err := svc.Generate(context.Background(), validRequest()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{"Kyoto", "3 days", "USD 900"} {
		if !strings.Contains(p.lastUser, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		req  TripRequest
	}{
		{"empty destination", TripRequest{Destination: "  ", Days: 3, Budget: 900, Currency: "USD"}},
		{"days too low", TripRequest{Destination: "Kyoto", Days: 0, Budget: 900, Currency: "USD"}},
		{"days too high", TripRequest{Destination: "Kyoto", Days: 31, Budget: 900, Currency: "USD"}},
		{"zero budget", TripRequest{Destination: "Kyoto", Days: 3, Budget: 0, Currency: "USD"}},
		{"negative budget", TripRequest{Destination: "Kyoto", Days: 3, Budget: -10, Currency: "USD"}},
		{"unknown currency", TripRequest{Destination: "Kyoto", Days: 3, Budget: 900, Currency: "BTC"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &stubProvider{reply: wellFormedReply}
			svc := NewService(p, nil, nil)

			_, err := svc.Generate(context.Background(), tc.req)
			kind, ok := KindOf(err)
			if !ok || kind != KindBadRequest {
				t.Fatalf("expected KindBadRequest, got %v", err)
			}
			if p.calls != 0 {
				t.Errorf("expected no upstream call for rejected input, got %d", p.calls)
			}
		})
	}
}

func TestGenerate_UpstreamErrorPassesThrough(t *testing.T) {
	p := &stubProvider{err: ErrRateLimited}
	svc := NewService(p, nil, nil)

	_, err := svc.Generate(context.Background(), validRequest())
	kind, ok := KindOf(err)
	if !ok || kind != KindRateLimited {
		t.Fatalf("expected KindRateLimited, got %v", err)
	}
}

func TestGenerate_NoContentDistinctFromMalformed(t *testing.T) {
	noContent := &stubProvider{err: ErrNoContent}
	svc := NewService(noContent, nil, nil)
	_, err := svc.Generate(context.Background(), validRequest())
	kind, _ := KindOf(err)
	if kind != KindNoContent {
		t.Fatalf("expected KindNoContent, got %v", err)
	}

	garbage := &stubProvider{reply: "not valid json"}
	svc = NewService(garbage, nil, nil)
	_, err = svc.Generate(context.Background(), validRequest())
	kind, _ = KindOf(err)
	if kind != KindMalformedPayload {
		t.Fatalf("expected KindMalformedPayload, got %v", err)
	}
}

// stubEnricher replaces every rating with a fixed value.
type stubEnricher struct{ rating float64 }

func (s *stubEnricher) EnrichPlaces(_ context.Context, _ string, places []Place) []Place {
	out := make([]Place, len(places))
	copy(out, places)
	for i := range out {
		out[i].Rating = s.rating
	}
	return out
}

func TestGenerate_AppliesEnricher(t *testing.T) {
	p := &stubProvider{reply: wellFormedReply}
	svc := NewService(p, nil, &stubEnricher{rating: 4.1})

	it, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, pl := range it.Places {
		if pl.Rating != 4.1 {
			t.Errorf("expected enriched rating 4.1, got %v", pl.Rating)
		}
	}
}
