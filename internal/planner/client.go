// README: HTTP client for the generation proxy and the trips API.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tripweaver/internal/modules/itinerary"
)

// Generator invokes the generation proxy.
type Generator interface {
	Generate(ctx context.Context, req itinerary.TripRequest) (*itinerary.Itinerary, error)
}

// TripWriter persists a merged planner result for a signed-in user.
type TripWriter interface {
	SaveTrip(ctx context.Context, idToken string, result Result) error
}

// Client talks to the tripweaver API over HTTP. It implements Generator and
// TripWriter and reconstructs the tagged error kinds from wire statuses so
// callers never compare message strings.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type generateEnvelope struct {
	Success   bool                 `json:"success"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
	Error     string               `json:"error"`
}

// Generate posts the trip request and decodes the {success, itinerary} /
// {error} envelope.
func (c *Client) Generate(ctx context.Context, req itinerary.TripRequest) (*itinerary.Itinerary, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("planner: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/itineraries/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("planner: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("planner: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("planner: read response: %w", err)
	}

	var env generateEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("planner: unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, proxyError(resp.StatusCode, env.Error)
	}
	// A 200 carrying an error field still counts as failure.
	if env.Error != "" {
		return nil, proxyError(http.StatusInternalServerError, env.Error)
	}
	if !env.Success || env.Itinerary == nil {
		return nil, itinerary.ErrNoContent
	}
	return env.Itinerary, nil
}

// proxyError rebuilds a tagged error from the proxy's wire status.
func proxyError(status int, msg string) error {
	if msg == "" {
		msg = fmt.Sprintf("proxy error: %d", status)
	}
	switch status {
	case http.StatusBadRequest:
		return &itinerary.Error{Kind: itinerary.KindBadRequest, Message: msg}
	case http.StatusTooManyRequests:
		return &itinerary.Error{Kind: itinerary.KindRateLimited, Message: msg}
	case http.StatusPaymentRequired:
		return &itinerary.Error{Kind: itinerary.KindQuotaExhausted, Message: msg}
	default:
		return &itinerary.Error{Kind: itinerary.KindUpstream, Status: status, Message: msg}
	}
}

// SaveTrip writes the merged result to the trips API under the caller's token.
func (c *Client) SaveTrip(ctx context.Context, idToken string, result Result) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("planner: marshal trip: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/trips", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("planner: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+idToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("planner: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var env generateEnvelope
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &env)
		if env.Error != "" {
			return fmt.Errorf("planner: save trip: %s", env.Error)
		}
		return fmt.Errorf("planner: save trip: status %d", resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
