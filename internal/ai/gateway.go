// README: OpenAI-compatible chat-completions client for the AI gateway.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripweaver/internal/config"
	"tripweaver/internal/modules/itinerary"
)

// httpClient is used for all gateway requests; the 30s timeout guards against stalled connections
// while context cancellation is still honoured via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GatewayProvider calls an OpenAI-compatible chat-completions endpoint with a
// fixed model and temperature. It holds no state across invocations.
type GatewayProvider struct {
	url         string
	apiKey      string
	model       string
	temperature float64
}

func NewGatewayProvider(cfg config.AIConfig) *GatewayProvider {
	return &GatewayProvider{
		url:         cfg.GatewayURL,
		apiKey:      cfg.GatewayKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Complete sends the system and user messages and returns the first choice's
// message text. Gateway failures come back as tagged itinerary errors.
func (p *GatewayProvider) Complete(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", itinerary.ErrMissingCredential
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("gateway: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Body is drained for connection reuse; its content is never surfaced.
		_, _ = io.Copy(io.Discard, resp.Body)
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", itinerary.ErrRateLimited
		case http.StatusPaymentRequired:
			return "", itinerary.ErrQuotaExhausted
		default:
			return "", itinerary.UpstreamError(resp.StatusCode)
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gateway: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("gateway: unmarshal response: %w", err)
	}
	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", itinerary.ErrNoContent
	}
	return cr.Choices[0].Message.Content, nil
}
