// README: Provider selection from config.
package ai

import (
	"context"
	"fmt"

	"tripweaver/internal/config"
	"tripweaver/internal/modules/itinerary"
)

// NewProvider builds the configured upstream implementation. The returned
// close func releases provider resources and is safe to call once.
func NewProvider(ctx context.Context, cfg config.AIConfig) (itinerary.Provider, func(), error) {
	switch cfg.Provider {
	case "gateway":
		return NewGatewayProvider(cfg), func() {}, nil
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
