package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/trackmate/internal/config"
	"github.com/sandevgo/trackmate/internal/core"
	"github.com/sandevgo/trackmate/pkg/log"
)

// Provider is the combined completion surface the pipeline needs.
type Provider interface {
	core.Chatter
	core.Classifier
}

// NewProvider creates the appropriate Provider based on configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (Provider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "openrouter":
		orCfg := config.NewOpenRouterConfig(ctx)
		return NewOpenRouter(orCfg.APIKey, orCfg.Model), nil
	case "custom":
		cCfg := config.NewCustomLLMConfig(ctx)
		return NewCustomOpenAI(cCfg.BaseURL, cCfg.APIKey, cCfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
