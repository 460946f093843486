package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/trackmate/pkg/log"
)

type OpenRouterConfig struct {
	APIKey string `env:"OPENROUTER_API_KEY,required,notEmpty"`
	Model  string `env:"OPENROUTER_MODEL,required,notEmpty" envDefault:"google/gemini-2.0-flash-001"`
}

func NewOpenRouterConfig(ctx context.Context) *OpenRouterConfig {
	c := &OpenRouterConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenRouter config")
	}
	return c
}

type CustomLLMConfig struct {
	BaseURL string `env:"CUSTOM_LLM_BASE_URL,required,notEmpty"`
	APIKey  string `env:"CUSTOM_LLM_API_KEY"`
	Model   string `env:"CUSTOM_LLM_MODEL,required,notEmpty"`
}

func NewCustomLLMConfig(ctx context.Context) *CustomLLMConfig {
	c := &CustomLLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse custom LLM config")
	}
	return c
}

type EmbeddingConfig struct {
	BaseURL string `env:"EMBEDDING_BASE_URL" envDefault:"https://openrouter.ai/api"`
	APIKey  string `env:"EMBEDDING_API_KEY"`
	Model   string `env:"EMBEDDING_MODEL" envDefault:"openai/text-embedding-3-small"`
}

func NewEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	c := &EmbeddingConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse embedding config")
	}
	return c
}
