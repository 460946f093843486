package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/trackmate/pkg/log"
)

// MemoryConfig tunes the memory gateway. CompareThreshold gates
// writes (a candidate this similar to an existing fact is a
// duplicate); ReturnThreshold gates reads (results at or below it are
// dropped from the injected context).
type MemoryConfig struct {
	CompareThreshold float64 `env:"MEMORY_COMPARE_THRESHOLD" envDefault:"0.7"`
	ReturnThreshold  float64 `env:"MEMORY_RETURN_THRESHOLD" envDefault:"0.5"`

	// Maximum concurrently running background memory writes.
	WriteWorkers int `env:"MEMORY_WRITE_WORKERS" envDefault:"4"`
}

func NewMemoryConfig(ctx context.Context) *MemoryConfig {
	c := &MemoryConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse memory config")
	}
	return c
}
