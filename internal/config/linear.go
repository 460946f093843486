package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/trackmate/pkg/log"
)

type LinearConfig struct {
	APIKey   string `env:"LINEAR_API_KEY,required,notEmpty"`
	TeamName string `env:"LINEAR_TEAM_NAME,required,notEmpty"`
	Endpoint string `env:"LINEAR_ENDPOINT" envDefault:"https://api.linear.app/graphql"`
}

func NewLinearConfig(ctx context.Context) *LinearConfig {
	c := &LinearConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Linear config")
	}
	return c
}
