package aiguard

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig maps the environment variables the lab tooling has always used.
type envConfig struct {
	Token   string `env:"PANGEA_AI_GUARD_TOKEN,required"`
	BaseURL string `env:"PANGEA_BASE_URL,required"`
}

// NewFromEnv creates a client configured from the PANGEA_AI_GUARD_TOKEN and
// PANGEA_BASE_URL environment variables. A missing variable surfaces as a
// wrapped error rather than a panic, so callers decide how fatal that is.
//
// Any options given take precedence over the environment values.
func NewFromEnv(options ...option) (*Client, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("reading Pangea configuration from environment: %w", err)
	}

	merged := make([]option, 0, len(options)+2)
	merged = append(merged, WithToken(ec.Token), WithBaseURL(ec.BaseURL))
	merged = append(merged, options...)
	return New(merged...)
}
