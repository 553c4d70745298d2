package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a config from the process environment. Variable names come
// from the env and envPrefix tags, e.g. SERVER_ADDRESS or CRYPTO_SALT_ENCODING.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
