package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/zero-vault/internal/crypto"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel string
	LogDir   string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Retries is the resty retry count.
	Retries int
	// Token is an optional bearer token.
	Token string
	// HashKey signs request bodies when non-empty.
	HashKey string
}

// ClientCrypto holds the crypto parameters selected by configuration.
type ClientCrypto struct {
	SaltEncoding crypto.SaltEncoding
}

// ClientSession holds the master password session settings.
type ClientSession struct {
	// IdleTimeout is zero or negative when the auto-lock is disabled.
	IdleTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Crypto  ClientCrypto
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view.
//
// overrides carries the values given on the client command line; it sits
// between the environment and the JSON file in priority and may be nil.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()
	if overrides != nil {
		b = b.withConfig(overrides)
	}

	cfg, err := b.withJSON().withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	encoding, err := crypto.ParseSaltEncoding(cfg.Crypto.SaltEncoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogDir:   cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Retries:        cfg.Adapter.Retries,
			Token:          cfg.Adapter.Token,
			HashKey:        cfg.App.HashKey,
		},
		Crypto: ClientCrypto{
			SaltEncoding: encoding,
		},
		Session: ClientSession{
			IdleTimeout: cfg.Session.IdleTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
