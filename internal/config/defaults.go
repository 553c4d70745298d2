package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultSaltEncoding    = "text"
	DefaultIdleTimeout     = 5 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Crypto: Crypto{
			SaltEncoding: DefaultSaltEncoding,
		},
		Session: Session{
			IdleTimeout: DefaultIdleTimeout,
		},
	}
}
