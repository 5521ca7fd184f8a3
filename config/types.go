package config

import "time"

// Config is the root configuration structure for the demo
type Config struct {
	API   APIConfig   `koanf:"api"`
	HTTP  HTTPConfig  `koanf:"http"`
	Retry RetryConfig `koanf:"retry"`
	Log   LogConfig   `koanf:"log"`
}

// APIConfig holds the endpoints the demo consumes
type APIConfig struct {
	// Base is the REST test API serving /users/1, /posts/1, /todos/1, /todos/2
	Base string `koanf:"base" validate:"required,url"`
	// Forced503 is the status-simulator endpoint that always returns 503
	Forced503 string `koanf:"forced503" validate:"required,url"`
}

// HTTPConfig holds HTTP client settings
type HTTPConfig struct {
	// Timeout applies per request, not to the overall run
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	UserAgent string        `koanf:"useragent" validate:"required"`
}

// RetryConfig holds the forced-retry sequencer settings
type RetryConfig struct {
	// Backoff is the base sleep between attempts, scaled by attempt number
	Backoff time.Duration `koanf:"backoff" validate:"required"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Pretty bool   `koanf:"pretty"`
}
