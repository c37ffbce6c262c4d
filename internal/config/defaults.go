package config

import _ "embed"

const (
	// EnvPrefix is prepended to every environment variable of the env layer,
	// e.g. APP_DEBUG and APP_DATABASE_URL.
	EnvPrefix = "APP"

	// configType is the format of the base layer text
	configType = "toml"
)

// DefaultConfig is the base layer compiled into the binary
//
//go:embed default_config.toml
var DefaultConfig string
