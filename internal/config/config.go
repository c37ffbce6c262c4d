package config

// Database holds the database section of the configuration
type Database struct {
	URL string `mapstructure:"url"`
}

// AppConfig is the typed view of the layered configuration
type AppConfig struct {
	Debug    bool     `mapstructure:"debug"`
	Database Database `mapstructure:"database"`
}

// rawAppConfig mirrors AppConfig with pointer fields so that a key which
// is absent from every layer can be told apart from its zero value.
type rawAppConfig struct {
	Debug    *bool        `mapstructure:"debug" validate:"required"`
	Database *rawDatabase `mapstructure:"database" validate:"required"`
}

type rawDatabase struct {
	URL *string `mapstructure:"url" validate:"required"`
}

func (r *rawAppConfig) typed() AppConfig {
	return AppConfig{
		Debug: *r.Debug,
		Database: Database{
			URL: *r.Database.URL,
		},
	}
}

// schemaKeys lists every dotted key of AppConfig. Each one is bound to its
// environment variable so the env layer is visible even when no base
// layer mentions the key.
var schemaKeys = []string{
	"debug",
	"database.url",
}
