package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	apperrors "github.com/computerscienceiscool/bigly/internal/errors"
)

var validate = validator.New()

// layers is one built configuration: the raw layered source and its typed view
type layers struct {
	source *viper.Viper
	config AppConfig
}

// buildLayers stacks the base layer text, the environment and the
// overrides, in increasing order of precedence, and decodes the result.
// An empty base means there is no base layer. The returned source holds the
// environment as it was at build time.
func buildLayers(base string, overrides map[string]string) (*layers, error) {
	v := viper.New()
	v.SetConfigType(configType)

	if base != "" {
		if err := v.ReadConfig(strings.NewReader(base)); err != nil {
			return nil, fmt.Errorf("%w: cannot parse base layer: %v", apperrors.ErrInvalidConfig, err)
		}
	}

	// Enable environment variables with APP prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range schemaKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("cannot bind environment for %s: %w", key, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	settings := v.AllSettings()
	cfg, err := decode(settings)
	if err != nil {
		return nil, err
	}

	// Freeze the merged layers; v reads the environment on every lookup
	frozen := viper.New()
	if err := frozen.MergeConfigMap(settings); err != nil {
		return nil, fmt.Errorf("cannot freeze configuration: %w", err)
	}

	return &layers{source: frozen, config: cfg}, nil
}

// decode converts merged settings into AppConfig, rejecting missing or
// mistyped required fields
func decode(settings map[string]interface{}) (AppConfig, error) {
	var raw rawAppConfig
	if err := weakDecode(settings, &raw); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	if err := validate.Struct(&raw); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	return raw.typed(), nil
}

// weakDecode decodes input into output, converting between scalar kinds
// where the conversion is unambiguous ("false" -> false, "8" -> 8).
// Environment variables and overrides only ever arrive as strings.
func weakDecode(input, output interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
