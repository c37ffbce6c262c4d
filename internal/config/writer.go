package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// renderBaseLayer rebuilds the base layer text for a Set: every setting the
// previous source knows about, with the overrides written on top.
func renderBaseLayer(previous *viper.Viper, overrides map[string]string) (string, error) {
	tree := previous.AllSettings()
	for key, value := range overrides {
		setPath(tree, strings.Split(key, "."), value)
	}

	data, err := toml.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("cannot serialize configuration: %w", err)
	}

	return string(data), nil
}

// setPath writes value at the dotted path inside tree, replacing any
// non-table value met on the way
func setPath(tree map[string]interface{}, path []string, value string) {
	if len(path) == 1 {
		tree[path[0]] = value
		return
	}

	child, err := cast.ToStringMapE(tree[path[0]])
	if err != nil {
		child = map[string]interface{}{}
	}
	tree[path[0]] = child

	setPath(child, path[1:], value)
}
