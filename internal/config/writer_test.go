package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPath(t *testing.T) {
	tests := []struct {
		name     string
		tree     map[string]interface{}
		path     []string
		value    string
		expected map[string]interface{}
	}{
		{
			name:     "top level key",
			tree:     map[string]interface{}{"debug": false},
			path:     []string{"debug"},
			value:    "true",
			expected: map[string]interface{}{"debug": "true"},
		},
		{
			name:  "existing table",
			tree:  map[string]interface{}{"database": map[string]interface{}{"url": "a", "pool": int64(2)}},
			path:  []string{"database", "url"},
			value: "b",
			expected: map[string]interface{}{
				"database": map[string]interface{}{"url": "b", "pool": int64(2)},
			},
		},
		{
			name:     "missing table is created",
			tree:     map[string]interface{}{},
			path:     []string{"database", "url"},
			value:    "b",
			expected: map[string]interface{}{"database": map[string]interface{}{"url": "b"}},
		},
		{
			name:     "scalar replaced by table",
			tree:     map[string]interface{}{"database": "flat"},
			path:     []string{"database", "url"},
			value:    "b",
			expected: map[string]interface{}{"database": map[string]interface{}{"url": "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setPath(tt.tree, tt.path, tt.value)
			assert.Equal(t, tt.expected, tt.tree)
		})
	}
}

func TestRenderBaseLayer(t *testing.T) {
	clearEnv(t)
	built, err := buildLayers(loadTestConfig(t), nil)
	require.NoError(t, err)

	text, err := renderBaseLayer(built.source, map[string]string{"database.url": "new url"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(text), &decoded))

	assert.Equal(t, false, decoded["debug"])
	assert.Equal(t, map[string]interface{}{"url": "new url"}, decoded["database"])
}
