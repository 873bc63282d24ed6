package cmd_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/gremlin-remap/gremlin/internal/cmd"
)

func TestTemplate(t *testing.T) {
	root, err := cmd.Template("vocab")
	require.NoError(t, err)
	assert.Equal(t, "json", root["format"])
	assert.Equal(t, "", root["output"])
	logCfg, ok := root["log"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "info", logCfg["level"])
	assert.Equal(t, "text", logCfg["format"])

	root, err = cmd.Template("lookup")
	require.NoError(t, err)
	assert.NotContains(t, root, "table")
	assert.NotContains(t, root, "value")
	assert.Equal(t, false, root["plain"])

	_, err = cmd.Template("server")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	tests := []struct {
		format string
		file   string
		check  func(t *testing.T, data []byte)
	}{
		{"json", "vocab.json", func(t *testing.T, data []byte) {
			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			assert.Equal(t, "json", m["format"])
		}},
		{"yaml", "vocab.yaml", func(t *testing.T, data []byte) {
			var m map[string]any
			require.NoError(t, yaml.Unmarshal(data, &m))
			assert.Equal(t, "json", m["format"])
		}},
		{"toml", "vocab.toml", func(t *testing.T, data []byte) {
			tree, err := toml.LoadBytes(data)
			require.NoError(t, err)
			assert.Equal(t, "info", tree.Get("log.level"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(dir, "out", tt.file)
			c := &cmd.ConfigInit{Command: "vocab", Format: tt.format, Output: dest}
			require.NoError(t, c.Run(logger))

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			tt.check(t, data)

			assert.Error(t, c.Run(logger), "existing file must not be overwritten")
			c.Force = true
			assert.NoError(t, c.Run(logger))
		})
	}
}
