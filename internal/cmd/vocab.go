package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/gremlin-remap/gremlin/inputtypes"
	"github.com/gremlin-remap/gremlin/internal/configpaths"
)

// Vocab exports every registry table.
type Vocab struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json" env:"GREMLIN_VOCAB_FORMAT"`
	Output string `help:"Destination file path (defaults to stdout)" env:"GREMLIN_VOCAB_OUTPUT"`
}

// Run is called by Kong when the vocab command is executed.
func (v *Vocab) Run(logger *slog.Logger) error {
	data, err := encode(v.Format, inputtypes.Vocabulary())
	if err != nil {
		return err
	}
	if v.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := configpaths.EnsureDir(v.Output); err != nil {
		return err
	}
	if err := os.WriteFile(v.Output, data, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote vocabulary", "path", v.Output, "format", v.Format)
	return nil
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// encode serializes v in one of the supported config formats.
func encode(format string, v any) ([]byte, error) {
	switch normalizeFormat(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(v)
	case "toml":
		return toml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
