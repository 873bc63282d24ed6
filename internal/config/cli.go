package config

import (
	"github.com/gremlin-remap/gremlin/internal/cmd"
	"github.com/gremlin-remap/gremlin/internal/log"
)

// CLI is the root command line of gremlin-types.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a JSON, YAML or TOML config file" type:"path" env:"GREMLIN_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Lookup cmd.Lookup        `cmd:"" help:"Translate a value through a registry table"`
	Vocab  cmd.Vocab         `cmd:"" help:"Export every registry table"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
