package main

import (
	"os"
	"strings"

	"github.com/gremlin-remap/gremlin/internal/config"
	"github.com/gremlin-remap/gremlin/internal/configpaths"
	"github.com/gremlin-remap/gremlin/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	paths := configpaths.ConfigCandidatePaths(findUserConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("gremlin-types"),
		kong.Description("Input type registry for gremlin profiles"),
		kong.UsageOnError(),
		// Flags and environment override config file values.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closers, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("GREMLIN_CONFIG")
}
