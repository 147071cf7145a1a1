package main

import (
	"flag"

	"github.com/matheus3301/keystrip/internal/overlay"
	"go.uber.org/fx"
)

func main() {
	configFlag := flag.String("config", "", "path to config.toml (overrides the default lookup)")
	localFlag := flag.Bool("local", false, "show keys typed into this terminal instead of installing a global hook")
	flag.Parse()

	app := fx.New(
		overlay.Module(overlay.Params{
			ConfigPath: *configFlag,
			Local:      *localFlag,
		}),
		// The strip owns the terminal; fx event logging would corrupt it.
		fx.NopLogger,
	)

	app.Run()
}
