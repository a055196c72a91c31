package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command
type Globals struct {
	Config   string   `short:"c" default:"tenpin.yaml" help:"Path to YAML configuration file"`
	EnvFile  string   `default:".env" help:"Path to .env file"`
	Players  int      `short:"p" help:"Number of players (overrides config)"`
	Names    []string `short:"n" help:"Player names in turn order"`
	Pins     int      `help:"Pins per frame (overrides config)"`
	Frames   int      `help:"Frames per game (overrides config)"`
	LogLevel string   `short:"l" help:"Log level (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Score a sequence of balls bowled in turn order"`
	Simulate SimulateCmd      `cmd:"" help:"Bowl a random match"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tenpin"),
		kong.Description("Ten-pin bowling scorer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
