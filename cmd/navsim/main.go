// Command navsim is a test-harness CLI for package simulator: it builds a
// rectangular knight-move grid (internal/gridmap), seeds it with a handful
// of agents running a mirrored round trip, and either runs the simulation
// to completion or dumps one JSON frame per tick for an external viewer.
//
// It is explicitly an external collaborator, not part of the core
// simulation model: see navmap's package doc and simulator's package doc
// for the boundary.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// cli is kong's top-level command set: run simulates silently and reports
// final state, frames simulates and streams a JSON frame per tick.
var cli struct {
	Run    RunCmd    `cmd:"" help:"Run the simulator for a number of ticks and report final agent states."`
	Frames FramesCmd `cmd:"" help:"Run the simulator and emit one JSON frame per tick."`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&cli,
		kong.Name("navsim"),
		kong.Description("Discrete-time multi-agent navigation simulator harness."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
