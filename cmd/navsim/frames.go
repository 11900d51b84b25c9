package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// FramesCmd runs the scenario and writes one JSON object per tick (a
// "frame") to stdout or an output file, for an external viewer. Persisted
// frame state is not part of the simulator's contract (§6/§1): this is
// the harness-owned dump format, not a wire protocol.
type FramesCmd struct {
	Width              int    `help:"Grid width." default:"8"`
	Height             int    `help:"Grid height." default:"5"`
	Agents             int    `help:"Number of agents to seed (max 4)." default:"2"`
	Ticks              int    `help:"Number of ticks to run." default:"60"`
	MaxReservationTime int    `help:"Per-search reservation budget." default:"5"`
	Output             string `help:"Output file path; defaults to stdout." type:"path"`
}

// frameCell mirrors gridmap.Cell for JSON, since the grid's node type has
// no json tags of its own (it's a pure domain type, not a wire format).
type frameCell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type frameAgent struct {
	Handle uint32      `json:"handle"`
	UUID   string      `json:"uuid"`
	Node   frameCell   `json:"node"`
	State  string      `json:"state"`
	Nexts  []frameCell `json:"nexts,omitempty"`
}

type frame struct {
	Tick   int          `json:"tick"`
	Agents []frameAgent `json:"agents"`
}

// Run builds the scenario and streams one JSON frame per tick, starting
// with the initial (pre-Step) placement tick.
func (c *FramesCmd) Run() error {
	sim, movers := buildScenario(c.Width, c.Height, c.Agents, c.MaxReservationTime)

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)

	writeFrame := func(tick int) error {
		f := frame{Tick: tick}
		for _, mv := range movers {
			r, ok := sim.Agent(mv.Handle)
			if !ok {
				continue
			}
			fa := frameAgent{
				Handle: mv.Handle.Value(),
				UUID:   mv.UUID.String(),
				Node:   frameCell{X: r.Current.X, Y: r.Current.Y},
				State:  r.State().String(),
			}
			for _, hop := range r.Nexts() {
				fa.Nexts = append(fa.Nexts, frameCell{X: hop.Node.X, Y: hop.Node.Y})
			}
			f.Agents = append(f.Agents, fa)
		}
		return enc.Encode(f)
	}

	if err := writeFrame(0); err != nil {
		return err
	}
	for tick := 1; tick <= c.Ticks; tick++ {
		sim.Step()
		if err := writeFrame(tick); err != nil {
			return err
		}
	}
	log.Info("frames written", "ticks", c.Ticks, "agents", len(movers))
	return nil
}
