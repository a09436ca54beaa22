/*
Pcbauto places selected components and auto-routes a PCB.

Usage:

	pcbauto [flags] [input [output]]

The flags are:

	-c path
	    Read config from the JSON-formatted file at path.
	-dumpconf
	    Dump the config as JSON to stdout and exit.
	-h, -help
	    Print out full help
	-place
	    Run the simulated-annealing placer over selected components.
	-route
	    Run the rectangle-expansion auto-router.
	-selected-only
	    When routing, only route nets touching a selected component.
	-seed n
	    Seed the random source (default: current time).

If the input arg is not set, then the board is read from standard input.
If the output arg is not set, then the board is written to standard output.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kestrelpcb/autoroute/board"
	"github.com/kestrelpcb/autoroute/internal/rand"
	"github.com/kestrelpcb/autoroute/placer"
	"github.com/kestrelpcb/autoroute/router"
)

// config bundles everything a pcbauto run needs beyond the board
// itself: the placer's cost weights, the router's pass-independent
// toggles, and the run's random seed, matching autoplace.c/
// autoroute.c's split between per-module static configuration and the
// per-invocation options a caller supplies.
type config struct {
	Placer placer.Config
	Router router.Config
	Seed   int64
}

func defaultConfig() config {
	return config{
		Placer: placer.DefaultConfig(),
		Router: router.DefaultConfig(),
		Seed:   time.Now().UnixNano(),
	}
}

var (
	configPath   string
	help         bool
	dumpConf     bool
	runPlace     bool
	runRoute     bool
	selectedOnly bool
	seed         int64
)

func init() {
	flag.StringVar(&configPath, "c", "", "path to a config file in JSON format")
	flag.BoolVar(&help, "h", false, "")
	flag.BoolVar(&help, "help", false, "")
	flag.BoolVar(&dumpConf, "dumpconf", false, "")
	flag.BoolVar(&runPlace, "place", false, "run the placer over selected components")
	flag.BoolVar(&runRoute, "route", false, "run the auto-router")
	flag.BoolVar(&selectedOnly, "selected-only", false, "when routing, only route nets touching a selected component")
	flag.Int64Var(&seed, "seed", 0, "seed the random source (default: current time)")
}

func main() {
	flag.Parse()

	if help {
		printHelp()
		return
	}

	os.Exit(run())
}

func run() int {
	cfg := defaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening config file %s: %s\n", configPath, err)
			return 1
		}
		decoder := json.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing config: %s\n", err)
			return 1
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if dumpConf {
		dumpConfig(cfg)
		return 0
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		input := flag.Arg(0)
		if input != "-" {
			f, err := os.Open(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening file %s: %s\n", input, err)
				return 1
			}
			in = f
		}
	}

	var out io.Writer = os.Stdout
	var tmpFile *os.File
	var dstFilename string
	defer func() {
		if tmpFile != nil {
			os.Remove(tmpFile.Name())
		}
	}()

	if flag.NArg() > 1 {
		name := flag.Arg(1)
		if name != "-" {
			dstFilename = name
			f, err := os.CreateTemp("", "pcbauto.*")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening temporary file: %s\n", err)
				return 1
			}
			out = f
			tmpFile = f
		}
	}

	b := &board.Board{}
	decoder := json.NewDecoder(in)
	if err := decoder.Decode(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board: %s\n", err)
		return 1
	}

	if err := b.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	rnd := rand.New(cfg.Seed)

	if runPlace {
		autoPlaceSelected(b, cfg.Placer, rnd)
	}
	if runRoute {
		if err := autoRoute(b, cfg.Router, selectedOnly); err != nil {
			b.Diagnostics.Add(board.Error, "", err.Error())
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing board: %s\n", err)
		return 1
	}

	if tmpFile != nil {
		if err := os.Rename(tmpFile.Name(), dstFilename); err != nil {
			fmt.Fprintf(os.Stderr, "Error moving output to final location: %s\n", err)
			return 1
		}
		tmpFile = nil
	}

	if b.Diagnostics.HasErrors() {
		return 1
	}
	return 0
}

// autoPlaceSelected anneals every selected component's position,
// rotation, and side in place, per spec §4.4-4.6.
func autoPlaceSelected(b *board.Board, cfg placer.Config, rnd *rand.Source) {
	m := placer.NewModel(b)
	if len(m.Selected) == 0 {
		b.Diagnostics.Add(board.Info, "", "no components selected for placement")
		return
	}
	placer.Anneal(m, cfg, rnd)
}

// autoRoute runs the multi-pass router driver over the whole netlist,
// or (selectedOnly) only the nets touching a selected component.
func autoRoute(b *board.Board, cfg router.Config, selectedOnly bool) error {
	if selectedOnly {
		b.Netlist.Nets = netsTouchingSelection(b)
	}
	sess := router.NewSession(b)
	return router.Run(sess, cfg)
}

func netsTouchingSelection(b *board.Board) []board.Net {
	selected := make(map[string]bool)
	for _, c := range b.Components {
		if c.Selected {
			selected[c.ID] = true
		}
	}

	var out []board.Net
	for _, net := range b.Netlist.Nets {
		for _, conn := range net.Connections {
			if selected[conn.Component] {
				out = append(out, net)
				break
			}
		}
	}
	return out
}

func printHelp() {
	usage := `Pcbauto places selected components and auto-routes a PCB.

Usage:

    pcbauto [flags] [input [output]]

The flags are:

    -c path
          Read config from the JSON-formatted file at path.
    -dumpconf
          Dump the config as JSON to stdout and exit.
    -h, -help
        Print out full help
    -place
        Run the simulated-annealing placer over selected components.
    -route
        Run the rectangle-expansion auto-router.
    -selected-only
        When routing, only route nets touching a selected component.
    -seed n
        Seed the random source (default: current time).

If input isn't set, or has the value '-', the board is read
from standard input.
If output isn't set, or has the value '-' the board is written
to standard output.

Otherwise, the arguments are paths to the input and output files.
`
	io.WriteString(os.Stderr, usage)
}

func dumpConfig(cfg config) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(cfg)
}
