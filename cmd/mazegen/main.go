package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labyrinth/config"
	"github.com/beka-birhanu/labyrinth/generator"
	"github.com/beka-birhanu/labyrinth/logger"
	"github.com/beka-birhanu/labyrinth/solver"
)

func main() {
	rows := flag.Int("rows", 4, "Number of room rows")
	cols := flag.Int("cols", 5, "Number of room columns")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	out := flag.String("out", "", "Output file, stdout when empty")
	flag.Parse()

	genLogger, _ := logger.New("MAZEGEN", config.ColorMagenta, os.Stderr)

	m, err := generator.New(*rows, *cols, *seed)
	if err != nil {
		genLogger.Error(err.Error())
		os.Exit(1)
	}

	g := m.Grid()
	turns, err := solver.Solve(g)
	if err != nil {
		genLogger.Error(fmt.Sprintf("Generated maze has no way out: %v", err))
		os.Exit(1)
	}
	genLogger.Info(fmt.Sprintf("Generated %dx%d maze (seed %d), fewest turns: %d", g.Height, g.Width, *seed, turns))

	if *out == "" {
		fmt.Print(g.String())
		return
	}
	if err := os.WriteFile(*out, []byte(g.String()), 0o644); err != nil {
		genLogger.Error(fmt.Sprintf("Writing %s: %v", *out, err))
		os.Exit(1)
	}
	genLogger.Info(fmt.Sprintf("Wrote %s", *out))
}
