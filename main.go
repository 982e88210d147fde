package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/labyrinth/bincalc"
	"github.com/beka-birhanu/labyrinth/config"
	"github.com/beka-birhanu/labyrinth/logger"
	"github.com/beka-birhanu/labyrinth/service"
	"github.com/beka-birhanu/labyrinth/solver"
)

// options holds the parsed command line.
type options struct {
	path   string
	binary bool
	help   bool
}

func parseArgs(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: labyrinth [-p PATH] [-b]\n\nFinds a way out from a labyrinth with the fewest turns.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.path, "p", config.Envs.InputPath, "Input file path")
	fs.StringVar(&opts.path, "path", config.Envs.InputPath, "Input file path")
	fs.BoolVar(&opts.binary, "b", false, "Binary calc mode")
	fs.BoolVar(&opts.binary, "binary", false, "Binary calc mode")
	fs.BoolVar(&opts.help, "h", false, "Prints this message")
	fs.BoolVar(&opts.help, "help", false, "Prints this message")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

func run(args []string) int {
	appLogger, _ := logger.New("LABYRINTH", config.ColorGreen, os.Stderr)

	opts, fs, err := parseArgs(args)
	if err != nil {
		return 2
	}
	if opts.help {
		fs.SetOutput(os.Stdout)
		fs.Usage()
		return 0
	}

	if opts.binary {
		values, err := bincalc.ParseBinaryFile(opts.path)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Binary mode: %v", err))
			return 1
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return 0
	}

	labyrinthService, err := service.NewLabyrinthService(solver.New(solver.Options{MaxNodes: config.Envs.MaxNodes}), nil, nil, appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth service: %v", err))
		return 1
	}

	record, err := labyrinthService.SolveFile(context.Background(), opts.path)
	if err != nil {
		appLogger.Error(err.Error())
		return 1
	}
	if !record.Found {
		appLogger.Error(solver.ErrNoPath.Error())
		return 1
	}

	fmt.Println(record.Turns)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
