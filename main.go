package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jcorbin/gobrain/internal/config"
	"github.com/jcorbin/gobrain/internal/logio"
	"github.com/jcorbin/gobrain/internal/panicerr"
)

func main() {
	cmd := command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	cmd.bind(flag.CommandLine)
	flag.Parse()

	if err := cmd.run(context.Background(), flag.Args()); err != nil {
		os.Exit(1)
	}
}

type command struct {
	configPath string
	debug      bool
	capacity   int
	maxOps     int
	timeout    time.Duration
	stateOut   string
	logFile    string
	journal    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (cmd *command) bind(fs *flag.FlagSet) {
	fs.StringVar(&cmd.configPath, "config", "", "load settings from a TOML file")
	fs.BoolVar(&cmd.debug, "debug", false, "enable step tracing, hex output, state display, and line paced stepping")
	fs.IntVar(&cmd.capacity, "capacity", 0, "override tape and program capacity")
	fs.IntVar(&cmd.maxOps, "max-ops", 0, "override the maximum number of operations to run")
	fs.DurationVar(&cmd.timeout, "timeout", 0, "specify a time limit")
	fs.StringVar(&cmd.stateOut, "state-out", "", "write final machine state as CBOR to a file")
	fs.StringVar(&cmd.logFile, "log-file", "", "also write JSON log records to a file")
	fs.BoolVar(&cmd.journal, "log-journal", false, "also write log records to the systemd journal")
}

// run loads, runs, and reports on the program read from the named files, or
// from stdin if none are given. Any returned error has already been logged.
func (cmd *command) run(ctx context.Context, args []string) (rerr error) {
	level := new(slog.LevelVar)
	opts := logio.Options{
		Level:    level,
		Terminal: cmd.stderr,
		Journal:  cmd.journal,
	}
	if cmd.logFile != "" {
		f, err := os.Create(cmd.logFile)
		if err != nil {
			fmt.Fprintf(cmd.stderr, "ERROR: %v\n", err)
			return err
		}
		defer f.Close()
		opts.File = f
	}
	logger := logio.New(opts)
	defer func() {
		if rerr == nil {
			return
		}
		if stack := panicerr.Stack(rerr); stack != "" {
			logger.Error("run failed", "error", rerr, "stack", stack)
		} else {
			logger.Error("run failed", "error", rerr)
		}
	}()

	cfg, err := cmd.config()
	if err != nil {
		return err
	}
	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}

	prog, err := cmd.load(cfg, args)
	if err != nil {
		return err
	}
	if prog.Truncated {
		logger.Warn("program truncated", "capacity", cfg.Capacity)
	}
	logger.Debug("loaded program", "len", prog.Len(), "code", prog.String())

	m, err := New(prog, cmd.machineOptions(cfg, logger)...)
	if err != nil {
		var be bracketError
		if errors.As(err, &be) {
			if loc, ok := prog.Location(be.addr); ok {
				err = fmt.Errorf("%v: %w", loc, err)
			}
		}
		return err
	}

	if cmd.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.timeout)
		defer cancel()
	}
	err = m.Run(ctx)
	logger.Debug("run done", "ops", m.Ops(), "halted", m.Halted())
	if err != nil {
		return err
	}

	if cmd.stateOut != "" {
		return writeStateFile(cmd.stateOut, m.State())
	}
	return nil
}

func (cmd *command) config() (config.Config, error) {
	cfg := config.Default()
	if cmd.configPath != "" {
		var err error
		if cfg, err = config.Load(cmd.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.debug {
		cfg.Debug = true
	}
	if cmd.capacity != 0 {
		cfg.Capacity = cmd.capacity
	}
	if cmd.maxOps != 0 {
		cfg.MaxOps = cmd.maxOps
	}
	return cfg, cfg.Validate()
}

func (cmd *command) load(cfg config.Config, args []string) (Program, error) {
	if len(args) == 0 {
		return LoadProgram(cfg.Capacity, cmd.stdin)
	}
	inputs := make([]io.Reader, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			for _, in := range inputs {
				in.(io.Closer).Close()
			}
			return Program{}, err
		}
		inputs = append(inputs, f)
	}
	return LoadProgram(cfg.Capacity, inputs...)
}

func (cmd *command) machineOptions(cfg config.Config, logger *slog.Logger) []MachineOption {
	opts := []MachineOption{
		WithOutput(cmd.stdout),
		WithMaxOps(cfg.MaxOps),
		WithSnapshotLayout(cfg.Snapshot.LineLength, cfg.Snapshot.DataPadding),
	}
	if cfg.Debug {
		opts = append(opts,
			WithLogf(logio.Leveledf(logger, slog.LevelDebug)),
			WithHexOutput(true),
			WithSnapshots(cmd.stdout),
			WithPacer(cmd.stdin),
		)
	}
	return opts
}

func writeStateFile(name string, st State) (rerr error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	return EncodeState(f, st)
}
