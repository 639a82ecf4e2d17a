// eta resolves schedule requests to their next occurrence.
//
// Each FILE holds one JSON request object or an array of them (comments and
// trailing commas are allowed). One line is printed per request: its id, the
// ETA in UTC, the ETA as local wall-clock in the request's timezone and the
// time until it. Requests that fail validation are reported on their own line
// and make the command exit non-zero.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	eta "github.com/jdziat/schedule-eta"
)

// errRejected is returned when at least one request failed validation.
var errRejected = errors.New("one or more requests were rejected")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	now        string
	configPath string
	upcoming   int
	watch      bool
	json       bool
	logLevel   string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var f flags
	flagSet := pflag.NewFlagSet("eta", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&f.now, "now", "", "reference instant (RFC 3339); defaults to the current time")
	flagSet.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	flagSet.IntVarP(&f.upcoming, "upcoming", "n", 0, "print the next N occurrences instead of one")
	flagSet.BoolVarP(&f.watch, "watch", "w", false, "re-resolve files whenever they change")
	flagSet.BoolVar(&f.json, "json", false, "print one JSON object per line")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	paths := flagSet.Args()
	if len(paths) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("no request files given")
	}

	cfg := DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = LoadConfig(f.configPath); err != nil {
			return err
		}
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())

	var fixed time.Time
	if f.now != "" {
		if fixed, err = time.Parse(time.RFC3339, f.now); err != nil {
			return fmt.Errorf("invalid --now %q: %w", f.now, err)
		}
	}
	if f.upcoming < 0 || f.upcoming > eta.MaxUpcoming {
		return fmt.Errorf("--upcoming must be between 0 and %d", eta.MaxUpcoming)
	}

	opts := []eta.Option{eta.WithLogger(logger)}
	if !fixed.IsZero() {
		opts = append(opts, eta.WithClock(func() time.Time { return fixed }))
	}
	if cfg.MaxSteps > 0 {
		opts = append(opts, eta.WithMaxSteps(cfg.MaxSteps))
	}
	if cfg.MaxLookahead > 0 {
		opts = append(opts, eta.WithMaxLookahead(cfg.MaxLookahead))
	}

	c := &cli{
		resolver: eta.New(opts...),
		printer:  newPrinter(stdout, f.json, cfg.DisplayFormat),
		logger:   logger,
		upcoming: f.upcoming,
		now: func() time.Time {
			if !fixed.IsZero() {
				return fixed
			}
			return time.Now()
		},
	}

	var failed bool
	for _, path := range paths {
		if err := c.resolveFile(path); err != nil {
			if !errors.Is(err, errRejected) {
				return err
			}
			failed = true
		}
	}

	if f.watch {
		return watch(ctx, logger, paths, func(path string) {
			if err := c.resolveFile(path); err != nil && !errors.Is(err, errRejected) {
				logger.Error("resolving request file", "path", path, "error", err)
			}
		})
	}
	if failed {
		return errRejected
	}
	return nil
}

type cli struct {
	resolver *eta.Resolver
	printer  *printer
	logger   *slog.Logger
	upcoming int
	now      func() time.Time
}

// resolveFile prints the outcome of every request in path. It returns
// errRejected when a request failed validation, or the error that stopped
// the file from being read or decoded.
func (c *cli) resolveFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	items, err := eta.DecodeBatch(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	ref := c.now().UTC()
	var rejected int
	for _, item := range items {
		etas, err := c.resolve(item, ref)
		if err != nil {
			rejected++
			c.logger.Warn("request rejected", "path", path, "id", item.ID, "error", err)
		}
		if werr := c.printer.print(item, ref, etas, err); werr != nil {
			return werr
		}
	}
	c.logger.Info("resolved request file", "path", path, "requests", len(items), "rejected", rejected)
	if rejected > 0 {
		return errRejected
	}
	return nil
}

func (c *cli) resolve(item eta.Item, ref time.Time) ([]eta.ETA, error) {
	if c.upcoming == 0 {
		e, err := c.resolver.Resolve(item.Request, ref)
		if err != nil || e.IsNone() {
			return nil, err
		}
		return []eta.ETA{e}, nil
	}
	times, err := c.resolver.Upcoming(item.Request, ref, c.upcoming)
	if err != nil {
		return nil, err
	}
	etas := make([]eta.ETA, len(times))
	for i, t := range times {
		etas[i] = eta.At(t)
	}
	return etas, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `eta resolves schedule requests to their next occurrence.

Usage:
  eta [flags] FILE...

Each FILE holds one request object or an array of them:

  {
    "id": "report",
    "schedule_type": "cron",        // date_specific | cron | recurring
    "timezone": "Asia/Kolkata",
    "cron": "*/5 * * * *",
    "end_date": "12/31/2026",
    "end_time": "11:59 PM"
  }

Examples:
  # Next occurrence of every request in a file
  eta requests.json

  # Next five occurrences as JSON lines, relative to a fixed instant
  eta --json --upcoming 5 --now 2026-02-08T10:32:17Z requests.json

  # Keep printing as the file is edited
  eta --watch requests.json

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
