// Package main provides the bhvtree binary: it loads a YAML tree document,
// runs it over a key/value blackboard seeded from the command line, and
// reports the verdict. Useful for prototyping tree shapes and guard
// expressions before wiring them into an application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/loader"
	"github.com/hupe1980/bhvtree/logging"
	"github.com/hupe1980/bhvtree/runner"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		sets     []string
		maxTicks int
		interval time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "bhvtree <tree.yaml>",
		Short: "Run a behavior tree document",
		Long: `bhvtree loads a YAML tree document and drives it to completion over a
key/value blackboard.

Documents use sequence/selector composites, decorators (invert,
force_success, force_failure, repeat, repeat_until, run_if) and expr
guard expressions over the blackboard. A small set of built-in leaves
is available for prototyping:

- action log_state: print the current blackboard
- action noop:      succeed without doing anything
- step always_fail: fail

Exit status is 0 when the tree succeeds and 1 when it fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(args[0], sets, maxTicks, interval, logLevel)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "seed a blackboard entry, key=value (repeatable)")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", 1000, "abort after this many ticks")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between ticks")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	return cmd
}

func run(path string, sets []string, maxTicks int, interval time.Duration, logLevel string) error {
	logger := logging.NewSlogLogger(parseLevel(logLevel), "text")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tree document: %w", err)
	}

	bb, err := parseBlackboard(sets)
	if err != nil {
		return err
	}

	tree, err := loader.Load(data, builtins(), loader.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status, err := runner.New(tree,
		runner.WithLogger(logger),
		runner.WithMaxTicks(maxTicks),
		runner.WithInterval(interval),
	).Run(ctx, bb)
	if err != nil {
		return err
	}

	logger.Info("tree finished", "status", status.String())

	if status != core.StatusSuccess {
		return fmt.Errorf("tree failed")
	}

	return nil
}

// builtins registers the prototyping leaves available to every document.
func builtins() *loader.Registry[map[string]any] {
	return loader.NewRegistry[map[string]any]().
		Action("log_state", func(bb map[string]any) {
			fmt.Printf("state: %v\n", bb)
		}).
		Action("noop", func(map[string]any) {}).
		Step("always_fail", func(map[string]any) core.Status {
			return core.StatusFailure
		})
}

// parseBlackboard turns --set key=value flags into the shared map. Values
// are coerced to bool, int or float when they parse as one, so expr guards
// can compare them numerically.
func parseBlackboard(sets []string) (map[string]any, error) {
	bb := map[string]any{}

	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", kv)
		}
		bb[key] = coerce(value)
	}

	return bb, nil
}

func coerce(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseLevel(s string) logging.LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
