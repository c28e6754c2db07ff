// Command add_days reads one ISO-8601 date or date-time per line from
// stdin and writes it shifted by a fixed number of calendar days.
//
//	cat dates.txt | add_days 5
//	add_days -10 < dates.txt
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"adddays/internal/config"
	"adddays/internal/dateshift"
	"adddays/internal/filter"
	"adddays/internal/logging"
	"adddays/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

type options struct {
	configPath string
	onError    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "add_days <offsetDays>",
		Short: "Shift ISO-8601 dates read from stdin by a number of days",
		Long: `add_days reads one ISO-8601 date or date-time per line from standard input,
adds offsetDays calendar days, and writes the result to standard output in the
same form: date-only input stays date-only, time of day, fractional seconds and
UTC offsets are kept as written.

offsetDays is a base-10 signed integer; negative values move dates backwards.

By default the first line that is not a valid ISO-8601 value stops the run
with exit status 1. With --on-error=skip bad lines are reported on stderr and
the run continues.`,
		Example: `  printf '2024-01-15\n2024-01-31\n' | add_days 5
  add_days -10 < dates.txt`,
		Version:       version,
		Args:          offsetArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddDays(cmd, args, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (logging, default error policy)")
	cmd.Flags().StringVar(&opts.onError, "on-error", string(filter.PolicyAbort), "what to do with an unparsable line: abort or skip")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func offsetArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return withCode(exitUsage, &dateshift.ArgumentError{Reason: "missing number of days"})
	}
	return withCode(exitUsage, &dateshift.ArgumentError{
		Reason: fmt.Sprintf("expected exactly one offset, got %d arguments", len(args)),
	})
}

func runAddDays(cmd *cobra.Command, args []string, opts *options) error {
	offset, err := dateshift.ParseOffset(args[0])
	if err != nil {
		return withCode(exitUsage, err)
	}

	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return withCode(exitUsage, err)
		}
	}
	if cmd.Flags().Changed("on-error") {
		cfg.Filter.OnError = opts.onError
	}
	policy, err := filter.ParsePolicy(cfg.Filter.OnError)
	if err != nil {
		return withCode(exitUsage, err)
	}

	logger, closeLog, err := logging.New(cfg.Logging, opts.verbose, cmd.ErrOrStderr())
	if err != nil {
		return withCode(exitUsage, err)
	}
	defer closeLog()
	defer func() { _ = logger.Sync() }()

	logging.For(logger, logging.CategoryBoot).Debug("starting",
		zap.Int("offset_days", offset),
		zap.String("policy", string(policy)),
		zap.String("config", opts.configPath),
		zap.String("version", version))

	stats, err := filter.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), filter.Options{
		OffsetDays:   offset,
		Policy:       policy,
		MaxLineBytes: cfg.Filter.MaxLineBytes,
		Logger:       logging.For(logger, logging.CategoryFilter),
	})
	if err != nil {
		return classify(err)
	}

	if stats.Skipped > 0 {
		ui.NewPrinter(cmd.ErrOrStderr()).Warn(
			fmt.Sprintf("skipped %d of %d lines", stats.Skipped, stats.Read))
	}
	return nil
}

// execute runs the command against the given streams and returns the
// process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	p := ui.NewPrinter(stderr)
	p.Error(err.Error())
	code := exitCode(err)
	if code == exitUsage {
		fmt.Fprintf(stderr, "usage: %s\n", cmd.UseLine())
	}
	return code
}

// SIGINT and SIGTERM keep their default action: the process dies at once,
// even while blocked reading stdin.
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
