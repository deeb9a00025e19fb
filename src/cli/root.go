// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/config"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/bench"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/x509/roots"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/logger"
)

// ErrInvalidTimestamp is returned when the validation time argument is not
// a non-zero decimal Unix timestamp.
var ErrInvalidTimestamp = errors.New("cli: timestamp must be a non-zero decimal Unix time")

// Streams carries the process streams the command reads and writes.
// Out receives only result lines; diagnostics go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// command holds flag values and collaborators for one invocation.
type command struct {
	log     logger.Logger
	streams Streams

	configPath string
	repeat     int
	timing     string
	rawErrors  bool
	summary    bool
	logFormat  string
	quiet      bool
}

// Execute runs the root command against the process arguments and standard streams.
//
// Parameters:
//   - ctx: Cancelled on SIGINT/SIGTERM; the session stops between input lines
//   - version: Reported by --version
//   - log: Logger for diagnostics; replaced by a JSON logger with --log-format json
//
// Returns:
//   - error: Any fatal error, already reported through the logger
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return Run(ctx, version, os.Args[1:], log, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Run is [Execute] with explicit arguments and streams.
func Run(ctx context.Context, version string, args []string, log logger.Logger, streams Streams) error {
	c := &command{log: log, streams: streams}

	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	rootCmd := c.newRootCommand(version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.log.Errorf("%v", err)
	}
	return err
}

func (c *command) newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   posix.ExecutableName() + " <ROOTS_PEM> <UNIX_TIMESTAMP>",
		Short: "X.509 chain validation benchmark harness",
		Long: `Reads certificate chains from stdin, validates each one against the trust
anchors in ROOTS_PEM at UNIX_TIMESTAMP, and writes one result line per
validation command to stdout:

  result: <token> <us_1> ... <us_n>

Input commands, one per line:

  leaf: <base64 DER>      start a chain
  interm: <base64 DER>    append an intermediate
  repeat: <1..128>        trial count for following validations
  validate                validate without a hostname check
  domain: <hostname>      validate with a hostname check`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&c.configPath, "config", "c", "", "configuration file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	flags.IntVarP(&c.repeat, "repeat", "r", config.DefaultRepeat, fmt.Sprintf("trial count until the first repeat line (1..%d)", protocol.MaxRepeat))
	flags.StringVar(&c.timing, "timing", config.DefaultTiming, "what each measurement covers: verify or trial (decode, parse and verify)")
	flags.BoolVar(&c.rawErrors, "raw-errors", false, "report the verifier's own error text instead of stable descriptions")
	flags.BoolVar(&c.summary, "summary", false, "write a summary table to stderr at end of input")
	flags.StringVar(&c.logFormat, "log-format", config.DefaultLogFormat, "diagnostic format: text or json")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "suppress informational diagnostics")

	return rootCmd
}

// run loads settings and the trust store, then drives the session until end of input.
func (c *command) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.applyFlags(cmd.Flags(), cfg)
	if err := c.selectLogger(cfg); err != nil {
		return err
	}

	at, err := parseTimestamp(args[1])
	if err != nil {
		return err
	}
	if err := protocol.ValidateRepeat(cfg.Bench.Repeat); err != nil {
		return fmt.Errorf("cli: --repeat: %w", err)
	}
	timing, err := bench.ParseTiming(cfg.Bench.Timing)
	if err != nil {
		return err
	}

	store, err := roots.Load(args[0])
	if err != nil {
		return err
	}
	c.log.Printf("loaded %d trust anchor(s) from %s; validation time %s", store.Len(), args[0], at.Format(time.RFC3339))

	var summary *bench.Summary
	if cfg.Bench.Summary {
		summary = bench.NewSummary()
	}

	out := bufio.NewWriter(c.streams.Out)
	driver := bench.NewDriver(store, bench.Options{Timing: timing, RawErrors: cfg.Bench.RawErrors})
	session, err := bench.NewSession(driver, out, bench.SessionConfig{
		Time:    at,
		Repeat:  cfg.Bench.Repeat,
		Summary: summary,
	})
	if err != nil {
		return err
	}

	runErr := session.Run(cmd.Context(), c.streams.In)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("cli: failed to flush results: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	if summary != nil {
		if err := summary.Render(c.streams.Err); err != nil {
			return fmt.Errorf("cli: failed to render summary: %w", err)
		}
	}
	return nil
}

// applyFlags overrides configuration values with flags set on the command line.
func (c *command) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("repeat") {
		cfg.Bench.Repeat = c.repeat
	}
	if flags.Changed("timing") {
		cfg.Bench.Timing = c.timing
	}
	if flags.Changed("raw-errors") {
		cfg.Bench.RawErrors = c.rawErrors
	}
	if flags.Changed("summary") {
		cfg.Bench.Summary = c.summary
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = c.logFormat
	}
	if flags.Changed("quiet") {
		cfg.Log.Silent = c.quiet
	}
}

// selectLogger swaps in the logger the configuration asks for.
func (c *command) selectLogger(cfg *config.Config) error {
	switch cfg.Log.Format {
	case "json":
		c.log = logger.NewJSONLogger(c.streams.Err, cfg.Log.Silent)
	case "text":
		if l, ok := c.log.(*logger.CLILogger); ok {
			l.SetSilent(cfg.Log.Silent)
		}
	default:
		return fmt.Errorf("cli: unknown log format %q (want text or json)", cfg.Log.Format)
	}
	return nil
}

// parseTimestamp converts a decimal Unix timestamp into the validation time.
// Instants before 1970 are allowed; zero is not.
func parseTimestamp(s string) (time.Time, error) {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, s, err)
	}
	if secs == 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return time.Unix(secs, 0).UTC(), nil
}
