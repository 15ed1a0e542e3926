package main

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/henderiw/pyrange/pkg/iprange"
	"github.com/henderiw/pyrange/pkg/pyrange"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
)

var version = "(devel)"

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logConsole := os.Stderr

	handlers := []slog.Handler{
		tint.NewHandler(logConsole, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logConsole.Fd()),
		}),
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

// take collects at most limit values of seq, all of them when limit is 0.
func take[E any](seq iter.Seq[E], limit int) []E {
	var vals []E
	for v := range seq {
		if limit > 0 && len(vals) == limit {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

func printRange[E any](w io.Writer, r pyrange.Range[E], limit int, sep string) error {
	vals := take(r.All(), limit)
	slog.Debug("Range", "range", r.String(), "direction", r.Direction().String(), "values", len(vals))

	strs := lo.Map(vals, func(v E, _ int) string {
		return fmt.Sprint(v)
	})
	_, err := fmt.Fprintln(w, strings.Join(strs, sep))
	return errors.Wrap(err, "failed to write values")
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		EnvVars:     []string{"PYRANGE_VERBOSE"},
		Destination: &verbose,
	}
	outputFlags := []cli.Flag{
		verboseFlag,
		&cli.StringFlag{
			Name:  "sep",
			Usage: "value separator",
			Value: " ",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "print at most this many values (0 for all)",
		},
	}

	before := func(_ *cli.Context) error {
		setupLogger(verbose)
		return nil
	}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "pyrange",
		Usage:                  "print python style ranges",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,
		Commands: []*cli.Command{
			{
				Name:      "int",
				Usage:     "integer range",
				ArgsUsage: "[start:]stop[:step]",
				Flags:     outputFlags,
				Before:    before,
				Action: func(cCtx *cli.Context) error {
					r, err := pyrange.Parse[int64](cCtx.Args().First())
					if err != nil {
						return errors.Wrapf(err, "invalid range %q", cCtx.Args().First())
					}
					return printRange(cCtx.App.Writer, r, cCtx.Int("limit"), cCtx.String("sep"))
				},
			},
			{
				Name:      "float",
				Usage:     "floating point range",
				ArgsUsage: "[start:]stop[:step]",
				Flags:     outputFlags,
				Before:    before,
				Action: func(cCtx *cli.Context) error {
					r, err := pyrange.Parse[float64](cCtx.Args().First())
					if err != nil {
						return errors.Wrapf(err, "invalid range %q", cCtx.Args().First())
					}
					return printRange(cCtx.App.Writer, r, cCtx.Int("limit"), cCtx.String("sep"))
				},
			},
			{
				Name:      "ip",
				Usage:     "ip address range",
				ArgsUsage: "from-to|prefix",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "step",
						Usage: "address step, negative walks backward",
						Value: 1,
					},
				}, outputFlags...),
				Before: before,
				Action: func(cCtx *cli.Context) error {
					r, err := iprange.Parse(cCtx.Args().First(), cCtx.Int("step"))
					if err != nil {
						return errors.Wrapf(err, "invalid ip range")
					}
					return printRange(cCtx.App.Writer, r, cCtx.Int("limit"), cCtx.String("sep"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}
