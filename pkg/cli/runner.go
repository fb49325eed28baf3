// Package cli defines the pyright-pretty command line interface.
package cli

import (
	"context"
	"io"

	"github.com/pyright-pretty/pyright-pretty/pkg/config"
	"github.com/pyright-pretty/pyright-pretty/pkg/controller/run"
	"github.com/pyright-pretty/pyright-pretty/pkg/log"
	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func init() {
	// -v belongs to --verbose, so drop the default alias of --version.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry

	verboseCount int
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:      "pyright-pretty",
		Usage:     "Pretty print pyright diagnostics with source context",
		Version:   r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		ArgsUsage: "[file or directory...]",
		Description: `Run pyright against the given targets and render its diagnostics as a
colorized, editor-style error report.

$ pyright-pretty src/

Extra pyright options can be set in .pyright-pretty.yaml.
`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Dump the parsed pyright output as JSON before rendering",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Increase verbosity (repeatable)",
				Config:  cli.BoolConfig{Count: &r.verboseCount},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress the success message when no diagnostics are found",
			},
			&cli.IntFlag{
				Name:    "context",
				Aliases: []string{"c"},
				Usage:   "Number of source lines shown around each diagnostic",
				Value:   2,
			},
			&cli.BoolFlag{
				Name:  "show-summary",
				Usage: "Append the summary block after the diagnostics",
			},
			&cli.BoolFlag{
				Name:    "global",
				Aliases: []string{"g"},
				Usage:   "Accepted for compatibility; currently a no-op",
			},
			&cli.BoolFlag{
				Name:  "sarif",
				Usage: "Output diagnostics as SARIF instead of the pretty report",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Configuration file path",
				Sources: cli.EnvVars("PYRIGHT_PRETTY_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level",
				Sources: cli.EnvVars("PYRIGHT_PRETTY_LOG_LEVEL"),
			},
		},
		EnableShellCompletion: true,
		Action:                r.action,
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

func (r *Runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	log.SetVerbosity(c.Bool("debug"), c.Bool("quiet"), r.verboseCount, r.LogE)

	fs := afero.NewOsFs()
	param := &run.ParamRun{
		Targets:        c.Args().Slice(),
		ConfigFilePath: c.String("config"),
		ContextLines:   -1,
		ShowSummary:    c.Bool("show-summary"),
		Quiet:          c.Bool("quiet"),
		Debug:          c.Bool("debug"),
		SARIF:          c.Bool("sarif"),
		Stdout:         r.Stdout,
		Stderr:         r.Stderr,
	}
	if c.IsSet("context") {
		param.ContextLines = int(c.Int("context"))
	}
	ctrl := run.New(pyright.NewExecutor(), fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.LogE) //nolint:wrapcheck
}
