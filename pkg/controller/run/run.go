package run

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
	"github.com/sirupsen/logrus"
)

// ErrDiagnosticsFound is returned when pyright reported diagnostics.
// main maps it to exit code 1 without logging a stack of wrapped errors.
var ErrDiagnosticsFound = errors.New("pyright found diagnostics")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}

	args := make([]string, 0, len(c.cfg.Options)+len(c.param.Targets))
	args = append(args, c.cfg.Options...)
	args = append(args, c.param.Targets...)

	result, err := c.executor.Run(ctx, args)
	if err != nil {
		return fmt.Errorf("run pyright: %w", err)
	}
	out, err := pyright.Parse(logE, result, c.param.Targets)
	if err != nil {
		return err
	}

	if c.param.Debug {
		if err := c.dumpDebug(out); err != nil {
			return err
		}
	}
	if c.param.SARIF {
		if err := c.outputSARIF(out); err != nil {
			return err
		}
		if len(out.GeneralDiagnostics) > 0 {
			return ErrDiagnosticsFound
		}
		return nil
	}

	if len(out.GeneralDiagnostics) == 0 {
		if !c.quiet() {
			fmt.Fprintln(c.param.Stdout, c.colors.green("No errors found!"))
		}
		return nil
	}

	contextLines := c.contextLines()
	formatted := c.loadContexts(ctx, out.GeneralDiagnostics, contextLines)
	rendered := make([]string, len(formatted))
	for i := range formatted {
		rendered[i] = c.formatError(&formatted[i], contextLines)
	}
	fmt.Fprintln(c.param.Stdout, strings.Join(rendered, "\n\n"))

	if c.showSummary() {
		fmt.Fprintln(c.param.Stdout)
		fmt.Fprintln(c.param.Stdout, c.formatSummary(out.Summary))
	}
	return ErrDiagnosticsFound
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	if err := c.cfgReader.Read(c.cfg, p); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	return nil
}

// dumpDebug writes the decoded report as indented JSON to stderr before
// anything is rendered, so a broken rendering can be compared against the
// raw feed.
func (c *Controller) dumpDebug(out *pyright.Output) error {
	encoder := json.NewEncoder(c.param.Stderr)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode the pyright output as JSON: %w", err)
	}
	return nil
}
