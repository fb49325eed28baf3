// Package run implements the core logic of pyright-pretty. The controller
// spawns pyright, parses its --outputjson report, enriches each diagnostic
// with surrounding source context, and renders a colorized, editor-style
// error report. It separates the CLI layer from the rendering logic and
// keeps all file access behind afero so tests run on an in-memory
// filesystem.
package run

import (
	"io"

	"github.com/pyright-pretty/pyright-pretty/pkg/config"
	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
	"github.com/spf13/afero"
)

const defaultContextLines = 2

type Controller struct {
	executor  pyright.Executor
	fs        afero.Fs
	cfg       *config.Config
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	param     *ParamRun
	colors    *colors
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	// Targets are the file or directory paths forwarded to pyright.
	Targets        []string
	ConfigFilePath string
	// ContextLines is the -c/--context value, or -1 when the flag wasn't
	// passed so the configuration file can decide.
	ContextLines int
	ShowSummary  bool
	Quiet        bool
	Debug        bool
	SARIF        bool
	Stdout       io.Writer
	Stderr       io.Writer
}

func New(executor pyright.Executor, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		executor:  executor,
		fs:        fs,
		cfg:       &config.Config{},
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		param:     param,
		colors:    newColors(),
	}
}

// contextLines resolves the effective context line count: flag, then
// configuration file, then the default of 2.
func (c *Controller) contextLines() int {
	if c.param.ContextLines >= 0 {
		return c.param.ContextLines
	}
	if c.cfg.Context > 0 {
		return c.cfg.Context
	}
	return defaultContextLines
}

func (c *Controller) quiet() bool {
	return c.param.Quiet || c.cfg.Quiet
}

func (c *Controller) showSummary() bool {
	return c.param.ShowSummary || c.cfg.ShowSummary
}
