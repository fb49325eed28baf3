// Package config reads the optional .pyright-pretty.yaml configuration
// file. Every value has a flag equivalent; flags win over the file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Context     int      `json:"context,omitempty" yaml:"context" jsonschema:"description=Number of source lines shown around each diagnostic,minimum=0"`
	ShowSummary bool     `json:"show-summary,omitempty" yaml:"show-summary" jsonschema:"description=Append the summary block after the diagnostics"`
	Quiet       bool     `json:"quiet,omitempty" yaml:"quiet" jsonschema:"description=Suppress the success message when no diagnostics are found"`
	Options     []string `json:"options,omitempty" yaml:"options" jsonschema:"description=Extra command line options passed to pyright before the targets"`
}

func (c *Config) Init() error {
	if c.Context < 0 {
		return errors.New("context must not be negative")
	}
	for _, opt := range c.Options {
		if !strings.HasPrefix(opt, "-") {
			return fmt.Errorf("options must be flags, not targets: %s", opt)
		}
	}
	return nil
}

var configFileNames = []string{
	".pyright-pretty.yaml",
	".pyright-pretty.yml",
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns the configuration file path, preferring an explicitly
// passed path over the well-known names in the working directory.
// An empty return means no configuration file is used.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	for _, name := range configFileNames {
		ok, err := afero.Exists(f.fs, name)
		if err != nil {
			return "", fmt.Errorf("check if a configuration file exists: %w", err)
		}
		if ok {
			return name, nil
		}
	}
	return "", nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
