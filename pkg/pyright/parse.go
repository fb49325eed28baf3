package pyright

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
)

// ParseError is returned when pyright exits non-zero but its stdout is not
// a valid --outputjson document. Both captured streams are kept so the
// failure can be diagnosed.
type ParseError struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse pyright output: %v\nstdout:\n%s\nstderr:\n%s", e.Err, e.Stdout, e.Stderr)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse turns a pyright run into an Output.
//
// Exit status 0 short-circuits: pyright doesn't reliably emit JSON on the
// success path, so an empty successful Output is synthesized with
// FilesAnalyzed set to the number of requested targets. On a non-zero exit
// stdout is decoded; a decode failure is fatal and surfaces as *ParseError.
func Parse(logE *logrus.Entry, result *Result, targets []string) (*Output, error) {
	if result.ExitCode == 0 {
		return &Output{
			GeneralDiagnostics: []Diagnostic{},
			Summary:            Summary{FilesAnalyzed: len(targets)},
		}, nil
	}
	out := &Output{}
	if err := json.Unmarshal(result.Stdout, out); err != nil {
		return nil, &ParseError{
			Stdout: result.Stdout,
			Stderr: result.Stderr,
			Err:    err,
		}
	}
	checkVersion(logE, out.Version)
	normalize(logE, out)
	return out, nil
}

// Feeds from pyright releases older than this predate per-diagnostic rule
// names in --outputjson; they still render, but the caret flavor text and
// rule handling degrade.
var minFeedVersion = version.Must(version.NewVersion("1.1.100"))

// checkVersion warns when the reported pyright version predates the
// supported feed format. The tool still renders best-effort either way.
func checkVersion(logE *logrus.Entry, v string) {
	if v == "" {
		return
	}
	parsed, err := version.NewVersion(v)
	if err != nil {
		logE.WithField("version", v).Debug("pyright reported an unparsable version")
		return
	}
	if parsed.LessThan(minFeedVersion) {
		logE.WithFields(logrus.Fields{
			"version":     parsed.String(),
			"min_version": minFeedVersion.String(),
		}).Warn("pyright is older than the supported --outputjson format; rule names may be missing")
		return
	}
	logE.WithField("version", parsed.String()).Debug("pyright version")
}

// normalize removes invalid ranges (inverted or with negative positions)
// so the formatter never sees one. The diagnostic itself is kept and
// rendered file-level. Unknown severities pass through; they only cost
// the coloring.
func normalize(logE *logrus.Entry, out *Output) {
	for i, d := range out.GeneralDiagnostics {
		if !d.Severity.Known() {
			logE.WithFields(logrus.Fields{
				"file":     d.File,
				"severity": d.Severity,
			}).Debug("pyright reported an unknown severity")
		}
		if d.Range == nil || d.Range.Valid() {
			continue
		}
		logE.WithFields(logrus.Fields{
			"file": d.File,
			"rule": d.Rule,
		}).Debug("drop an invalid range")
		out.GeneralDiagnostics[i].Range = nil
	}
}
