package run

import (
	"context"
	"strings"

	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// formattedDiagnostic pairs a diagnostic with the source lines surrounding
// its range. It lives only for the duration of one render.
type formattedDiagnostic struct {
	pyright.Diagnostic
	context []string
}

// loadContext reads the source lines around the diagnostic's range.
// Diagnostics without a range get no context and no file I/O. Read
// failures are swallowed: missing context degrades the display but must
// never abort the whole report.
func (c *Controller) loadContext(diag *pyright.Diagnostic, contextLines int) []string {
	if diag.Range == nil {
		return nil
	}
	data, err := afero.ReadFile(c.fs, diag.File)
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	start := max(0, diag.Range.Start.Line-contextLines)
	end := min(len(lines), diag.Range.End.Line+contextLines+1)
	if start >= end {
		return nil
	}
	return lines[start:end]
}

// loadContexts loads context for every diagnostic concurrently. Each load
// touches a distinct diagnostic and writes to a distinct slot, so results
// stay in the original feed order regardless of completion order.
func (c *Controller) loadContexts(ctx context.Context, diags []pyright.Diagnostic, contextLines int) []formattedDiagnostic {
	formatted := make([]formattedDiagnostic, len(diags))
	g, _ := errgroup.WithContext(ctx)
	for i, diag := range diags {
		g.Go(func() error {
			formatted[i] = formattedDiagnostic{
				Diagnostic: diag,
				context:    c.loadContext(&diag, contextLines),
			}
			return nil
		})
	}
	// Loads are best-effort and never return errors.
	_ = g.Wait()
	return formatted
}
