package run

import (
	"fmt"
	"strings"

	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
)

// formatSummary renders the aggregate counters. Counters are green when
// zero and colored per kind otherwise, so a glance shows what went wrong.
func (c *Controller) formatSummary(s pyright.Summary) string {
	count := func(n int, cf colorFunc) string {
		if n == 0 {
			return c.colors.green(fmt.Sprint(n))
		}
		return cf(fmt.Sprint(n))
	}
	rows := []string{
		c.colors.blue("summary:"),
		fmt.Sprintf("  files analyzed   %s %d", c.colors.dim("»"), s.FilesAnalyzed),
		fmt.Sprintf("  errors           %s %s", c.colors.dim("»"), count(s.ErrorCount, c.colors.red)),
		fmt.Sprintf("  warnings         %s %s", c.colors.dim("»"), count(s.WarningCount, c.colors.yellow)),
		fmt.Sprintf("  information      %s %s", c.colors.dim("»"), count(s.InformationCount, c.colors.blue)),
		fmt.Sprintf("  time             %s %s", c.colors.dim("»"), c.colors.magenta(fmt.Sprintf("%gs", s.TimeInSec))),
	}
	return strings.Join(rows, "\n")
}
