package run

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
)

type colorFunc func(a ...interface{}) string

// colors holds the injected color capability of the formatter. fatih/color
// honors NO_COLOR and non-terminal output globally, so in that case every
// colorFunc degrades to plain fmt.Sprint.
type colors struct {
	red     colorFunc
	yellow  colorFunc
	blue    colorFunc
	green   colorFunc
	magenta colorFunc
	dim     colorFunc
	dimRed  colorFunc
}

func newColors() *colors {
	return &colors{
		red:     color.New(color.FgRed).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		blue:    color.New(color.FgBlue).SprintFunc(),
		green:   color.New(color.FgGreen).SprintFunc(),
		magenta: color.New(color.FgMagenta, color.Bold).SprintFunc(),
		dim:     color.New(color.Faint).SprintFunc(),
		dimRed:  color.New(color.Faint, color.FgRed).SprintFunc(),
	}
}

// severity returns the color for a severity. Unknown severities render
// uncolored.
func (cl *colors) severity(sev pyright.Severity) colorFunc {
	switch sev {
	case pyright.SeverityError:
		return cl.red
	case pyright.SeverityWarning:
		return cl.yellow
	case pyright.SeverityInformation:
		return cl.blue
	}
	return fmt.Sprint
}
