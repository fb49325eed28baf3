package run

import (
	"fmt"
	"strings"

	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
)

// Gutter layout: a one-character marker, a right-aligned 4-digit line
// number, and a box-drawing separator. Indicator and separator lines use a
// blank gutter of the same width so carets align with the source text.
const (
	gutterBlank     = "       │ "
	gutterSeparator = "       │"
	helpPrefix      = " help ~ "
	helpPrefixBlock = "      ~ "
)

// formatError renders one diagnostic as a multi-line string. It is a pure
// function of the diagnostic, its context lines, and the context line
// count; it never fails and performs no I/O.
func (c *Controller) formatError(f *formattedDiagnostic, contextLines int) string {
	if f.Range == nil {
		return c.formatFileLevel(f)
	}
	return c.formatRanged(f, contextLines)
}

// formatFileLevel renders diagnostics without a range, dispatching on the
// rule kind. Rules without bespoke handling render a generic block plus an
// explicit notice so the gap is visible without being fatal.
func (c *Controller) formatFileLevel(f *formattedDiagnostic) string {
	sev := c.colors.severity(f.Severity)
	lines := []string{c.header(f, sev)}

	switch kindOfRule(f.Rule) {
	case ruleImportCycles:
		// The first message line explains the cycle; every following
		// line is one file in the cycle.
		msgLines := strings.Split(f.Message, "\n")
		for _, member := range msgLines[1:] {
			lines = append(lines, "  "+sev(">")+" "+member)
		}
		lines = append(lines, helpPrefix+c.colors.dim(msgLines[0]))
	case ruleUnknown:
		for i, msgLine := range strings.Split(f.Message, "\n") {
			prefix := "  ^ "
			if i > 0 {
				prefix = "    "
			}
			lines = append(lines, prefix+c.colors.dimRed(msgLine))
		}
		rule := f.Rule
		if rule == "" {
			rule = "unknown rule"
		}
		lines = append(lines,
			helpPrefix+c.colors.dim(rule),
			fmt.Sprintf("note: rule %q needs custom handling", rule))
	}
	return strings.Join(lines, "\n")
}

// formatRanged renders diagnostics with a range: a header, the context
// lines with highlighted span and caret indicator, and a trailing help
// block with the full message. An empty context collapses the rendering to
// the header alone rather than fabricating misleading output.
func (c *Controller) formatRanged(f *formattedDiagnostic, contextLines int) string {
	sev := c.colors.severity(f.Severity)
	lines := []string{c.header(f, sev)}
	if len(f.context) == 0 {
		return lines[0]
	}

	contextStart := max(0, f.Range.Start.Line-contextLines)
	for i, src := range f.context {
		n := contextStart + i
		within := n >= f.Range.Start.Line && n <= f.Range.End.Line
		marker := " "
		if within {
			marker = sev(">")
		}
		content := src
		if within {
			content = c.highlight(src, n, f.Range, sev)
		}
		lines = append(lines, fmt.Sprintf("%s %s │ %s", marker, c.colors.dim(fmt.Sprintf("%4d", n+1)), content))

		if indicator, ok := c.indicator(n, f, sev); ok {
			lines = append(lines, indicator)
		}
	}

	lines = append(lines, gutterSeparator)
	for i, msgLine := range strings.Split(f.Message, "\n") {
		prefix := helpPrefix
		if i > 0 {
			prefix = helpPrefixBlock
		}
		lines = append(lines, prefix+c.colors.dim(msgLine))
	}
	return strings.Join(lines, "\n")
}

// header renders the severity label and location. Positions are stored
// zero-based and displayed one-based.
func (c *Controller) header(f *formattedDiagnostic, sev colorFunc) string {
	location := f.File
	if f.Range != nil {
		location = fmt.Sprintf("%s:%d:%d", f.File, max(0, f.Range.Start.Line)+1, max(0, f.Range.Start.Character)+1)
	}
	header := sev(string(f.Severity)+":") + " " + c.colors.blue(location)
	if f.Rule != "" {
		header += " " + c.colors.dim("» "+f.Rule)
	}
	return header
}

// highlight colors the portion of a within-span line that the range
// covers: from start.Character on the first line, up to end.Character on
// the last line, and the whole line in between. pyright counts columns in
// characters, not bytes, so the line is sliced by rune. Columns outside
// the line are clamped rather than validated.
func (c *Controller) highlight(src string, n int, r *pyright.Range, sev colorFunc) string {
	runes := []rune(src)
	from, to := 0, len(runes)
	if n == r.Start.Line {
		from = min(max(r.Start.Character, 0), len(runes))
	}
	if n == r.End.Line {
		to = min(max(r.End.Character, 0), len(runes))
	}
	if to < from {
		to = from
	}
	if from == to {
		return src
	}
	return string(runes[:from]) + sev(string(runes[from:to])) + string(runes[to:])
}

// indicator places the caret line, once per diagnostic. A single-line
// range underlines the covered columns beneath its start line. A
// multi-line range emits a single caret beneath the end line at the last
// covered column, clamped to column 0 when end.Character is 0.
func (c *Controller) indicator(n int, f *formattedDiagnostic, sev colorFunc) (string, bool) {
	r := f.Range
	if r.MultiLine() {
		if n != r.End.Line {
			return "", false
		}
		padding := strings.Repeat(" ", max(0, r.End.Character-1))
		return gutterBlank + padding + sev("^"), true
	}
	if n != r.Start.Line {
		return "", false
	}
	padding := strings.Repeat(" ", max(0, r.Start.Character))
	carets := strings.Repeat("^", max(1, r.End.Character-r.Start.Character))
	line := gutterBlank + padding + sev(carets)
	if f.Rule != "" {
		flavor := f.Rule
		if desc := ruleDescription(f.Rule); desc != "" {
			flavor += " » " + desc
		}
		line += " " + c.colors.dim(flavor)
	}
	return line, true
}
