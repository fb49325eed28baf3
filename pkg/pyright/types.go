// Package pyright models pyright's --outputjson diagnostic feed and runs
// the pyright process. The types mirror the JSON document pyright emits:
// an object with generalDiagnostics and a summary, where every position is
// zero-based. This package only consumes and redisplays the feed; it never
// does any type checking itself.
package pyright

// Severity is the severity of a diagnostic as reported by pyright.
type Severity string

const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// Known reports whether the severity is one pyright documents.
// Unknown severities are rendered uncolored rather than rejected.
func (s Severity) Known() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInformation:
		return true
	}
	return false
}

// Location is a zero-based line and column offset into a text file.
type Location struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a span of source positions. Positions must be non-negative and
// Start must not come after End in document order; feeds violating either
// are treated as having no range.
type Range struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// Valid reports whether all positions are non-negative and Start <= End in
// document order.
func (r *Range) Valid() bool {
	if r == nil {
		return false
	}
	if r.Start.Line < 0 || r.Start.Character < 0 || r.End.Line < 0 || r.End.Character < 0 {
		return false
	}
	if r.Start.Line != r.End.Line {
		return r.Start.Line < r.End.Line
	}
	return r.Start.Character <= r.End.Character
}

// MultiLine reports whether the range covers more than one line.
func (r *Range) MultiLine() bool {
	return r != nil && r.Start.Line != r.End.Line
}

// Diagnostic is one reported issue. Range is nil for file-level
// diagnostics such as import cycles. Rule may be empty.
type Diagnostic struct {
	File     string   `json:"file"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Range    *Range   `json:"range,omitempty"`
	Rule     string   `json:"rule,omitempty"`
}

// Summary is pyright's aggregate counters for one run.
type Summary struct {
	FilesAnalyzed    int     `json:"filesAnalyzed"`
	ErrorCount       int     `json:"errorCount"`
	WarningCount     int     `json:"warningCount"`
	InformationCount int     `json:"informationCount"`
	TimeInSec        float64 `json:"timeInSec"`
}

// Output is the decoded --outputjson document.
type Output struct {
	Version            string       `json:"version,omitempty"`
	Time               string       `json:"time,omitempty"`
	GeneralDiagnostics []Diagnostic `json:"generalDiagnostics"`
	Summary            Summary      `json:"summary"`
}
