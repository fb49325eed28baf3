package run

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
)

func newTestController() *Controller {
	return New(nil, nil, nil, nil, &ParamRun{})
}

func TestController_formatError(t *testing.T) { //nolint:funlen
	t.Parallel()
	ctrl := newTestController()
	data := []struct {
		name         string
		diag         pyright.Diagnostic
		context      []string
		contextLines int
		exp          string
	}{
		{
			name: "single line range",
			diag: pyright.Diagnostic{
				File:     "/app/main.py",
				Severity: pyright.SeverityError,
				Message:  `Type "str" is not assignable to declared type "int"`,
				Rule:     "reportAssignmentType",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 9, Character: 0},
					End:   pyright.Location{Line: 9, Character: 1},
				},
			},
			context:      []string{"x: int", "", `a = "hi"`, "", "def main() -> int:"},
			contextLines: 2,
			exp: strings.Join([]string{
				"error: /app/main.py:10:1 » reportAssignmentType",
				"     8 │ x: int",
				"     9 │ ",
				`>   10 │ a = "hi"`,
				"       │ ^ reportAssignmentType » assignment type incompatibility.",
				"    11 │ ",
				"    12 │ def main() -> int:",
				"       │",
				` help ~ Type "str" is not assignable to declared type "int"`,
			}, "\n"),
		},
		{
			name: "caret padding and width follow the range columns",
			diag: pyright.Diagnostic{
				File:     "b.py",
				Severity: pyright.SeverityWarning,
				Message:  "unused variable",
				Rule:     "myCustomRule",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 0, Character: 4},
					End:   pyright.Location{Line: 0, Character: 9},
				},
			},
			context:      []string{"foo yoyo = 1", "bar"},
			contextLines: 2,
			exp: strings.Join([]string{
				"warning: b.py:1:5 » myCustomRule",
				">    1 │ foo yoyo = 1",
				"       │     ^^^^^ myCustomRule",
				"     2 │ bar",
				"       │",
				" help ~ unused variable",
			}, "\n"),
		},
		{
			name: "zero width range still gets one caret",
			diag: pyright.Diagnostic{
				File:     "c.py",
				Severity: pyright.SeverityInformation,
				Message:  "note here",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 0, Character: 2},
					End:   pyright.Location{Line: 0, Character: 2},
				},
			},
			context:      []string{"abcdef"},
			contextLines: 0,
			exp: strings.Join([]string{
				"information: c.py:1:3",
				">    1 │ abcdef",
				"       │   ^",
				"       │",
				" help ~ note here",
			}, "\n"),
		},
		{
			name: "multi line range puts a single caret under the end line",
			diag: pyright.Diagnostic{
				File:     "/app/multi.py",
				Severity: pyright.SeverityError,
				Message:  "bad expression",
				Rule:     "reportGeneralTypeIssues",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 4, Character: 2},
					End:   pyright.Location{Line: 6, Character: 5},
				},
			},
			context:      []string{"line3", "line4", "line5", "line6", "line7", "line8", "line9"},
			contextLines: 2,
			exp: strings.Join([]string{
				"error: /app/multi.py:5:3 » reportGeneralTypeIssues",
				"     3 │ line3",
				"     4 │ line4",
				">    5 │ line5",
				">    6 │ line6",
				">    7 │ line7",
				"       │     ^",
				"     8 │ line8",
				"     9 │ line9",
				"       │",
				" help ~ bad expression",
			}, "\n"),
		},
		{
			name: "multi line indicator column clamps to zero",
			diag: pyright.Diagnostic{
				File:     "d.py",
				Severity: pyright.SeverityError,
				Message:  "m",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 0, Character: 0},
					End:   pyright.Location{Line: 1, Character: 0},
				},
			},
			context:      []string{"aaa", "bbb"},
			contextLines: 0,
			exp: strings.Join([]string{
				"error: d.py:1:1",
				">    1 │ aaa",
				">    2 │ bbb",
				"       │ ^",
				"       │",
				" help ~ m",
			}, "\n"),
		},
		{
			name: "negative columns are clamped",
			diag: pyright.Diagnostic{
				File:     "a.py",
				Severity: pyright.SeverityError,
				Message:  "boom",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 0, Character: -3},
					End:   pyright.Location{Line: 0, Character: -1},
				},
			},
			context:      []string{"x = 1"},
			contextLines: 2,
			exp: strings.Join([]string{
				"error: a.py:1:1",
				">    1 │ x = 1",
				"       │ ^^",
				"       │",
				" help ~ boom",
			}, "\n"),
		},
		{
			name: "range without context renders the header only",
			diag: pyright.Diagnostic{
				File:     "/gone/missing.py",
				Severity: pyright.SeverityError,
				Message:  "whatever",
				Rule:     "reportMissingImports",
				Range: &pyright.Range{
					Start: pyright.Location{Line: 3, Character: 0},
					End:   pyright.Location{Line: 3, Character: 4},
				},
			},
			contextLines: 2,
			exp:          "error: /gone/missing.py:4:1 » reportMissingImports",
		},
		{
			name: "import cycle lists each member",
			diag: pyright.Diagnostic{
				File:     "/app",
				Severity: pyright.SeverityError,
				Message:  "Cycle detected in import chain\n/app/a.py\n/app/b.py",
				Rule:     "reportImportCycles",
			},
			contextLines: 2,
			exp: strings.Join([]string{
				"error: /app » reportImportCycles",
				"  > /app/a.py",
				"  > /app/b.py",
				" help ~ Cycle detected in import chain",
			}, "\n"),
		},
		{
			name: "file level diagnostic with an unhandled rule",
			diag: pyright.Diagnostic{
				File:     "/app/x.py",
				Severity: pyright.SeverityWarning,
				Message:  "something odd",
				Rule:     "reportBananas",
			},
			contextLines: 2,
			exp: strings.Join([]string{
				"warning: /app/x.py » reportBananas",
				"  ^ something odd",
				" help ~ reportBananas",
				`note: rule "reportBananas" needs custom handling`,
			}, "\n"),
		},
		{
			name: "file level diagnostic without a rule",
			diag: pyright.Diagnostic{
				File:     "/app/y.py",
				Severity: pyright.SeverityError,
				Message:  "broken file",
			},
			contextLines: 2,
			exp: strings.Join([]string{
				"error: /app/y.py",
				"  ^ broken file",
				" help ~ unknown rule",
				`note: rule "unknown rule" needs custom handling`,
			}, "\n"),
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			f := &formattedDiagnostic{Diagnostic: d.diag, context: d.context}
			act := ctrl.formatError(f, d.contextLines)
			if diff := cmp.Diff(d.exp, act); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_highlight(t *testing.T) {
	t.Parallel()
	ctrl := newTestController()
	mark := func(a ...interface{}) string { return "[" + fmt.Sprint(a...) + "]" }
	data := []struct {
		name string
		src  string
		n    int
		r    *pyright.Range
		exp  string
	}{
		{
			name: "span within one line",
			src:  "foo bar baz",
			r: &pyright.Range{
				Start: pyright.Location{Line: 0, Character: 4},
				End:   pyright.Location{Line: 0, Character: 7},
			},
			exp: "foo [bar] baz",
		},
		{
			name: "columns count characters, not bytes",
			src:  "héllo = 1",
			r: &pyright.Range{
				Start: pyright.Location{Line: 0, Character: 0},
				End:   pyright.Location{Line: 0, Character: 5},
			},
			exp: "[héllo] = 1",
		},
		{
			name: "columns beyond the line clamp to its end",
			src:  "ab",
			r: &pyright.Range{
				Start: pyright.Location{Line: 0, Character: 1},
				End:   pyright.Location{Line: 0, Character: 9},
			},
			exp: "a[b]",
		},
		{
			name: "negative columns clamp to the line start",
			src:  "ab",
			r: &pyright.Range{
				Start: pyright.Location{Line: 0, Character: -3},
				End:   pyright.Location{Line: 0, Character: -1},
			},
			exp: "ab",
		},
		{
			name: "middle line of a multi line span is fully covered",
			src:  "mid",
			n:    1,
			r: &pyright.Range{
				Start: pyright.Location{Line: 0, Character: 2},
				End:   pyright.Location{Line: 2, Character: 1},
			},
			exp: "[mid]",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			act := ctrl.highlight(d.src, d.n, d.r, mark)
			if diff := cmp.Diff(d.exp, act); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_formatError_idempotent(t *testing.T) {
	t.Parallel()
	ctrl := newTestController()
	f := &formattedDiagnostic{
		Diagnostic: pyright.Diagnostic{
			File:     "a.py",
			Severity: pyright.SeverityError,
			Message:  "m",
			Rule:     "reportCallIssue",
			Range: &pyright.Range{
				Start: pyright.Location{Line: 1, Character: 2},
				End:   pyright.Location{Line: 1, Character: 6},
			},
		},
		context: []string{"zero", "one two three", "two"},
	}
	first := ctrl.formatError(f, 1)
	second := ctrl.formatError(f, 1)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}
