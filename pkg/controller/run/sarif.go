package run

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pyright-pretty/pyright-pretty/pkg/pyright"
	"github.com/pyright-pretty/pyright-pretty/pkg/sarif"
)

// outputSARIF writes the diagnostic feed as a SARIF 2.1.0 log to stdout,
// for consumption by code scanning services instead of human eyes.
func (c *Controller) outputSARIF(out *pyright.Output) error {
	log := sarif.Log{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "pyright",
						InformationURI: "https://microsoft.github.io/pyright/",
						Version:        out.Version,
						Rules:          sarifRules(out.GeneralDiagnostics),
					},
				},
				Results: sarifResults(out.GeneralDiagnostics),
			},
		},
	}
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

// sarifRules lists each distinct rule in the feed once, with pyright's
// rule documentation as the short description when known.
func sarifRules(diags []pyright.Diagnostic) []sarif.Rule {
	seen := map[string]struct{}{}
	rules := []sarif.Rule{}
	for _, d := range diags {
		if d.Rule == "" {
			continue
		}
		if _, ok := seen[d.Rule]; ok {
			continue
		}
		seen[d.Rule] = struct{}{}
		desc := ruleDescription(d.Rule)
		if desc == "" {
			desc = d.Rule
		}
		rules = append(rules, sarif.Rule{
			ID:               d.Rule,
			ShortDescription: sarif.Message{Text: desc},
		})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

func sarifResults(diags []pyright.Diagnostic) []sarif.Result {
	results := make([]sarif.Result, 0, len(diags))
	for _, d := range diags {
		region := sarif.Region{}
		if d.Range != nil {
			// SARIF positions are one-based.
			region = sarif.Region{
				StartLine:   d.Range.Start.Line + 1,
				StartColumn: d.Range.Start.Character + 1,
				EndLine:     d.Range.End.Line + 1,
				EndColumn:   d.Range.End.Character + 1,
			}
		}
		results = append(results, sarif.Result{
			RuleID:  d.Rule,
			Level:   sarifLevel(d.Severity),
			Message: sarif.Message{Text: d.Message},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{URI: d.File},
						Region:           region,
					},
				},
			},
		})
	}
	return results
}

func sarifLevel(sev pyright.Severity) string {
	switch sev {
	case pyright.SeverityError:
		return "error"
	case pyright.SeverityWarning:
		return "warning"
	case pyright.SeverityInformation:
		return "note"
	}
	return "none"
}
