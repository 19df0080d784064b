package checks

import (
	"fmt"
	"strings"
)

// Severity levels, ordered from informational to blocking.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is one finding against the scene.
type Issue struct {
	// Type names the rule that produced the finding.
	Type string
	// Node is the offending node's name, empty for scene-level findings.
	Node string
	// NodeType is the offending node's class.
	NodeType string
	// Current and Expected describe the mismatch in the rule's own terms.
	Current  string
	Expected string
	Severity string
	// Details holds the full diagnosis when the rule produced one.
	Details []string
}

// Report renders a grouped plain-text summary of the findings, errors first.
func Report(issues []Issue) string {
	if len(issues) == 0 {
		return "No issues found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d issue(s) found\n", len(issues))

	for _, sev := range []string{SeverityError, SeverityWarning, SeverityInfo} {
		for _, issue := range issues {
			if issue.Severity != sev {
				continue
			}
			b.WriteString("\n[" + strings.ToUpper(sev) + "] " + issue.Type)
			if issue.Node != "" {
				b.WriteString(" (" + issue.Node + ")")
			}
			b.WriteString("\n")
			if issue.Current != "" {
				fmt.Fprintf(&b, "  current:  %s\n", issue.Current)
			}
			if issue.Expected != "" {
				fmt.Fprintf(&b, "  expected: %s\n", issue.Expected)
			}
			for _, line := range issue.Details {
				fmt.Fprintf(&b, "  - %s\n", line)
			}
		}
	}

	return b.String()
}

func severity(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
