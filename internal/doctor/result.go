// Package doctor runs health checks over a store chain and reports what
// it finds: undecodable files, duplicate or unusable codes, shadowed
// codes, missing executables and risky file permissions.
package doctor

import (
	"encoding/json"
)

// Severity indicates the importance level of a check result.
type Severity int

const (
	// SeverityPass indicates the check passed without issues.
	SeverityPass Severity = iota

	// SeverityInfo indicates informational output, not a problem.
	SeverityInfo

	// SeverityWarning indicates a potential issue that doesn't prevent operation.
	SeverityWarning

	// SeverityError indicates entries that cannot be used as stored.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON writes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult represents the outcome of a single diagnostic check.
type CheckResult struct {
	// Name is the identifier for this check.
	Name string `json:"name"`

	// Category groups related checks ("stores", "entries", "environment").
	Category string `json:"category"`

	// Status is the worst severity the check found.
	Status Severity `json:"status"`

	// Message describes the check outcome.
	Message string `json:"message"`

	// Findings lists one line per offending file or entry.
	Findings []string `json:"findings,omitempty"`

	// FixHint provides guidance on how to resolve the issue.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary aggregates counts of check results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func pass(name, category, msg string) *CheckResult {
	return &CheckResult{Name: name, Category: category, Status: SeverityPass, Message: msg}
}
