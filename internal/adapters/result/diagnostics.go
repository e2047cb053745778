package result

import (
	"regexp"
	"strconv"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
)

// diagnosticPattern matches GCC and Clang style messages:
// file:line[:column]: severity: message.
var diagnosticPattern = regexp.MustCompile(`^(.+?):(\d+):(?:(\d+):)?\s*(fatal error|error|warning|note):\s*(.*)$`)

// ParseDiagnostic extracts a diagnostic from a single line of compiler output.
func ParseDiagnostic(line string) (domain.Diagnostic, bool) {
	m := diagnosticPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Diagnostic{}, false
	}

	lineNo, _ := strconv.Atoi(m[2])
	column := 0
	if m[3] != "" {
		column, _ = strconv.Atoi(m[3])
	}

	var severity domain.Severity
	switch m[4] {
	case "fatal error":
		severity = domain.SeverityFatal
	case "error":
		severity = domain.SeverityError
	case "warning":
		severity = domain.SeverityWarning
	default:
		severity = domain.SeverityNote
	}

	return domain.Diagnostic{
		Location: domain.SourceLocation{File: m[1], Line: lineNo, Column: column},
		Severity: severity,
		Message:  m[5],
	}, true
}
