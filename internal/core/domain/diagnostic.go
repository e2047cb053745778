package domain

import "fmt"

// Severity classifies a compiler diagnostic.
type Severity string

const (
	SeverityNote    Severity = "note"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal"
)

// SourceLocation points into a source file. Line and Column are 1-based; 0 means unknown.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// String formats the location as file:line:column.
func (l SourceLocation) String() string {
	switch {
	case l.Line == 0:
		return l.File
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
}

// Diagnostic is a compiler message extracted from build output.
type Diagnostic struct {
	Location SourceLocation
	Severity Severity
	Message  string
}
