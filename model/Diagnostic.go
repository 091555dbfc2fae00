package model

import "github.com/donaldfilimon/ovo/internal/base"

type DiagnosticLevel int32

const (
	DiagNote DiagnosticLevel = iota
	DiagWarning
	DiagError
	DiagFatal
)

func (x DiagnosticLevel) String() string {
	switch x {
	case DiagNote:
		return "note"
	case DiagWarning:
		return "warning"
	case DiagError:
		return "error"
	case DiagFatal:
		return "fatal"
	default:
		base.UnexpectedValuePanic(x)
		return ""
	}
}

// Diagnostic is the normalized shape every backend's diagnostic parser
// (package diagnostic) produces from raw stdout/stderr text:
// {level, file?, line?, column?, message, code?}.
type Diagnostic struct {
	Level   DiagnosticLevel
	File    string
	Line    int
	Column  int
	Message string
	Code    string
}

func (d Diagnostic) HasLocation() bool { return d.Line > 0 }
