package diagnostic

import (
	"regexp"
	"strconv"

	"github.com/donaldfilimon/ovo/model"
)

// reMsvcDiagnostic matches MSVC grammar:
// "<file>(<line>[,<col>]): <level> <code>: <message>" where
// level in {note, warning, error, fatal error}.
var reMsvcDiagnostic = regexp.MustCompile(
	`^([^(]+)\((\d+)(?:,(\d+))?\): (note|warning|error|fatal error) ([A-Za-z0-9]+): (.+)$`,
)

func msvcLevel(s string) model.DiagnosticLevel {
	switch s {
	case "note":
		return model.DiagNote
	case "warning":
		return model.DiagWarning
	case "error":
		return model.DiagError
	case "fatal error":
		return model.DiagFatal
	default:
		return model.DiagError
	}
}

// ParseMsvcLine parses one cl.exe-style diagnostic line.
func ParseMsvcLine(line string) (model.Diagnostic, bool) {
	m := reMsvcDiagnostic.FindStringSubmatch(line)
	if m == nil {
		return model.Diagnostic{}, false
	}
	lineNo, _ := strconv.Atoi(m[2])
	col := 0
	if m[3] != "" {
		col, _ = strconv.Atoi(m[3])
	}
	return model.Diagnostic{
		Level:   msvcLevel(m[4]),
		File:    m[1],
		Line:    lineNo,
		Column:  col,
		Message: m[6],
		Code:    m[5],
	}, true
}

// ParseMsvc scans every line of text for MSVC-style diagnostics. MSVC emits
// diagnostics to both stdout and stderr , so callers
// parse both streams rather than stderr alone.
func ParseMsvc(text string) []model.Diagnostic {
	return scanLines(text, ParseMsvcLine)
}
