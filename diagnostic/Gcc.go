package diagnostic

import (
	"regexp"
	"strconv"

	"github.com/donaldfilimon/ovo/model"
)

// reGccDiagnostic matches the GCC/Clang diagnostic line grammar:
// "<file>:<line>:<col>: <level>: <message>[ [<code>]]" where
// level in {note, warning, error, fatal error}. Grounded on ppb's own
// regex-driven parsing style (internal/hal/linux/GCC.go re_gccMatchVersion).
var reGccDiagnostic = regexp.MustCompile(
	`^([^:]+):(\d+):(\d+): (note|warning|error|fatal error): (.+?)(?: \[(-[\w=-]+)\])?$`,
)

func gccLevel(s string) model.DiagnosticLevel {
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

// ParseGccLine parses one GCC/Clang-style diagnostic line, returning ok=false
// if the line doesn't match the grammar (most compiler output is not a
// diagnostic line: command echoes, banners, continuation text).
func ParseGccLine(line string) (model.Diagnostic, bool) {
	line = StripAnsi(line)
	m := reGccDiagnostic.FindStringSubmatch(line)
	if m == nil {
		return model.Diagnostic{}, false
	}
	lineNo, _ := strconv.Atoi(m[2])
	col, _ := strconv.Atoi(m[3])
	return model.Diagnostic{
		Level:   gccLevel(m[4]),
		File:    m[1],
		Line:    lineNo,
		Column:  col,
		Message: m[5],
		Code:    m[6],
	}, true
}

// ParseGcc scans every line of text for GCC/Clang-style diagnostics.
func ParseGcc(text string) []model.Diagnostic {
	return scanLines(text, ParseGccLine)
}
