package diagnostic

import (
	"bufio"
	"strings"

	"github.com/donaldfilimon/ovo/model"
)

func scanLines(text string, parse func(string) (model.Diagnostic, bool)) []model.Diagnostic {
	var out []model.Diagnostic
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if diag, ok := parse(scanner.Text()); ok {
			out = append(out, diag)
		}
	}
	return out
}

// Grammar identifies which diagnostic grammar a backend's output follows, so
// the facade doesn't need to guess per backend.
type Grammar int32

const (
	GrammarGcc Grammar = iota
	GrammarMsvc
)

// Parse scans stdout and stderr for diagnostics using the given grammar,
// concatenating both streams (MSVC emits to both; GCC and
// Clang normally emit only to stderr, but scanning stdout too is harmless
// since it will simply fail to match any diagnostic line).
func Parse(grammar Grammar, stdout, stderr string) []model.Diagnostic {
	var parseFn func(string) []model.Diagnostic
	switch grammar {
	case GrammarMsvc:
		parseFn = ParseMsvc
	default:
		parseFn = ParseGcc
	}
	diags := parseFn(stdout)
	diags = append(diags, parseFn(stderr)...)
	return diags
}
