package diagnostic

import "regexp"

// reAnsiEscape strips SGR color escapes GCC/Clang emit with
// -fdiagnostics-color before line parsing ("ANSI color
// escapes may be stripped before parsing").
var reAnsiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func StripAnsi(line string) string {
	return reAnsiEscape.ReplaceAllString(line, "")
}
