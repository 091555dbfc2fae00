//go:build windows

package process

import "os/exec"

// exitCodeOf on Windows has no POSIX signal concept; ExitError already
// carries the raw exit code (a crashing process typically surfaces a large
// NTSTATUS-derived value rather than a small signal number).
func exitCodeOf(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
