//go:build linux || darwin

package process

import (
	"os/exec"
	"syscall"
)

// exitCodeOf maps a terminated child's exit status onto the signal
// convention the facade expects: termination by signal is reported as
// -<signal_number>, any other abnormal termination as -1. Grounded on ppb's
// internal/io/Process_linux.go, which reads the same syscall.WaitStatus to
// decide whether a process was signalled.
func exitCodeOf(exitErr *exec.ExitError) int {
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return -1
	}
	if status.Signaled() {
		return -int(status.Signal())
	}
	if status.Exited() {
		return status.ExitStatus()
	}
	return -1
}
