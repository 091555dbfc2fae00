//go:build linux || darwin

package process

import "syscall"

// newProcessGroupSysProcAttr ports ppb's
// internal/io/Porcess_linux.go helper of the same purpose: putting the
// child in its own process group so a cancelled context can be escalated to
// killing any grandchildren the compiler driver spawns (e.g. cc1plus under
// gcc) without taking down the parent.
func newProcessGroupSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
