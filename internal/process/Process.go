// Package process spawns external compiler/linker/archiver executables and
// captures their output. Grounded on ppb's internal/io/Process.go
// (RunProcess, ProcessEnvironment), adapted: dropped the IO-detours and
// attach-debugger hooks (FASTBuild-distribution specific, nothing here uses
// them) and the response-file mechanism; kept the environment model and
// exit-code-on-signal handling a backend's diagnostics depend on.
package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/donaldfilimon/ovo/internal/base"
)

var LogProcess = base.NewLogCategory("Process")

// Environment is an ordered list of NAME=value1;value2 definitions, mirroring
// ppb's ProcessEnvironment (internal/io/Process.go) so that repeated
// Append calls for the same variable accumulate values instead of clobbering.
type Environment []EnvironmentVar

type EnvironmentVar struct {
	Name   string
	Values []string
}

func NewEnvironment() Environment { return Environment{} }

func (x Environment) indexOf(name string) (int, bool) {
	for i, v := range x {
		if v.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (x *Environment) Append(name string, values ...string) {
	if i, ok := x.indexOf(name); ok {
		(*x)[i].Values = append((*x)[i].Values, values...)
	} else {
		*x = append(*x, EnvironmentVar{Name: name, Values: values})
	}
}

// Export renders the environment as NAME=value1;value2 strings suitable for
// exec.Cmd.Env.
func (x Environment) Export() []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = v.Name + "=" + strings.Join(v.Values, ";")
	}
	return out
}

// Options controls a single subprocess invocation.
type Options struct {
	WorkingDir string
	Env        Environment
	// InheritEnv, when true, appends Env on top of the current process
	// environment instead of replacing it outright.
	InheritEnv bool
}

// Result is the raw shape every backend's compile/link/scan result is built
// from: separate stdout/stderr buffers (MSVC diagnostics must be scanned
// from both streams independently), the process exit code with the
// signal-termination convention exitCodeOf applies, and wall-clock duration.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool { return r.ExitCode == 0 }

var ErrSpawnFailed = errors.New("process: failed to spawn executable")

// Run spawns executable with arguments, piping stdout and stderr to
// independent buffers read concurrently. Reading both streams on separate
// goroutines (via errgroup) avoids the classic deadlock: a child that fills
// its stderr pipe while nothing is draining it blocks until something reads
// stdout, which never happens if stdout is read only after stderr finishes.
func Run(ctx context.Context, executable string, arguments []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, executable, arguments...)
	cmd.SysProcAttr = newProcessGroupSysProcAttr()

	if opts.WorkingDir != "" {
		cmd.Dir = opts.WorkingDir
	}
	if len(opts.Env) > 0 {
		if opts.InheritEnv {
			cmd.Env = append(os.Environ(), opts.Env.Export()...)
		} else {
			cmd.Env = opts.Env.Export()
		}
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, errors.Join(ErrSpawnFailed, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, errors.Join(ErrSpawnFailed, err)
	}

	started := time.Now()
	base.LogTrace(LogProcess, "run %q %q", executable, arguments)

	if err := cmd.Start(); err != nil {
		return Result{}, errors.Join(ErrSpawnFailed, err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	var group errgroup.Group
	group.Go(func() error {
		_, err := stdoutBuf.ReadFrom(stdoutPipe)
		return err
	})
	group.Go(func() error {
		_, err := stderrBuf.ReadFrom(stderrPipe)
		return err
	})
	drainErr := group.Wait()

	waitErr := cmd.Wait()
	duration := time.Since(started)

	result := Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: duration,
	}

	if waitErr == nil {
		result.ExitCode = 0
		return result, drainErr
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		result.ExitCode = exitCodeOf(exitErr)
		return result, nil
	}

	// spawn-time failure surfaced only at Wait (e.g. exec format error)
	return result, errors.Join(ErrSpawnFailed, waitErr)
}
