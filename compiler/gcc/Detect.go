package gcc

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/donaldfilimon/ovo/internal/base"
)

// reGccVersion ports ppb's re_gccMatchVersion
// (internal/hal/linux/GCC.go) verbatim: GCC's --version banner's first line
// is "gcc (<vendor string>) <major>.<minor>.<patch>".
var reGccVersion = regexp.MustCompile(`(?m)^gcc\s+(?:\(.*\)\s+)([\d.]+)\s*$`)

// Detect probes PATH for gcc/g++/gcc-ar ("gcc: PATH for
// gcc / g++") and parses the version banner, following ppb's
// findToolchain/Build pair.
func Detect(ctx context.Context) (*Compiler, error) {
	gccPath, err := exec.LookPath("gcc")
	if err != nil {
		return nil, fmt.Errorf("gcc: not found on PATH: %w", err)
	}
	gppPath, err := exec.LookPath("g++")
	if err != nil {
		return nil, fmt.Errorf("gcc: g++ not found on PATH: %w", err)
	}
	arPath, err := exec.LookPath("gcc-ar")
	if err != nil {
		// gcc-ar is a thin wrapper some distros omit; plain ar is a fine
		// substitute since ovo only ever invokes it for `ar rcs`.
		arPath, err = exec.LookPath("ar")
		if err != nil {
			return nil, fmt.Errorf("gcc: no archiver found on PATH: %w", err)
		}
	}

	version, err := probeVersion(ctx, gccPath)
	if err != nil {
		return nil, err
	}

	base.LogVerbose(LogGcc, "detected gcc %s at %s", version, gppPath)
	return &Compiler{GccPath: gccPath, GppPath: gppPath, ArPath: arPath, Version: version}, nil
}

func probeVersion(ctx context.Context, gccPath string) (string, error) {
	cmd := exec.CommandContext(ctx, gccPath, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gcc: failed to run --version: %w", err)
	}
	m := reGccVersion.FindStringSubmatch(string(out))
	if len(m) != 2 {
		return "", fmt.Errorf("gcc: can't match version string: %q", firstLine(string(out)))
	}
	return m[1], nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
