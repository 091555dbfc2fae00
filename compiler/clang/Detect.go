package clang

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/donaldfilimon/ovo/internal/base"
)

// clangVersions mirrors ppb's GetLlvmVersions() preference order
// (internal/hal/linux/LLVM.go findToolchain): try the newest well-known
// versioned binary name before falling back to the unsuffixed one.
var clangVersions = []string{"-18", "-17", "-16", "-15", ""}

var reClangVersion = regexp.MustCompile(`(?m)^(?:Apple LLVM|clang) version ([\d.]+)`)

// Detect probes PATH for clang/clang++/llvm-ar across a handful of likely
// versioned names ("clang: PATH for clang / clang++,
// versioned names like clang-18 / clang-17 / ...").
func Detect(ctx context.Context) (*Compiler, error) {
	var lastErr error
	for _, suffix := range clangVersions {
		c, err := detectSuffix(ctx, suffix)
		if err == nil {
			return c, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("clang: not found on PATH: %w", lastErr)
}

func detectSuffix(ctx context.Context, suffix string) (*Compiler, error) {
	clangPath, err := exec.LookPath("clang" + suffix)
	if err != nil {
		return nil, err
	}
	clangPPPath, err := exec.LookPath("clang++" + suffix)
	if err != nil {
		return nil, err
	}
	arPath, err := exec.LookPath("llvm-ar" + suffix)
	if err != nil {
		return nil, err
	}
	// clang-scan-deps is optional: its absence only disables native module
	// dependency scanning (ScanModuleDeps falls back to the lexical scanner).
	scanDepsPath, _ := exec.LookPath("clang-scan-deps" + suffix)

	version, err := probeVersion(ctx, clangPPPath)
	if err != nil {
		return nil, err
	}

	base.LogVerbose(LogClang, "detected clang %s at %s", version, clangPPPath)
	return &Compiler{
		ClangPath:    clangPath,
		ClangPPPath:  clangPPPath,
		ArPath:       arPath,
		ScanDepsPath: scanDepsPath,
		Version:      version,
	}, nil
}

func probeVersion(ctx context.Context, clangPPPath string) (string, error) {
	cmd := exec.CommandContext(ctx, clangPPPath, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clang: failed to run --version: %w", err)
	}
	m := reClangVersion.FindStringSubmatch(string(out))
	if len(m) != 2 {
		return "", fmt.Errorf("clang: can't match version string: %q", firstLine(string(out)))
	}
	return m[1], nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
