package zigcc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/donaldfilimon/ovo/internal/base"
)

// Detect follows "zig-cc: ZIG_PATH env var, then PATH"
// probing order.
func Detect(ctx context.Context) (*Compiler, error) {
	var candidates []string
	if zigPath := os.Getenv("ZIG_PATH"); zigPath != "" {
		candidates = append(candidates, filepath.Join(zigPath, "zig"))
	}
	if found, err := exec.LookPath("zig"); err == nil {
		candidates = append(candidates, found)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("zigcc: zig not found (checked ZIG_PATH and PATH)")
	}

	var lastErr error
	for _, zigPath := range candidates {
		version, err := probeVersion(ctx, zigPath)
		if err != nil {
			lastErr = err
			continue
		}
		base.LogVerbose(LogZigCC, "detected zig %s at %s", version, zigPath)
		return &Compiler{ZigPath: zigPath, Version: version}, nil
	}
	return nil, fmt.Errorf("zigcc: found zig binary but couldn't run it: %w", lastErr)
}

func probeVersion(ctx context.Context, zigPath string) (string, error) {
	cmd := exec.CommandContext(ctx, zigPath, "version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("zigcc: failed to run 'zig version': %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
