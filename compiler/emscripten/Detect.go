package emscripten

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/donaldfilimon/ovo/internal/base"
)

var reEmccVersion = regexp.MustCompile(`emcc \(Emscripten.*?\)\s+([\d.]+)`)

// Detect follows "emscripten: EMSDK env var, then
// PATH" probing order: if EMSDK is set, its upstream/emscripten subdirectory
// is tried first, then bare PATH lookup.
func Detect(ctx context.Context) (*Compiler, error) {
	var dirs []string
	if emsdk := os.Getenv("EMSDK"); emsdk != "" {
		dirs = append(dirs, filepath.Join(emsdk, "upstream", "emscripten"))
	}
	dirs = append(dirs, "") // empty means "resolve via PATH"

	var lastErr error
	for _, dir := range dirs {
		c, err := detectIn(ctx, dir)
		if err == nil {
			return c, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("emscripten: not found (checked EMSDK and PATH): %w", lastErr)
}

func detectIn(ctx context.Context, dir string) (*Compiler, error) {
	emcc, err := resolve(dir, "emcc")
	if err != nil {
		return nil, err
	}
	empp, err := resolve(dir, "em++")
	if err != nil {
		return nil, err
	}
	emar, err := resolve(dir, "emar")
	if err != nil {
		return nil, err
	}

	version, err := probeVersion(ctx, emcc)
	if err != nil {
		return nil, err
	}

	base.LogVerbose(LogEmscripten, "detected emscripten %s at %s", version, empp)
	return &Compiler{EmccPath: emcc, EmppPath: empp, EmarPath: emar, Version: version}, nil
}

func resolve(dir, name string) (string, error) {
	if dir == "" {
		return exec.LookPath(name)
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func probeVersion(ctx context.Context, emccPath string) (string, error) {
	cmd := exec.CommandContext(ctx, emccPath, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("emscripten: failed to run --version: %w", err)
	}
	m := reEmccVersion.FindSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("emscripten: can't match version string")
	}
	return string(m[1]), nil
}
