//go:build windows

package msvc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/donaldfilimon/ovo/internal/base"
)

// vswhereEntry mirrors the subset of ppb's VsWhereEntry
// (internal/hal/windows/MSVC.go) ovo needs to locate cl.exe/lib.exe/link.exe.
type vswhereEntry struct {
	InstallationPath string `json:"installationPath"`
	Catalog          struct {
		ProductLineVersion string `json:"productLineVersion"`
	} `json:"catalog"`
}

// Detect shells out to vswhere.exe ("msvc: vswhere.exe
// + cl.exe") to find the latest Visual Studio install with the C++ desktop
// workload, then locates cl.exe/lib.exe/link.exe under its VC\Tools\MSVC
// directory, following ppb's MsvcProductInstall.Build.
func Detect(ctx context.Context) (*Compiler, error) {
	vswherePath := filepath.Join(programFilesX86(), "Microsoft Visual Studio", "Installer", "vswhere.exe")
	if _, err := exec.LookPath(vswherePath); err != nil {
		vswherePath = "vswhere.exe" // fall back to PATH
	}

	cmd := exec.CommandContext(ctx, vswherePath,
		"-latest", "-products", "*",
		"-requires", "Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
		"-format", "json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("msvc: vswhere failed: %w", err)
	}

	var entries []vswhereEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		return nil, fmt.Errorf("msvc: can't decode vswhere output: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("msvc: vswhere found no Visual Studio install with the VC++ workload")
	}
	install := entries[0]

	versionFile := filepath.Join(install.InstallationPath, "VC", "Auxiliary", "Build", "Microsoft.VCToolsVersion.default.txt")
	vcToolsVersion, err := readTrimmed(versionFile)
	if err != nil {
		return nil, fmt.Errorf("msvc: can't read VC tools version: %w", err)
	}

	toolsDir := filepath.Join(install.InstallationPath, "VC", "Tools", "MSVC", vcToolsVersion, "bin", "HostX64", "x64")
	clPath := filepath.Join(toolsDir, "cl.exe")
	libPath := filepath.Join(toolsDir, "lib.exe")
	linkPath := filepath.Join(toolsDir, "link.exe")

	base.LogVerbose(LogMsvc, "detected msvc %s at %s", install.Catalog.ProductLineVersion, clPath)
	return &Compiler{
		ClPath:   clPath,
		LibPath:  libPath,
		LinkPath: linkPath,
		Version:  install.Catalog.ProductLineVersion,
	}, nil
}

func programFilesX86() string {
	if v := os.Getenv("ProgramFiles(x86)"); v != "" {
		return v
	}
	return `C:\Program Files (x86)`
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
