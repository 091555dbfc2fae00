package ovo

import (
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/donaldfilimon/ovo/internal/base"
)

var LogProfiling = base.NewLogCategory("Profiling")

// profileModes mirrors ppb's own profiling-mode switch
// (utils/Profiling_Enabled.go's ProfilingMode.Mode()): CPU, memory (general,
// allocation and heap variants), block, mutex, goroutine and trace
// profiling. Unlike
// ppb, this isn't gated behind a build tag — it's a plain runtime
// check against OVO_PROFILE, since a library facade has no CLI flag layer
// of its own to parse.
var profileModes = map[string]func(*profile.Profile){
	"cpu":       profile.CPUProfile,
	"mem":       profile.MemProfile,
	"memalloc":  profile.MemProfileAllocs,
	"memheap":   profile.MemProfileHeap,
	"block":     profile.BlockProfile,
	"mutex":     profile.MutexProfile,
	"goroutine": profile.GoroutineProfile,
	"trace":     profile.TraceProfile,
}

// StartProfiling starts a pkg/profile session if OVO_PROFILE names a known
// mode ("cpu", "mem", "memalloc", "memheap", "block", "mutex", "goroutine",
// "trace"), writing profiles under the directory named by OVO_PROFILE_DIR
// (default "."). Call the returned func to stop it; StartProfiling returns a
// no-op when OVO_PROFILE is unset or unrecognized so callers can always
// `defer ovo.StartProfiling()()` unconditionally.
func StartProfiling() func() {
	mode := strings.ToLower(os.Getenv("OVO_PROFILE"))
	if mode == "" {
		return func() {}
	}
	fn, ok := profileModes[mode]
	if !ok {
		base.LogWarning(LogProfiling, "unknown OVO_PROFILE mode %q, ignoring", mode)
		return func() {}
	}

	dir := os.Getenv("OVO_PROFILE_DIR")
	if dir == "" {
		dir = "."
	}
	base.LogInfo(LogProfiling, "profiling enabled: %s -> %s", mode, dir)
	p := profile.Start(fn, profile.NoShutdownHook, profile.ProfilePath(dir))
	return p.Stop
}
