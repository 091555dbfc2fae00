// Package bmicache implements a content-addressed BMI cache: a cache
// directory holding one compiled module interface per module name, and a
// persisted index of source/BMI mtimes plus a sha256-simd content
// fingerprint (internal/base.Fingerprint) recorded at registration; whether a
// cached BMI is still valid is decided by the source mtime, not the
// fingerprint. Grounded on ppb's action/ActionCache.go, but with a flat
// layout (one file per sanitized module name directly under the cache
// directory) instead of its fingerprint-sharded tree; same
// choice of LZ4 for at-rest compression (action/Action.go's
// ActionFlags.CacheCompression defaults to COMPRESSION_FORMAT_LZ4).
package bmicache

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/donaldfilimon/ovo/internal/base"
)

var LogBmiCache = base.NewLogCategory("BmiCache")

// Entry is one cache record for a module name, capturing everything the
// validity rule needs to check without re-scanning the source: the source's
// mtime at registration time (its content fingerprint is recorded alongside
// but not consulted by Lookup), the compiler that
// produced the BMI, and the module's own dependency names (for the
// transitive-closure check).
type Entry struct {
	Name               string           `json:"name"`
	BmiPath            string           `json:"bmi_path"`
	SourcePath         string           `json:"source_path"`
	SourceMtimeUnix    int64            `json:"source_mtime"`
	BmiMtimeUnix       int64            `json:"bmi_mtime"`
	ContentFingerprint base.Fingerprint `json:"content_fingerprint"`
	CompilerKind       string           `json:"compiler_kind"`
	CompilerVersion    string           `json:"compiler_version"`
	Dependencies       []string         `json:"dependencies"`
	invalid            bool
}

// Cache is a content-addressed map from module name to BMI entry, scoped to
// one build session. New does not read the on-disk index and there is no
// Close: the index is read only when the caller calls Load and written only
// when the caller calls Save. The mutex is held by each method while it
// touches the in-memory map; a sequence of calls (register, then lookup) is
// not atomic, so callers racing each other synchronize externally.
type Cache struct {
	mu       sync.Mutex
	dir      string
	entries  map[string]*Entry
	compress bool
}

// Option configures optional Cache behavior at construction time.
type Option func(*Cache)

// WithCompression archives an LZ4-compressed copy of every registered BMI
// alongside the primary, uncompressed one (matching ppb's
// action/Action.go ActionFlags.CacheCompression, opt-in there too). The
// primary BMI is always kept as-is since a backend reads it directly as a
// prebuilt module; the compressed copy only trims the cache directory's
// footprint when the directory is persisted between builds (e.g. uploaded
// as a CI cache artifact).
func WithCompression() Option {
	return func(c *Cache) { c.compress = true }
}

// New creates the cache directory if missing and returns an empty cache;
// call Load to populate it from a persisted index.
func New(dir string, opts ...Option) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	c := &Cache{dir: dir, entries: make(map[string]*Entry)}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Cache) Dir() string { return c.dir }

// SanitizeName derives a BMI filename stem from a module name by replacing
// each of ':' '.' '/' with '-'.
func SanitizeName(name string) string {
	r := strings.NewReplacer(":", "-", ".", "-", "/", "-")
	return r.Replace(name)
}

// BmiPath returns the on-disk path a BMI for name would live at, given the
// backend-appropriate extension (".pcm" for Clang/zig-cc, ".ifc" for MSVC).
func (c *Cache) BmiPath(name, ext string) string {
	return filepath.Join(c.dir, SanitizeName(name)+ext)
}

// Register captures the current mtimes and content fingerprint of source
// and bmi and stores the entry.
func (c *Cache) Register(name, bmiPath, sourcePath string, deps []string, compilerKind, compilerVersion string) error {
	sourceMtime, err := base.ModTime(sourcePath)
	if err != nil {
		return err
	}
	bmiMtime, err := base.ModTime(bmiPath)
	if err != nil {
		return err
	}
	fingerprint, err := fingerprintFile(sourcePath)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = &Entry{
		Name:               name,
		BmiPath:            bmiPath,
		SourcePath:         sourcePath,
		SourceMtimeUnix:    sourceMtime.UnixNano(),
		BmiMtimeUnix:       bmiMtime.UnixNano(),
		ContentFingerprint: fingerprint,
		CompilerKind:       compilerKind,
		CompilerVersion:    compilerVersion,
		Dependencies:       base.CopySlice(deps),
	}
	base.LogTrace(LogBmiCache, "registered %q -> %s (fingerprint %s)", name, bmiPath, fingerprint.ShortString())

	if c.compress {
		if err := StoreCompressed(bmiPath, compressedPath(bmiPath)); err != nil {
			base.LogWarning(LogBmiCache, "failed to archive compressed BMI for %q: %s", name, err)
		}
	}
	return nil
}

func fingerprintFile(path string) (base.Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return base.Fingerprint{}, err
	}
	defer f.Close()
	return base.ReaderFingerprint(f)
}

func compressedPath(bmiPath string) string { return bmiPath + ".lz4" }

// Restore recovers a missing primary BMI from its compressed archive,
// written by Register when the cache was constructed with WithCompression.
// Lookup never calls this itself: callers invoke it only after a Lookup hit
// whose BmiPath turned out to be missing from disk (e.g. a cache directory
// restored from a CI artifact that only kept the compressed copies).
func (c *Cache) Restore(name string) (string, error) {
	c.mu.Lock()
	entry, ok := c.entries[name]
	c.mu.Unlock()
	if !ok {
		return "", os.ErrNotExist
	}
	if err := LoadCompressed(compressedPath(entry.BmiPath), entry.BmiPath); err != nil {
		return "", err
	}
	return entry.BmiPath, nil
}

// Invalidate flips a single entry invalid; callers cascade to dependents
// themselves.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		e.invalid = true
	}
}

// Lookup returns the BMI path for name only if its entry (and the
// transitive closure of its dependencies) is currently valid; checking is
// done lazily on each call rather than eagerly mark-and-sweep at build
// start.
func (c *Cache) Lookup(name, compilerKind, compilerVersion string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(name, compilerKind, compilerVersion, make(map[string]bool))
}

func (c *Cache) lookupLocked(name, compilerKind, compilerVersion string, visiting map[string]bool) (string, bool) {
	if visiting[name] {
		// a cycle here means the module graph itself is cyclic; bmicache
		// treats it as invalid rather than looping forever.
		return "", false
	}
	visiting[name] = true
	defer delete(visiting, name)

	entry, ok := c.entries[name]
	if !ok || entry.invalid {
		return "", false
	}
	if entry.CompilerKind != compilerKind || entry.CompilerVersion != compilerVersion {
		return "", false
	}
	if !base.Exists(entry.SourcePath) || !base.Exists(entry.BmiPath) {
		return "", false
	}
	mtime, err := base.ModTime(entry.SourcePath)
	if err != nil {
		return "", false
	}
	if mtime.UnixNano() != entry.SourceMtimeUnix {
		return "", false
	}
	for _, dep := range entry.Dependencies {
		if _, ok := c.lookupLocked(dep, compilerKind, compilerVersion, visiting); !ok {
			if _, known := c.entries[dep]; known {
				return "", false
			}
			// dependency has no entry of its own: satisfied by the
			// toolchain module cache (std/header units never get registered).
		}
	}
	return entry.BmiPath, true
}
