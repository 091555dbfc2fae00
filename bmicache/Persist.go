package bmicache

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danjacques/gofslock/fslock"
	"github.com/goccy/go-json"

	"github.com/donaldfilimon/ovo/internal/base"
)

// FormatVersion is stamped into the persisted JSON index and bumped whenever
// a field's meaning changes, resolving open question
// about cache-format stability ("should be versioned").
const FormatVersion = 1

type indexFile struct {
	FormatVersion int      `json:"format_version"`
	Entries       []*Entry `json:"entries"`
}

// lockPath is the sentinel file gofslock locks alongside the index, so two
// ovo processes sharing one on-disk module cache directory (a CI cache
// shared between build agents) don't corrupt each other's index writes.
func lockPath(indexPath string) string {
	return indexPath + ".lock"
}

// Save persists the cache as JSON, taking a cross-process exclusive lock
// first. ppb's own cache writer (action/ActionCache.go
// ActionCacheEntry.WriteEntry) has no analogous cross-process concern since
// each ppb worker owns a private shard; ovo's module cache is commonly
// shared across CI build agents on
// the same machine, so the lock is load-bearing here rather than decorative.
func (c *Cache) Save(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, err := fslock.Lock(lockPath(path))
	if err != nil {
		return fmt.Errorf("bmicache: failed to acquire index lock: %w", err)
	}
	defer lock.Unlock()

	doc := indexFile{FormatVersion: FormatVersion}
	for _, e := range c.entries {
		doc.Entries = append(doc.Entries, e)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load populates the cache from a previously-saved JSON index. A missing
// file is not an error: it means this is the first build in a fresh cache
// directory. A corrupted index is likewise treated as an empty cache rather
// than a hard error — a build shouldn't fail outright just because a
// previous run's index got truncated or clobbered; it only pays the cost of
// rebuilding BMIs it could otherwise have reused.
func (c *Cache) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	var doc indexFile
	if err := json.Unmarshal(data, &doc); err != nil {
		base.LogWarning(LogBmiCache, "bmicache index at %q is corrupted, starting with an empty cache: %s", path, err)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range doc.Entries {
		c.entries[e.Name] = e
	}
	return nil
}

// ExportTSV writes a line-oriented tab-separated form as an interoperable
// export alongside the primary JSON index:
// "name\tbmi_path\tsource_path\tsource_mtime\tbmi_mtime\tcompiler_version\n".
func (c *Cache) ExportTSV(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	for _, e := range c.entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.BmiPath, e.SourcePath,
			formatUnixNano(e.SourceMtimeUnix), formatUnixNano(e.BmiMtimeUnix),
			e.CompilerVersion)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func formatUnixNano(unixNano int64) string {
	return strconv.FormatInt(time.Unix(0, unixNano).Unix(), 10)
}
