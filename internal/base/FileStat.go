package base

import (
	"time"

	"github.com/djherbis/times"
)

// ModTime reports a file's modification time using djherbis/times rather
// than bare os.Stat: the BMI cache's validity rule (entry valid iff
// stat(source).mtime == entry.source_mtime) needs a mtime that behaves the
// same across Linux, macOS and Windows, and times.Stat normalizes that the
// way ppb's own toolchain-detection code wants from a portable stat
// call that stdlib doesn't offer uniformly (birth time, change time).
func ModTime(path string) (time.Time, error) {
	t, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return t.ModTime(), nil
}

// Exists reports whether path exists on disk, swallowing the error (a
// missing BMI file is an ordinary cache-invalidation condition, not a fault
// worth propagating up).
func Exists(path string) bool {
	_, err := times.Stat(path)
	return err == nil
}
