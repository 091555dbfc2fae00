//go:build !windows

package msvc

import (
	"context"
	"fmt"
)

// Detect is unavailable outside Windows: vswhere.exe and cl.exe only exist
// there, so detect.probeAll simply records this backend as not found.
func Detect(ctx context.Context) (*Compiler, error) {
	return nil, fmt.Errorf("msvc: only available on windows")
}
