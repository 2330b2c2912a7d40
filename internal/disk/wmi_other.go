//go:build !windows

package disk

import (
	"fmt"
	"runtime"
)

func newWMIDriveSource() (DriveSource, error) {
	return nil, fmt.Errorf("%w on %s", ErrWMIUnavailable, runtime.GOOS)
}
