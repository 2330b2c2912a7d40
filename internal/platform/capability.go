package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrMissingCapability is returned when the OS query facility a backend
// depends on is not usable on this host
var ErrMissingCapability = errors.New("missing platform capability")

var lookPath = exec.LookPath

// CheckCapability verifies that the backend for family can actually query the
// OS before it is constructed. lsblkPath names the listing command used on
// POSIX hosts.
func CheckCapability(ctx context.Context, family Family, lsblkPath string) error {
	switch family {
	case POSIX:
		if _, err := lookPath(lsblkPath); err != nil {
			return fmt.Errorf("%w: %s not found: %v", ErrMissingCapability, lsblkPath, err)
		}
		return nil
	case Windows:
		if err := probeWMI(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrMissingCapability, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOS, GetOS())
	}
}
