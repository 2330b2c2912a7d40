//go:build !windows

package platform

import (
	"context"
	"fmt"
	"runtime"
)

func probeWMI(ctx context.Context) error {
	return fmt.Errorf("WMI not available on %s", runtime.GOOS)
}
