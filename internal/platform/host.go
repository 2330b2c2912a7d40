package platform

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// Describe returns a one-line summary of the detected host, used for
// diagnostics only
func Describe(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read host info: %w", err)
	}

	return fmt.Sprintf("%s %s %s (family %s, kernel %s, arch %s)",
		info.OS, info.Platform, info.PlatformVersion, info.PlatformFamily, info.KernelVersion, info.KernelArch), nil
}
