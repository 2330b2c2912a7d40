//go:build windows

package platform

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

type win32DiskDriveProbe struct {
	Index uint32
}

// probeWMI runs the cheapest Win32_DiskDrive query to make sure the WMI
// service answers
func probeWMI(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var drives []win32DiskDriveProbe
	if err := wmi.Query("SELECT Index FROM Win32_DiskDrive", &drives); err != nil {
		return fmt.Errorf("WMI query failed: %w", err)
	}
	return nil
}
