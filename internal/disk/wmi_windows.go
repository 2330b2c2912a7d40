//go:build windows

package disk

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

// wmiDriveSource queries the local WMI service
type wmiDriveSource struct {
	client *wmi.Client
}

func newWMIDriveSource() (DriveSource, error) {
	// PtrNil keeps Size nil for drives without media
	return &wmiDriveSource{client: &wmi.Client{PtrNil: true}}, nil
}

// Drives returns Win32_DiskDrive objects
func (s *wmiDriveSource) Drives(ctx context.Context) ([]Win32DiskDrive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var drives []Win32DiskDrive
	err := s.client.Query("SELECT DeviceID, Description, Size, Index FROM Win32_DiskDrive", &drives)
	if err != nil {
		return nil, fmt.Errorf("Win32_DiskDrive query failed: %w", err)
	}
	return drives, nil
}

// PartitionMap reads Win32_LogicalDiskToPartition
func (s *wmiDriveSource) PartitionMap(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var links []win32LogicalDiskToPartition
	err := s.client.Query("SELECT Antecedent, Dependent FROM Win32_LogicalDiskToPartition", &links)
	if err != nil {
		return nil, fmt.Errorf("Win32_LogicalDiskToPartition query failed: %w", err)
	}
	return buildPartitionMap(links), nil
}
