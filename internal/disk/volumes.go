package disk

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// PartitionVolumeSource lists volumes through gopsutil
type PartitionVolumeSource struct{}

// NewVolumeSource creates the volume source for the current platform
func NewVolumeSource() VolumeSource {
	return &PartitionVolumeSource{}
}

// Volumes returns the physical partitions gopsutil reports, in OS order
func (s *PartitionVolumeSource) Volumes(ctx context.Context) ([]*Volume, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	volumes := make([]*Volume, 0, len(partitions))
	for _, p := range partitions {
		volumes = append(volumes, &Volume{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Opts:       strings.Join(p.Opts, ","),
			DiskIndex:  -1,
		})
	}
	return volumes, nil
}
