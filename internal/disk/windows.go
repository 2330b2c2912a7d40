package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoDiskCheck/internal/logger"
)

// ErrWMIUnavailable is returned when the Windows backend is requested on a
// build without WMI
var ErrWMIUnavailable = errors.New("WMI not available")

// Win32DiskDrive represents the Win32_DiskDrive properties the Windows
// backend reads
type Win32DiskDrive struct {
	DeviceID    string
	Description string
	Size        *uint64
	Index       uint32
}

// DriveSource yields physical drives and the volume to disk association
type DriveSource interface {
	// Drives returns the drives in WMI enumeration order
	Drives(ctx context.Context) ([]Win32DiskDrive, error)
	// PartitionMap maps logical disk IDs such as "C:" to physical disk numbers
	PartitionMap(ctx context.Context) (map[string]int, error)
}

// VolumeSource yields the volumes known to the OS
type VolumeSource interface {
	Volumes(ctx context.Context) ([]*Volume, error)
}

// WindowsChecker implements disk checks on top of WMI
type WindowsChecker struct {
	drives  DriveSource
	volumes VolumeSource
}

// NewWindowsChecker creates a checker reading drives and volumes from the
// given sources
func NewWindowsChecker(drives DriveSource, volumes VolumeSource) *WindowsChecker {
	return &WindowsChecker{drives: drives, volumes: volumes}
}

var deviceIDReplacer = strings.NewReplacer(".", "", `\`, "")

// normalizeDeviceID turns `\\.\PHYSICALDRIVE0` into `PHYSICALDRIVE0`
func normalizeDeviceID(id string) string {
	return deviceIDReplacer.Replace(id)
}

// List returns every Win32_DiskDrive without volumes attached
func (c *WindowsChecker) List(ctx context.Context) ([]*Record, error) {
	drives, err := c.drives.Drives(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query disk drives: %w", err)
	}

	records := make([]*Record, 0, len(drives))
	for i, d := range drives {
		records = append(records, &Record{
			Index:       i + 1,
			Device:      normalizeDeviceID(d.DeviceID),
			Description: d.Description,
			Size:        formatSize(d.Size),
			physical:    int(d.Index),
		})
	}
	return records, nil
}

// PrintAll writes the disk count and one line per disk
func (c *WindowsChecker) PrintAll(ctx context.Context, w io.Writer) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	printWindowsReport(w, records)
	return nil
}

func printWindowsReport(w io.Writer, records []*Record) {
	fmt.Fprintf(w, "You have %d hard drives installed\n", len(records))
	for _, r := range records {
		fmt.Fprintln(w, strings.Join(windowsFields(r, false), fieldSep))
	}
}

func windowsFields(r *Record, withVolumes bool) []string {
	fields := []string{strconv.Itoa(r.Index), r.Device, r.Description, r.Size}
	if withVolumes {
		for _, v := range r.Volumes {
			fields = append(fields, v.String())
		}
	}
	return fields
}

// Describe prints one disk with its volumes. Only index selectors are
// accepted.
func (c *WindowsChecker) Describe(ctx context.Context, w io.Writer, sel Selector) error {
	if !sel.IsIndex {
		fmt.Fprintln(w, "Please enter valid disk (whole) number! Reference below.")
		fmt.Fprintln(w)
		return c.PrintAll(ctx, w)
	}

	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	volumes, err := c.keyedVolumes(ctx)
	if err != nil {
		return err
	}
	attachVolumes(records, volumes)

	rec, ok := sel.Resolve(records)
	if !ok {
		fmt.Fprintln(w, "Disk with that index does not exist! Please try again.")
		printWindowsReport(w, records)
		return nil
	}

	fmt.Fprintln(w, strings.Join(windowsFields(rec, true), fieldSep))
	return nil
}

// keyedVolumes returns the OS volumes with DiskIndex filled in wherever the
// partition association is known
func (c *WindowsChecker) keyedVolumes(ctx context.Context) ([]*Volume, error) {
	volumes, err := c.volumes.Volumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}

	partMap, err := c.drives.PartitionMap(ctx)
	if err != nil {
		logger.Warnf("Failed to read partition associations: %v", err)
		return volumes, nil
	}

	for _, v := range volumes {
		if idx, ok := partMap[logicalDiskKey(v.Device)]; ok {
			v.DiskIndex = idx
		}
	}
	return volumes, nil
}

// attachVolumes joins volumes to records by physical disk number. Volumes
// without a known disk, such as mapped network shares, are skipped. Only when
// no volume has a known disk does the join fall back to pairing by position:
// disk i gets volume i and the shorter list wins.
func attachVolumes(records []*Record, volumes []*Volume) {
	keyed := false
	for _, v := range volumes {
		if v.DiskIndex >= 0 {
			keyed = true
			break
		}
	}

	if keyed {
		byDisk := make(map[int]*Record, len(records))
		for _, r := range records {
			byDisk[r.physical] = r
		}
		for _, v := range volumes {
			if v.DiskIndex < 0 {
				logger.Debugf("volume %s has no partition association, skipping", v.Device)
				continue
			}
			r, ok := byDisk[v.DiskIndex]
			if !ok {
				logger.Debugf("volume %s belongs to unlisted disk %d", v.Device, v.DiskIndex)
				continue
			}
			r.Volumes = append(r.Volumes, v)
		}
		return
	}

	if len(volumes) > 0 {
		logger.Warnf("Volume to disk association unknown, pairing %d volumes with %d disks by position", len(volumes), len(records))
	}
	for i := 0; i < len(records) && i < len(volumes); i++ {
		records[i].Volumes = append(records[i].Volumes, volumes[i])
	}
}
