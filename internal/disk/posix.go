package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CristiGvl/picoDiskCheck/internal/logger"
)

// PosixChecker implements disk checks on top of the lsblk listing command
type PosixChecker struct {
	runner Runner
	lsblk  string
}

// NewPosixChecker creates a checker running the lsblk binary at path lsblk
func NewPosixChecker(runner Runner, lsblk string) *PosixChecker {
	return &PosixChecker{runner: runner, lsblk: lsblk}
}

// List returns every disk-type row reported by lsblk
func (c *PosixChecker) List(ctx context.Context) ([]*Record, error) {
	lines, err := c.runner.Run(ctx, c.lsblk, lsblkColumns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list block devices: %w", err)
	}

	records := parseDiskRows(lines)
	logger.Debugf("lsblk returned %d rows, %d disks", len(lines), len(records))
	return records, nil
}

// PrintAll writes the numbered disk report
func (c *PosixChecker) PrintAll(ctx context.Context, w io.Writer) error {
	records, err := c.List(ctx)
	if err != nil {
		return err
	}
	printPosixReport(w, records)
	return nil
}

func printPosixReport(w io.Writer, records []*Record) {
	noun := "drives"
	if len(records) == 1 {
		noun = "drive"
	}
	fmt.Fprintf(w, "You have %d hard %s installed:\n\n", len(records), noun)
	for _, r := range records {
		fmt.Fprintf(w, "%d. %s -> %s\n", r.Index, r.Device, r.Size)
	}
}

// Describe prints the partition layout of one disk. Index selectors are
// resolved against a fresh listing, anything else is passed to lsblk as a
// device path.
func (c *PosixChecker) Describe(ctx context.Context, w io.Writer, sel Selector) error {
	path := sel.Raw
	if sel.IsIndex {
		records, err := c.List(ctx)
		if err != nil {
			return err
		}
		rec, ok := sel.Resolve(records)
		if !ok {
			fmt.Fprintln(w, "Please enter the correct hard drive id!")
			printPosixReport(w, records)
			return nil
		}
		path = rec.Device
	}

	args := append([]string{path}, lsblkColumns...)
	lines, err := c.runner.Run(ctx, c.lsblk, args...)
	if err != nil {
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			return fmt.Errorf("failed to describe %s: %w", path, err)
		}
		// lsblk exits non-zero for unknown devices
		logger.WithField("device", path).Debugf("lsblk: %v", cmdErr)
	}

	if len(lines) == 0 {
		fmt.Fprintf(w, "Drive %s not found!\n", sel.Raw)
		return nil
	}

	fmt.Fprintf(w, "Below are the partitions for \"%s%s\" drive:\n", devRoot, headerName(lines, path))
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

// headerName returns the device name from the first data row, which lsblk
// prints for the disk itself
func headerName(lines []string, path string) string {
	if len(lines) > 1 {
		if fields := strings.Fields(lines[1]); len(fields) > 0 {
			return fields[0]
		}
	}
	return strings.TrimPrefix(path, devRoot)
}
