package disk

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/CristiGvl/picoDiskCheck/internal/platform"
)

// fieldSep joins the fields of a Windows disk line
const fieldSep = "  "

// Record represents one physical disk from a single enumeration
type Record struct {
	Index       int
	Device      string
	Description string
	Size        string
	Volumes     []*Volume

	// physical is the OS disk number, used to join volumes
	physical int
}

// Volume represents a partition or volume reported by the OS
type Volume struct {
	Device     string
	Mountpoint string
	Fstype     string
	Opts       string
	// DiskIndex is the owning physical disk number, -1 when unknown
	DiskIndex int
}

func (v *Volume) String() string {
	return fmt.Sprintf("device=%s mountpoint=%s fstype=%s opts=%s", v.Device, v.Mountpoint, v.Fstype, v.Opts)
}

// Checker is implemented by every OS backend
type Checker interface {
	// List enumerates all disks in OS order
	List(ctx context.Context) ([]*Record, error)
	// PrintAll writes the numbered disk report
	PrintAll(ctx context.Context, w io.Writer) error
	// Describe writes the details of the disk named by sel. Selector
	// problems are reported to w, not returned.
	Describe(ctx context.Context, w io.Writer, sel Selector) error
}

// NewChecker creates the checker for the given OS family
func NewChecker(family platform.Family, lsblkPath string) (Checker, error) {
	switch family {
	case platform.POSIX:
		return NewPosixChecker(ExecRunner{}, lsblkPath), nil
	case platform.Windows:
		drives, err := newWMIDriveSource()
		if err != nil {
			return nil, err
		}
		return NewWindowsChecker(drives, NewVolumeSource()), nil
	default:
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedOS, family)
	}
}

// Run prints the full report when arg is empty, otherwise describes the disk
// arg selects
func Run(ctx context.Context, c Checker, w io.Writer, arg string) error {
	if strings.TrimSpace(arg) == "" {
		return c.PrintAll(ctx, w)
	}
	return c.Describe(ctx, w, ParseSelector(arg))
}
