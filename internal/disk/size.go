package disk

import "github.com/dustin/go-humanize"

// formatSize renders a byte count reported by WMI. Drives without media
// report no size.
func formatSize(size *uint64) string {
	if size == nil {
		return "unknown"
	}
	return humanize.IBytes(*size)
}
