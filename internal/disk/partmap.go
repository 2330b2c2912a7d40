package disk

import (
	"regexp"
	"strconv"
	"strings"
)

// win32LogicalDiskToPartition is one row of the WMI association between a
// partition (Antecedent) and the logical disk mounted on it (Dependent)
type win32LogicalDiskToPartition struct {
	Antecedent string
	Dependent  string
}

var (
	diskNumberRe  = regexp.MustCompile(`Disk #(\d+)`)
	logicalDiskRe = regexp.MustCompile(`DeviceID="([^"]+)"`)
)

// buildPartitionMap maps logical disk IDs to physical disk numbers. Rows that
// cannot be parsed are skipped.
func buildPartitionMap(links []win32LogicalDiskToPartition) map[string]int {
	partMap := make(map[string]int, len(links))
	for _, link := range links {
		m := diskNumberRe.FindStringSubmatch(link.Antecedent)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		d := logicalDiskRe.FindStringSubmatch(link.Dependent)
		if d == nil {
			continue
		}
		partMap[logicalDiskKey(d[1])] = n
	}
	return partMap
}

// logicalDiskKey normalizes "C:", "c:" and `C:\` to "C:"
func logicalDiskKey(device string) string {
	return strings.ToUpper(strings.TrimRight(device, `\`))
}
