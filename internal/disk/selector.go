package disk

import (
	"strconv"
	"strings"
)

// Selector identifies the disk to describe, either by 1-based index into a
// fresh enumeration or by raw device path
type Selector struct {
	Raw     string
	Index   int
	IsIndex bool
}

// ParseSelector interprets raw as an index when it is a whole number
func ParseSelector(raw string) Selector {
	sel := Selector{Raw: raw}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		sel.Index = n
		sel.IsIndex = true
	}
	return sel
}

// Resolve returns the record the selector's index points at. It reports false
// for path selectors and for indices outside [1, len(records)].
func (s Selector) Resolve(records []*Record) (*Record, bool) {
	if !s.IsIndex || s.Index < 1 || s.Index > len(records) {
		return nil, false
	}
	return records[s.Index-1], true
}
