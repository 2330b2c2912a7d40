package disk

import (
	"bytes"
	"context"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		raw     string
		index   int
		isIndex bool
	}{
		{"1", 1, true},
		{" 2 ", 2, true},
		{"+3", 3, true},
		{"0", 0, true},
		{"-4", -4, true},
		{"/dev/sda", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		sel := ParseSelector(tt.raw)
		if sel.Raw != tt.raw || sel.Index != tt.index || sel.IsIndex != tt.isIndex {
			t.Fatalf("ParseSelector(%q) = %+v", tt.raw, sel)
		}
	}
}

func TestSelectorResolve(t *testing.T) {
	records := []*Record{{Index: 1, Device: "/dev/sda"}, {Index: 2, Device: "/dev/sdb"}}

	rec, ok := ParseSelector("2").Resolve(records)
	if !ok || rec.Device != "/dev/sdb" {
		t.Fatalf("expected /dev/sdb, got %+v %v", rec, ok)
	}
	for _, raw := range []string{"0", "3", "-1", "/dev/sda"} {
		if _, ok := ParseSelector(raw).Resolve(records); ok {
			t.Fatalf("Resolve(%q) should fail", raw)
		}
	}
}

func TestRunDispatch(t *testing.T) {
	c, runner := newFakePosix()
	var buf bytes.Buffer
	if err := Run(context.Background(), c, &buf, ""); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "lsblk -o NAME,TYPE,SIZE" {
		t.Fatalf("empty selector should list disks, calls: %v", runner.calls)
	}

	runner.calls = nil
	buf.Reset()
	if err := Run(context.Background(), c, &buf, "/dev/sda"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "lsblk /dev/sda -o NAME,TYPE,SIZE" {
		t.Fatalf("path selector should describe, calls: %v", runner.calls)
	}
}
