package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"linux", POSIX},
		{"darwin", POSIX},
		{"freebsd", POSIX},
		{"windows", Windows},
		{"plan9", Unsupported},
		{"js", Unsupported},
		{"", Unsupported},
	}
	for _, tt := range tests {
		if got := FamilyOf(tt.goos); got != tt.want {
			t.Fatalf("FamilyOf(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestCheckCapabilityPOSIX(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	var asked string
	lookPath = func(file string) (string, error) {
		asked = file
		return "/usr/bin/" + file, nil
	}
	if err := CheckCapability(context.Background(), POSIX, "lsblk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asked != "lsblk" {
		t.Fatalf("looked up %q, want lsblk", asked)
	}

	lookPath = func(file string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	}
	err := CheckCapability(context.Background(), POSIX, "lsblk")
	if !errors.Is(err, ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
}

func TestCheckCapabilityWindowsOffPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("WMI is present on windows")
	}
	err := CheckCapability(context.Background(), Windows, "lsblk")
	if !errors.Is(err, ErrMissingCapability) {
		t.Fatalf("expected ErrMissingCapability, got %v", err)
	}
}

func TestCheckCapabilityUnsupported(t *testing.T) {
	err := CheckCapability(context.Background(), Unsupported, "lsblk")
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("expected ErrUnsupportedOS, got %v", err)
	}
}

func TestValidateSupport(t *testing.T) {
	if err := ValidateSupport(POSIX); err != nil {
		t.Fatalf("POSIX should be supported: %v", err)
	}
	if err := ValidateSupport(Windows); err != nil {
		t.Fatalf("Windows should be supported: %v", err)
	}
	if err := ValidateSupport(Unsupported); !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("expected ErrUnsupportedOS, got %v", err)
	}
}
