package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Family represents the OS family a disk backend is selected for
type Family string

const (
	POSIX       Family = "posix"
	Windows     Family = "windows"
	Unsupported Family = "unsupported"
)

// ErrUnsupportedOS is returned when the running OS belongs to no known family
var ErrUnsupportedOS = errors.New("unsupported operating system")

// posixSystems lists the GOOS values that expose a POSIX-like block device layer
var posixSystems = map[string]bool{
	"linux":     true,
	"darwin":    true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"illumos":   true,
	"aix":       true,
}

// GetOS returns the current operating system
func GetOS() string {
	return runtime.GOOS
}

// FamilyOf maps a GOOS value to its OS family
func FamilyOf(goos string) Family {
	if goos == "windows" {
		return Windows
	}
	if posixSystems[goos] {
		return POSIX
	}
	return Unsupported
}

// GetFamily returns the family of the current operating system
func GetFamily() Family {
	return FamilyOf(GetOS())
}

// ValidateSupport returns an error if family has no disk backend
func ValidateSupport(family Family) error {
	if family == Unsupported {
		return fmt.Errorf("%w: %s. Supported: posix-like systems, windows", ErrUnsupportedOS, GetOS())
	}
	return nil
}
