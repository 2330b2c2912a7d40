package disk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const devRoot = "/dev/"

// lsblkColumns selects the NAME, TYPE and SIZE columns
var lsblkColumns = []string{"-o", "NAME,TYPE,SIZE"}

// Runner runs an external command and returns its standard output split into
// lines
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]string, error)
}

// CommandError reports a command that ran but exited non-zero
type CommandError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run executes name with args. Output gathered before a non-zero exit is
// returned together with a *CommandError.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	lines := splitLines(out)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return lines, &CommandError{
				Name:     name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return lines, nil
}

func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseDiskRows keeps the rows whose TYPE column is "disk" and numbers them
// in the order lsblk emitted them
func parseDiskRows(lines []string) []*Record {
	var records []*Record
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "disk" {
			continue
		}
		records = append(records, &Record{
			Index:  len(records) + 1,
			Device: devRoot + fields[0],
			Size:   fields[len(fields)-1],
		})
	}
	return records
}
