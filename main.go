package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/CristiGvl/picoDiskCheck/internal/config"
	"github.com/CristiGvl/picoDiskCheck/internal/disk"
	"github.com/CristiGvl/picoDiskCheck/internal/logger"
	"github.com/CristiGvl/picoDiskCheck/internal/platform"
	"github.com/spf13/cobra"
)

var appVersion = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	// User-facing failures go to stdout with the rest of the report
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stdout, err)
		stop()
		os.Exit(1)
	}
}

var negativeIndexRe = regexp.MustCompile(`^-\d+$`)

// normalizeArgs moves a bare negative number such as "-1" behind "--" so the
// flag parser passes it through as the disk selector instead of rejecting it
// as an unknown shorthand flag
func normalizeArgs(args []string) []string {
	var rest, selectors []string
	for i, arg := range args {
		if arg == "--" {
			selectors = append(selectors, args[i+1:]...)
			break
		}
		if negativeIndexRe.MatchString(arg) {
			selectors = append(selectors, arg)
			continue
		}
		rest = append(rest, arg)
	}
	if len(selectors) == 0 {
		return rest
	}
	return append(append(rest, "--"), selectors...)
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "picoDiskCheck [disk]",
		Short: "List physical disks and their partitions",
		Long: `picoDiskCheck lists the physical disks attached to this host with their sizes.

Pass a disk to describe it: a number from the listing, or on POSIX hosts a
device path such as /dev/sda.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(cmd.Flags()); err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)

			var selector string
			if len(args) == 1 {
				selector = args[0]
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), platform.GetFamily(), selector)
		},
	}
	cmd.SetOut(os.Stdout)
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// run picks the backend for family and prints the report or the single disk
// description
func run(ctx context.Context, cfg *config.Config, out io.Writer, family platform.Family, selector string) error {
	if err := platform.ValidateSupport(family); err != nil {
		logger.Debug(err)
		fmt.Fprintln(out, "OS not supported!")
		return nil
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if desc, err := platform.Describe(ctx); err != nil {
		logger.Debugf("Host detection failed: %v", err)
	} else {
		logger.WithField("family", family).Debugf("Detected host: %s", desc)
	}

	if err := platform.CheckCapability(ctx, family, cfg.LsblkPath); err != nil {
		return err
	}

	checker, err := disk.NewChecker(family, cfg.LsblkPath)
	if err != nil {
		return err
	}
	return disk.Run(ctx, checker, out, selector)
}
