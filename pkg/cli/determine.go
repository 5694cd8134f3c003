/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/user"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/config"
	apperrors "github.com/sonic-net/reboot-cause/pkg/errors"
	"github.com/sonic-net/reboot-cause/pkg/probe/cmdline"
	"github.com/sonic-net/reboot-cause/pkg/probe/platform"
	"github.com/sonic-net/reboot-cause/pkg/probe/software"
	"github.com/sonic-net/reboot-cause/pkg/state"
)

// geteuid is overridable in tests.
var geteuid = os.Geteuid

// runDetermine is the one-shot pipeline: privilege gate, state preparation,
// three probes, resolution, persistence, re-arm.
func runDetermine(ctx context.Context, cmd *cli.Command) error {
	// The whole procedure mutates root-owned state files. Abort before any
	// mutation when invoked without elevation.
	if geteuid() != 0 {
		u := invokingUser()
		slog.Error("user does not have root privileges", "user", u)
		return apperrors.New(apperrors.ErrCodePrivilege,
			"user "+u+" does not have root privileges, aborting")
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, "failed to load configuration", err)
	}
	if v := cmd.String("state-dir"); v != "" {
		cfg.StateDir = v
	}
	if v := cmd.String("metrics-textfile"); v != "" {
		cfg.MetricsTextfile = v
	}

	return determine(ctx, cfg)
}

// determine runs the pipeline against an already-validated configuration.
func determine(ctx context.Context, cfg config.Config) error {
	rotator := state.NewRotator(cfg)
	if err := rotator.Prepare(); err != nil {
		return err
	}

	// The three probes are independent; their order only affects log
	// ordering, not the outcome.
	bootType, err := cmdline.NewProbe(cfg).Detect(ctx)
	if err != nil {
		return err
	}

	hardware, hardwarePresent := platform.NewProbe().Detect(ctx)

	softwareCause, err := software.NewProbe(cfg).Detect(ctx)
	if err != nil {
		return err
	}

	resolved := cause.Resolve(bootType, hardware, hardwarePresent, softwareCause)
	slog.Info("previous reboot cause resolved",
		"cause", resolved,
		"boot-type", bootType.String())

	if err := rotator.Persist(resolved); err != nil {
		return err
	}
	if err := rotator.AppendHistory(ctx, state.NewRecord(resolved)); err != nil {
		return err
	}
	if err := rotator.Rearm(); err != nil {
		return err
	}

	// Metrics are best-effort: a textfile failure must not fail the boot task.
	if err := rotator.WriteMetrics(resolved, bootType); err != nil {
		slog.Warn("failed to write metrics textfile", "error", err)
	}

	return nil
}

func invokingUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "uid " + strconv.Itoa(geteuid())
}
