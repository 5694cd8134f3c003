/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sonic-net/reboot-cause/pkg/logging"
)

const name = "rebootcause"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root command. The tool is a one-shot: the root action
// performs the whole determination, there are no subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Determine and persist the previous reboot cause",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Runs once, early in boot, with root privileges. Correlates three
independent signals into a single previous-reboot-cause string:

  - the kernel boot parameter line (warm/fast reboot detection)
  - the platform hardware API, when installed (hardware faults)
  - the software-written reboot-cause marker file

The resolved cause is persisted for operators and higher-level tooling,
a history record is appended, and the marker file is re-armed so the
next boot cycle starts clean.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML file overriding the default state paths",
				Sources: cli.EnvVars("REBOOTCAUSE_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "state-dir",
				Usage: "Override the reboot-cause state directory",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "Prometheus textfile-collector output path (empty disables)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Info("starting",
				"name", name,
				"version", version,
				"commit", commit)
			return ctx, nil
		},
		Action: runDetermine,
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := New().Run(context.Background(), os.Args); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
