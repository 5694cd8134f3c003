/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package software reads the reboot-cause marker written by the reboot
// tooling before an orchestrated restart.
package software

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/config"
	"github.com/sonic-net/reboot-cause/pkg/fileread"
)

// Probe reads the software-cause marker file.
type Probe struct {
	cfg    config.Config
	reader *fileread.Reader
}

// NewProbe creates a software-cause probe bound to the given configuration.
func NewProbe(cfg config.Config) *Probe {
	return &Probe{
		cfg:    cfg,
		reader: fileread.NewReader(),
	}
}

// Detect returns the first line of the software-cause marker, or
// cause.Unknown when the marker is absent or unreadable. The result is
// always non-empty.
//
// As a side effect the probe sweeps the first-boot notification flag if
// present. The flag is an unrelated one-time signal consumed here because
// this probe is the first boot-time reader of the state area; it plays no
// part in cause resolution.
func (p *Probe) Detect(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.sweepFirstBootFlag()

	line, err := p.reader.FirstLine(p.cfg.CauseFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("software reboot-cause marker not present",
				"path", p.cfg.CauseFile())
			return cause.Unknown, nil
		}
		return "", err
	}

	if line == "" {
		return cause.Unknown, nil
	}

	slog.Info("software reboot cause read from marker", "cause", line)
	return line, nil
}

func (p *Probe) sweepFirstBootFlag() {
	if p.cfg.FirstBootFlag == "" {
		return
	}
	if err := os.Remove(p.cfg.FirstBootFlag); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to remove first-boot flag",
				"path", p.cfg.FirstBootFlag, "error", err)
		}
		return
	}
	slog.Info("removed first-boot flag", "path", p.cfg.FirstBootFlag)
}
