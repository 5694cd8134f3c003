/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package cmdline detects a previous warm or fast reboot request from the
// kernel boot parameter line.
package cmdline

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"regexp"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/config"
	"github.com/sonic-net/reboot-cause/pkg/fileread"
)

// The boot scripts embed SONIC_BOOT_TYPE=<value> among the other kernel
// arguments. The warm pattern is tested first and short-circuits: it owns
// the "fastfast" value, which the fast pattern would otherwise also match.
var (
	warmPattern = regexp.MustCompile(`SONIC_BOOT_TYPE=(warm|fastfast)`)
	fastPattern = regexp.MustCompile(`SONIC_BOOT_TYPE=(fast|fast-reboot)`)
)

// Probe pattern-matches the kernel boot parameter line.
type Probe struct {
	cfg    config.Config
	reader *fileread.Reader
}

// NewProbe creates a cmdline probe bound to the given configuration.
func NewProbe(cfg config.Config) *Probe {
	return &Probe{
		cfg:    cfg,
		reader: fileread.NewReader(),
	}
}

// Detect returns the reboot type requested on the previous boot, or
// cause.BootTypeNone when the boot parameter source is absent or carries no
// reboot-type token. A missing source file is a normal "no signal" outcome,
// never an error.
func (p *Probe) Detect(ctx context.Context) (cause.BootType, error) {
	if err := ctx.Err(); err != nil {
		return cause.BootTypeNone, err
	}

	line, err := p.reader.FirstLine(p.cfg.KernelCmdline)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("kernel cmdline not present, no reboot-type signal",
				"path", p.cfg.KernelCmdline)
			return cause.BootTypeNone, nil
		}
		return cause.BootTypeNone, err
	}

	switch {
	case warmPattern.MatchString(line):
		slog.Info("warm reboot detected from kernel cmdline")
		return cause.BootTypeWarm, nil
	case fastPattern.MatchString(line):
		slog.Info("fast reboot detected from kernel cmdline")
		return cause.BootTypeFast, nil
	default:
		return cause.BootTypeNone, nil
	}
}
