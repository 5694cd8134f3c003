/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package platform queries the optional vendor platform API for a
// hardware-reported reboot cause.
//
// Not every device ships the platform capability. Its absence is a valid,
// distinct outcome rather than an error: integrations register a Provider at
// startup (typically from an init function in a vendor package), and when
// nothing is registered the probe reports the cause as absent with a
// warning. The probe never lets a provider failure escape its boundary.
package platform

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/sonic-net/reboot-cause/pkg/errors"
)

// Major reboot-cause identifiers reported by the platform API.
const (
	// CauseNonHardware is the sentinel for reboots the hardware did not
	// initiate; the software cause is authoritative in that case.
	CauseNonHardware = "Non-Hardware"
	// CauseHardwareOther is the sentinel for an unspecified hardware fault;
	// the minor cause carries the detail.
	CauseHardwareOther = "Hardware - Other"

	CausePowerLoss            = "Power Loss"
	CauseThermalOverloadCPU   = "Thermal Overload: CPU"
	CauseThermalOverloadASIC  = "Thermal Overload: ASIC"
	CauseThermalOverloadOther = "Thermal Overload: Other"
	CauseInsufficientFanSpeed = "Insufficient Fan Speed"
	CauseWatchdog             = "Watchdog"
	CauseCPUColdReset         = "CPU Cold Reset"
)

// ErrUnavailable is returned by providers whose capability turns out to be
// missing at query time (e.g. the vendor plugin is installed but the device
// EEPROM is not).
var ErrUnavailable = apperrors.New(apperrors.ErrCodeCapabilityUnavailable,
	"platform reboot-cause capability not available")

// Cause is the (major, minor) reboot-cause pair reported by the chassis.
type Cause struct {
	Major string
	Minor string
}

// Chassis is the hardware abstraction exposing reboot-cause reporting.
type Chassis interface {
	RebootCause(ctx context.Context) (Cause, error)
}

// Provider supplies the chassis abstraction for the running device.
type Provider interface {
	Chassis() (Chassis, error)
}

// registered is the process-wide provider. There is exactly one device per
// process, so a single registration slot is sufficient.
var registered Provider

// Register installs the platform provider. Vendor integrations call this
// from an init function; the last registration wins.
func Register(p Provider) {
	registered = p
}

// Probe queries the platform capability for a hardware reboot cause.
type Probe struct {
	provider Provider
}

// NewProbe creates a platform probe using the registered provider, if any.
func NewProbe() *Probe {
	return &Probe{provider: registered}
}

// NewProbeWithProvider creates a platform probe with an explicit provider.
func NewProbeWithProvider(p Provider) *Probe {
	return &Probe{provider: p}
}

// Detect returns the hardware-reported reboot cause and whether one is
// present. Absence of the capability, a provider failure, or a
// "Non-Hardware" major cause all yield (_, false); none of them are errors.
func (p *Probe) Detect(ctx context.Context) (string, bool) {
	if p.provider == nil {
		slog.Warn("no platform provider registered, skipping hardware reboot cause")
		return "", false
	}

	chassis, err := p.provider.Chassis()
	if err != nil {
		slog.Warn("failed to load platform chassis, skipping hardware reboot cause",
			"error", err)
		return "", false
	}

	c, err := chassis.RebootCause(ctx)
	if err != nil {
		slog.Warn("failed to query hardware reboot cause", "error", err)
		return "", false
	}

	switch c.Major {
	case CauseNonHardware:
		slog.Info("hardware reports non-hardware reboot, deferring to software cause")
		return "", false
	case CauseHardwareOther:
		return fmt.Sprintf("%s (%s)", c.Major, c.Minor), true
	default:
		slog.Info("hardware reboot cause reported", "cause", c.Major)
		return c.Major, true
	}
}
