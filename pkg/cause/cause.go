/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package cause defines the reboot-cause types and the resolution policy
// combining the three independent probe signals into one final cause string.
package cause

import "regexp"

// Unknown is the default cause when no signal resolves the reboot reason.
// It is also the value the software-cause marker is re-armed with after
// every run.
const Unknown = "Unknown"

// BootType is the reboot type detected from the kernel boot parameters.
// It only records that a warm or fast reboot occurred, never why.
type BootType string

const (
	// BootTypeNone means the boot parameters carried no reboot-type signal.
	BootTypeNone BootType = ""
	// BootTypeWarm is a warm reboot (service-preserving restart).
	BootTypeWarm BootType = "warm-reboot"
	// BootTypeFast is a fast reboot (minimized-disruption restart).
	BootTypeFast BootType = "fast-reboot"
)

// String returns the boot type identifier, or "none" for the absent value.
func (b BootType) String() string {
	if b == BootTypeNone {
		return "none"
	}
	return string(b)
}

// Resolve combines the three probe outputs under the fixed precedence policy:
//
//  1. A detected warm/fast reboot is definitionally software-initiated, so
//     the software-cause marker is authoritative and any concurrent hardware
//     signal is discarded. This is intentional policy, not an oversight.
//  2. Otherwise a present hardware cause wins.
//  3. Otherwise the software cause (which defaults to Unknown) stands.
//
// The result is always non-empty.
func Resolve(boot BootType, hardware string, hardwarePresent bool, software string) string {
	if boot != BootTypeNone {
		return software
	}
	if hardwarePresent {
		return hardware
	}
	return software
}

// Matches causes written by the reboot scripts, e.g.
// "User issued 'reboot' command [User: admin, Time: Sun Aug 23 10:01:02 UTC 2026]".
var userActionRe = regexp.MustCompile(`User issued '.*' command \[User: (.*), Time: (.*)\]`)

// ParseUserAndTime extracts the initiating user and request time from a
// software cause written by the reboot tooling. Both values are empty when
// the cause does not carry them (hardware causes, Unknown, free-form text).
func ParseUserAndTime(cause string) (user, time string) {
	m := userActionRe.FindStringSubmatch(cause)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
