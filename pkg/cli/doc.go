// Package cli implements the command-line interface for the reboot-cause tool.
//
// # Overview
//
// The tool runs once, early in boot, as a privileged one-shot task. The
// default invocation takes no flags: it determines why the device most
// recently rebooted, persists the result, and rotates the marker files for
// the next boot cycle.
//
//	rebootcause
//
// # Global Flags
//
//	--config        Path to a YAML file overriding the default state paths
//	--state-dir     Override the reboot-cause state directory
//	--metrics-textfile  Prometheus textfile-collector output path
//	--log-level     Logging verbosity (debug, info, warn, error)
//	--help, -h      Show command help
//	--version, -v   Show version information
//
// # Environment Variables
//
//	LOG_LEVEL            Set logging verbosity when --log-level is not given
//	REBOOTCAUSE_CONFIG   Config override file (same as --config)
//
// # Exit Codes
//
//	0  Success
//	1  Privilege check failure or execution failure
//
// All diagnostic output goes to the system journal (or stderr when no
// journal is available), never to standard output.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/probe/cmdline - kernel boot parameter probe
//   - pkg/probe/platform - optional hardware platform probe
//   - pkg/probe/software - software-cause marker probe
//   - pkg/cause - resolution policy
//   - pkg/state - state-file rotation, history, metrics
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/sonic-net/reboot-cause/pkg/cli.version=1.0.0'"
package cli
