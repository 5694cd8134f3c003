/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default filesystem contract. These paths are stable interfaces consumed by
// operators and higher-level tooling; change them only with a migration plan.
const (
	defaultStateDir        = "/host/reboot-cause"
	defaultCauseFileName   = "reboot-cause.txt"
	defaultPrevFileName    = "previous-reboot-cause.txt"
	defaultHistoryDirName  = "history"
	defaultFirstBootFlag   = "/tmp/notify_firstboot_to_platform"
	defaultKernelCmdline   = "/proc/cmdline"
	defaultMetricsTextfile = ""
)

// Config holds every filesystem path the tool touches. It is built once at
// startup and passed by value to each component; nothing mutates it afterward.
type Config struct {
	// StateDir is the directory holding the reboot-cause state files.
	StateDir string `yaml:"stateDir"`

	// CauseFileName is the software-cause marker file name, relative to StateDir.
	CauseFileName string `yaml:"causeFileName"`

	// PreviousCauseFileName is the resolved-output file name, relative to StateDir.
	PreviousCauseFileName string `yaml:"previousCauseFileName"`

	// HistoryDirName is the per-boot history record directory, relative to StateDir.
	HistoryDirName string `yaml:"historyDirName"`

	// FirstBootFlag is the one-time first-boot notification flag file,
	// swept opportunistically each run.
	FirstBootFlag string `yaml:"firstBootFlag"`

	// KernelCmdline is the kernel boot parameter source.
	KernelCmdline string `yaml:"kernelCmdline"`

	// MetricsTextfile is an optional Prometheus textfile-collector output
	// path. Empty disables metrics emission.
	MetricsTextfile string `yaml:"metricsTextfile"`
}

// Default returns the production path layout.
func Default() Config {
	return Config{
		StateDir:              defaultStateDir,
		CauseFileName:         defaultCauseFileName,
		PreviousCauseFileName: defaultPrevFileName,
		HistoryDirName:        defaultHistoryDirName,
		FirstBootFlag:         defaultFirstBootFlag,
		KernelCmdline:         defaultKernelCmdline,
		MetricsTextfile:       defaultMetricsTextfile,
	}
}

// Load returns the default configuration with overrides applied from the
// YAML file at path. An empty path returns the defaults unchanged. A path
// that cannot be read or parsed is an error: an operator who asked for an
// override file should not silently run with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every required path is set.
func (c Config) Validate() error {
	switch {
	case c.StateDir == "":
		return fmt.Errorf("stateDir cannot be empty")
	case c.CauseFileName == "":
		return fmt.Errorf("causeFileName cannot be empty")
	case c.PreviousCauseFileName == "":
		return fmt.Errorf("previousCauseFileName cannot be empty")
	case c.HistoryDirName == "":
		return fmt.Errorf("historyDirName cannot be empty")
	case c.KernelCmdline == "":
		return fmt.Errorf("kernelCmdline cannot be empty")
	}
	return nil
}

// CauseFile returns the absolute path of the software-cause marker file.
func (c Config) CauseFile() string {
	return filepath.Join(c.StateDir, c.CauseFileName)
}

// PreviousCauseFile returns the absolute path of the resolved-output file.
func (c Config) PreviousCauseFile() string {
	return filepath.Join(c.StateDir, c.PreviousCauseFileName)
}

// HistoryDir returns the absolute path of the history record directory.
func (c Config) HistoryDir() string {
	return filepath.Join(c.StateDir, c.HistoryDirName)
}
