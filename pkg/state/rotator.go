/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package state owns the persisted reboot-cause file lifecycle: preparing
// the state directory, persisting the resolved cause, appending the history
// record, and re-arming the software-cause marker for the next boot.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/config"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Rotator rotates the persisted reboot-cause state. Steps are best-effort
// in isolation (no transactional rollback); unexpected I/O failures beyond
// "file absent" propagate and terminate the run.
type Rotator struct {
	cfg config.Config
}

// NewRotator creates a Rotator bound to the given configuration.
func NewRotator(cfg config.Config) *Rotator {
	return &Rotator{cfg: cfg}
}

// Prepare ensures the state and history directories exist and removes the
// stale previous-cause output from the last cycle. Must run before the
// probes so the probes always see a consistent state area.
func (r *Rotator) Prepare() error {
	if err := os.MkdirAll(r.cfg.StateDir, dirMode); err != nil {
		return fmt.Errorf("failed to create state directory %q: %w", r.cfg.StateDir, err)
	}
	if err := os.MkdirAll(r.cfg.HistoryDir(), dirMode); err != nil {
		return fmt.Errorf("failed to create history directory %q: %w", r.cfg.HistoryDir(), err)
	}

	if err := removeIfPresent(r.cfg.PreviousCauseFile()); err != nil {
		return err
	}

	return nil
}

// Persist writes the resolved cause to the previous-cause output file,
// fully overwriting any prior content.
func (r *Rotator) Persist(resolved string) error {
	path := r.cfg.PreviousCauseFile()
	if err := os.WriteFile(path, []byte(resolved), fileMode); err != nil {
		return fmt.Errorf("failed to persist previous reboot cause to %q: %w", path, err)
	}
	slog.Info("persisted previous reboot cause", "path", path, "cause", resolved)
	return nil
}

// Rearm resets the software-cause marker to the Unknown default so an
// unexplained reboot in the next cycle does not carry over stale data.
func (r *Rotator) Rearm() error {
	path := r.cfg.CauseFile()
	if err := removeIfPresent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(cause.Unknown), fileMode); err != nil {
		return fmt.Errorf("failed to re-arm reboot-cause marker %q: %w", path, err)
	}
	return nil
}

func removeIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}
	return nil
}
