/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package state

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/sonic-net/reboot-cause/pkg/cause"
)

// WriteMetrics exports the resolved cause in Prometheus text exposition
// format to the configured textfile-collector path, for scrape-time pickup
// by node_exporter. A no-op when no path is configured.
//
// The file is written to a temp sibling and renamed so the collector never
// reads a partial exposition. Callers treat failures as warnings: metrics
// are an observability convenience, never a reason to fail the run.
func (r *Rotator) WriteMetrics(resolved string, boot cause.BootType) error {
	path := r.cfg.MetricsTextfile
	if path == "" {
		return nil
	}

	reg := prometheus.NewRegistry()

	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reboot_cause_info",
			Help: "Previous reboot cause of this device (constant 1, cause in labels)",
		},
		[]string{"cause", "boot_type"},
	)
	lastRun := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reboot_cause_last_run_timestamp_seconds",
			Help: "Unix time of the last reboot-cause determination run",
		},
	)
	reg.MustRegister(info, lastRun)

	info.WithLabelValues(resolved, boot.String()).Set(1)
	lastRun.SetToCurrentTime()

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather reboot-cause metrics: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create metrics textfile %q: %w", tmp, err)
	}

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close metrics textfile: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to publish metrics textfile %q: %w", path, err)
	}
	return nil
}
