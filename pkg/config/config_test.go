package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/host/reboot-cause", cfg.StateDir)
	assert.Equal(t, "/host/reboot-cause/reboot-cause.txt", cfg.CauseFile())
	assert.Equal(t, "/host/reboot-cause/previous-reboot-cause.txt", cfg.PreviousCauseFile())
	assert.Equal(t, "/host/reboot-cause/history", cfg.HistoryDir())
	assert.Equal(t, "/proc/cmdline", cfg.KernelCmdline)
	assert.Equal(t, "/tmp/notify_firstboot_to_platform", cfg.FirstBootFlag)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
stateDir: /var/lib/reboot-cause
metricsTextfile: /var/lib/node_exporter/reboot_cause.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// overridden
	assert.Equal(t, "/var/lib/reboot-cause", cfg.StateDir)
	assert.Equal(t, "/var/lib/node_exporter/reboot_cause.prom", cfg.MetricsTextfile)

	// untouched defaults
	assert.Equal(t, "/var/lib/reboot-cause/reboot-cause.txt", cfg.CauseFile())
	assert.Equal(t, "/proc/cmdline", cfg.KernelCmdline)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stateDir: [not: closed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyRequiredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`stateDir: ""`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty state dir", func(c *Config) { c.StateDir = "" }},
		{"empty cause file name", func(c *Config) { c.CauseFileName = "" }},
		{"empty previous cause file name", func(c *Config) { c.PreviousCauseFileName = "" }},
		{"empty history dir name", func(c *Config) { c.HistoryDirName = "" }},
		{"empty kernel cmdline", func(c *Config) { c.KernelCmdline = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
