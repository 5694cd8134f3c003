package cmdline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/config"
)

func testConfig(t *testing.T, cmdlineContent string) config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.StateDir = dir
	cfg.KernelCmdline = filepath.Join(dir, "cmdline")
	if cmdlineContent != "" {
		if err := os.WriteFile(cfg.KernelCmdline, []byte(cmdlineContent), 0o644); err != nil {
			t.Fatalf("failed to write cmdline fixture: %v", err)
		}
	}
	return cfg
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		cmdline  string
		expected cause.BootType
	}{
		{
			name:     "warm boot type",
			cmdline:  "BOOT_IMAGE=/image/boot/vmlinuz root=/dev/sda4 SONIC_BOOT_TYPE=warm quiet\n",
			expected: cause.BootTypeWarm,
		},
		{
			name:     "fastfast boot type yields warm reboot",
			cmdline:  "BOOT_IMAGE=/image/boot/vmlinuz SONIC_BOOT_TYPE=fastfast quiet\n",
			expected: cause.BootTypeWarm,
		},
		{
			name:     "fast boot type",
			cmdline:  "BOOT_IMAGE=/image/boot/vmlinuz SONIC_BOOT_TYPE=fast quiet\n",
			expected: cause.BootTypeFast,
		},
		{
			name:     "fast-reboot boot type",
			cmdline:  "SONIC_BOOT_TYPE=fast-reboot quiet\n",
			expected: cause.BootTypeFast,
		},
		{
			name:     "cold boot has no signal",
			cmdline:  "BOOT_IMAGE=/image/boot/vmlinuz root=/dev/sda4 quiet\n",
			expected: cause.BootTypeNone,
		},
		{
			name:     "unrelated boot type value",
			cmdline:  "SONIC_BOOT_TYPE=cold quiet\n",
			expected: cause.BootTypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.cmdline)
			got, err := NewProbe(cfg).Detect(context.Background())
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectMissingCmdline(t *testing.T) {
	cfg := testConfig(t, "")

	got, err := NewProbe(cfg).Detect(context.Background())
	if err != nil {
		t.Fatalf("missing cmdline must not be an error, got: %v", err)
	}
	if got != cause.BootTypeNone {
		t.Errorf("Detect() = %q, want no signal", got)
	}
}

func TestDetectCanceledContext(t *testing.T) {
	cfg := testConfig(t, "SONIC_BOOT_TYPE=warm\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProbe(cfg).Detect(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
