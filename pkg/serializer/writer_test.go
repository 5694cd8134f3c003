package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type testRecord struct {
	Cause   string `json:"cause" yaml:"cause"`
	GenTime string `json:"gen_time" yaml:"gen_time"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := testRecord{Cause: "PowerLoss", GenTime: "2026_08_23_10_01_02"}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testRecord{Cause: "Watchdog", GenTime: "2026_08_23_10_01_02"}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	data := testRecord{Cause: "Unknown"}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize should not fail with unknown format (falls back to JSON): %v", err)
	}

	var result testRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, testRecord{}); err == nil {
		t.Fatal("expected context error")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written after cancellation")
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")

	writer, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	data := testRecord{Cause: "PowerLoss"}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var result testRecord
	if err := json.Unmarshal(b, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if result.Cause != "PowerLoss" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestNewFileWriter_EmptyPath(t *testing.T) {
	if _, err := NewFileWriter(FormatJSON, "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestNewFileWriter_UncreatablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "record.json")
	if _, err := NewFileWriter(FormatJSON, path); err == nil {
		t.Fatal("expected error when the parent directory does not exist")
	}
}

func TestFormatIsUnknown(t *testing.T) {
	if FormatJSON.IsUnknown() || FormatYAML.IsUnknown() {
		t.Error("supported formats reported unknown")
	}
	if !Format("table").IsUnknown() {
		t.Error("unsupported format not reported unknown")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 2 {
		t.Errorf("expected 2 supported formats, got %d", len(formats))
	}
}
