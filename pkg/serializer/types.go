/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer writes reboot-cause records to files in JSON or YAML.
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatJSON, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close() // Important: close to release the file handle
//	if err := writer.Serialize(ctx, record); err != nil {
//		return err
//	}
//
// This tool reserves standard output for nothing: diagnostics go to the
// system log and data goes to the state files, so there is deliberately no
// stdout sink and no fallback to one.
package serializer

import "context"

// Serializer is an interface for serializing reboot-cause records.
// Implementations can serialize data to various formats such as JSON or YAML.
//
// The context parameter is kept for parity with I/O-bound implementations
// even though file writes here are fast and blocking.
type Serializer interface {
	Serialize(ctx context.Context, record any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
