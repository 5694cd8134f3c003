/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package state

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sonic-net/reboot-cause/pkg/cause"
	"github.com/sonic-net/reboot-cause/pkg/serializer"
)

// genTimeLayout matches the naming convention of the reboot scripts so the
// history directory sorts chronologically.
const genTimeLayout = "2006_01_02_15_04_05"

// Record is the per-boot reboot-cause history entry. User and Time are only
// populated for causes written by the reboot tooling, which embeds the
// requesting user and request time in the cause string.
type Record struct {
	ID      string `json:"id" yaml:"id"`
	Cause   string `json:"cause" yaml:"cause"`
	User    string `json:"user,omitempty" yaml:"user,omitempty"`
	Time    string `json:"time,omitempty" yaml:"time,omitempty"`
	GenTime string `json:"gen_time" yaml:"gen_time"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewRecord builds a history record for the resolved cause, stamped with
// the current generation time.
func NewRecord(resolved string) Record {
	user, reqTime := cause.ParseUserAndTime(resolved)
	return Record{
		ID:      uuid.NewString(),
		Cause:   resolved,
		User:    user,
		Time:    reqTime,
		GenTime: time.Now().UTC().Format(genTimeLayout),
	}
}

// AppendHistory writes the record as a JSON file in the history directory,
// named by its generation time.
func (r *Rotator) AppendHistory(ctx context.Context, rec Record) error {
	name := fmt.Sprintf("reboot-cause-%s.json", rec.GenTime)
	path := filepath.Join(r.cfg.HistoryDir(), name)

	writer, err := serializer.NewFileWriter(serializer.FormatJSON, path)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.Serialize(ctx, rec); err != nil {
		return fmt.Errorf("failed to write history record %q: %w", path, err)
	}
	return nil
}
