// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logtest

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TranscriptEntry is one expected record in a transcript file.
//
// Message is required and matched exactly. Level and Target are matched
// only when set. Fields lists rendered values that must be present on the
// record; fields the record carries beyond the listed ones are ignored,
// which keeps transcripts stable when records also pick up correlation
// fields or caller-derived targets.
type TranscriptEntry struct {
	Message string            `yaml:"message"`
	Level   string            `yaml:"level,omitempty"`
	Target  string            `yaml:"target,omitempty"`
	Fields  map[string]string `yaml:"fields,omitempty"`
}

// LoadTranscript reads a YAML transcript: a document holding a sequence
// of entries, in the order the records are expected.
//
//	- message: service starting
//	  level: info
//	- message: listener ready
//	  fields:
//	    port: "8080"
//
// Remember that string field values are stored quoted, so a transcript
// matching a string attr writes the quotes into the fixture:
//
//	fields:
//	  email: '"alice@example.com"'
//
// Structural problems wrap [ErrInvalidTranscript]; read and parse
// failures wrap the underlying error.
func LoadTranscript(path string) ([]TranscriptEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("logtest: reading transcript: %w", err)
	}

	var entries []TranscriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("logtest: parsing transcript %s: %w", path, err)
	}

	for i, e := range entries {
		if e.Message == "" {
			return nil, fmt.Errorf("%w: %s entry %d has no message", ErrInvalidTranscript, path, i)
		}
		if e.Level != "" {
			if _, err := ParseLevel(e.Level); err != nil {
				return nil, fmt.Errorf("%w: %s entry %d: %v", ErrInvalidTranscript, path, i, err)
			}
		}
	}
	return entries, nil
}

// MatchTranscript drains the queue and requires that the newly drained
// records match the transcript at path: same count, same order, each
// record matching its entry per [TranscriptEntry].
func (tc *TestCapture) MatchTranscript(t *testing.T, path string) {
	t.Helper()

	entries, err := LoadTranscript(path)
	require.NoError(t, err)

	records := tc.Drain()
	require.Len(t, records, len(entries), "transcript %s expects %d records", path, len(entries))

	for i, want := range entries {
		rec := records[i]
		require.Equal(t, want.Message, rec.Args(), "record %d message", i)
		if want.Level != "" {
			level, _ := ParseLevel(want.Level)
			require.Equal(t, level, rec.Level(), "record %d level", i)
		}
		if want.Target != "" {
			require.Equal(t, want.Target, rec.Target(), "record %d target", i)
		}
		for key, value := range want.Fields {
			got, ok := rec.Field(key)
			require.True(t, ok, "record %d missing field %q", i, key)
			require.Equal(t, value, got, "record %d field %q", i, key)
		}
	}
}
