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
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCapture drives the capture queue inside a test: it starts capture,
// buffers what it drains, and answers queries over everything drained so
// far, so one helper can be asked several questions about the same burst
// of logs even though draining the queue is destructive.
//
// The queue is process-wide, so tests using a TestCapture must not run in
// parallel with each other, and each test should drain or [TestCapture.Reset]
// before returning so the next test starts empty.
//
//	func TestSignupLogs(t *testing.T) {
//		tc := logtest.NewTestCapture(t)
//
//		signup(db, "alice@example.com")
//
//		tc.AssertLog(t, logtest.LevelInfo, "signup completed", map[string]string{
//			"email": strconv.Quote("alice@example.com"),
//		})
//	}
type TestCapture struct {
	handle  Handle
	drained []Record
}

// NewTestCapture installs the capture sink via [Start] and returns a
// fresh helper.
func NewTestCapture(t *testing.T) *TestCapture {
	t.Helper()
	return &TestCapture{handle: Start()}
}

// Handle returns the underlying queue handle for direct Pop, Len, and
// IsEmpty access.
func (tc *TestCapture) Handle() Handle {
	return tc.handle
}

// Drain pops every queued record into the helper's buffer and returns
// just the records this call drained, oldest first. Use it to scope a
// query to "what the code under test logged since the last drain".
func (tc *TestCapture) Drain() []Record {
	start := len(tc.drained)
	for {
		rec, ok := tc.handle.Pop()
		if !ok {
			break
		}
		tc.drained = append(tc.drained, rec)
	}
	return tc.drained[start:]
}

// Logs drains the queue and returns every record captured since the
// helper was created or last [TestCapture.Reset], oldest first. The slice
// is the helper's buffer; treat it as read-only.
func (tc *TestCapture) Logs() []Record {
	tc.Drain()
	return tc.drained
}

// LastLog drains the queue and returns the most recent record, reporting
// false when nothing has been captured.
func (tc *TestCapture) LastLog() (Record, bool) {
	logs := tc.Logs()
	if len(logs) == 0 {
		return Record{}, false
	}
	return logs[len(logs)-1], true
}

// ContainsLog drains the queue and reports whether any captured record's
// message equals msg.
func (tc *TestCapture) ContainsLog(msg string) bool {
	for _, rec := range tc.Logs() {
		if rec.Args() == msg {
			return true
		}
	}
	return false
}

// ContainsField drains the queue and reports whether any captured record
// carries the field key with the rendered value. String attrs are stored
// quoted, so compare against the quoted form:
//
//	tc.ContainsField("color", strconv.Quote("blue"))
func (tc *TestCapture) ContainsField(key, value string) bool {
	for _, rec := range tc.Logs() {
		if v, ok := rec.Field(key); ok && v == value {
			return true
		}
	}
	return false
}

// CountLevel drains the queue and counts the captured records at exactly
// level.
func (tc *TestCapture) CountLevel(level Level) int {
	n := 0
	for _, rec := range tc.Logs() {
		if rec.Level() == level {
			n++
		}
	}
	return n
}

// Reset discards everything: the helper's buffer and whatever is still
// queued. Call it between scenarios that reuse one helper.
func (tc *TestCapture) Reset() {
	tc.drained = nil
	for {
		if _, ok := tc.handle.Pop(); !ok {
			return
		}
	}
}

// AssertLog drains the queue and requires that some captured record has
// the given level and message and carries every listed field with the
// given rendered value. Fields the record carries beyond the listed ones
// are ignored.
func (tc *TestCapture) AssertLog(t *testing.T, level Level, msg string, fields map[string]string) {
	t.Helper()
	for _, rec := range tc.Logs() {
		if rec.Level() != level || rec.Args() != msg {
			continue
		}
		if hasFields(rec, fields) {
			return
		}
	}
	require.Failf(t, "log not captured", "no %s record with message %q and fields %v", level, msg, fields)
}

func hasFields(rec Record, fields map[string]string) bool {
	for key, want := range fields {
		got, ok := rec.Field(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}
