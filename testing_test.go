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

package logtest_test

import (
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/logtest"
)

func TestTestCaptureAssertLog(t *testing.T) {
	tc := logtest.NewTestCapture(t)
	defer tc.Reset()

	slog.Info("signup completed", "email", "alice@example.com", "attempt", 1)

	tc.AssertLog(t, logtest.LevelInfo, "signup completed", map[string]string{
		"email": strconv.Quote("alice@example.com"),
	})
}

func TestTestCaptureQueries(t *testing.T) {
	tc := logtest.NewTestCapture(t)
	defer tc.Reset()

	slog.Info("cache warmed", "entries", 128)
	slog.Warn("cache nearly full")
	slog.Warn("evicting", "count", 16)

	assert.True(t, tc.ContainsLog("cache warmed"))
	assert.False(t, tc.ContainsLog("cache cleared"))
	assert.True(t, tc.ContainsField("entries", "128"))
	assert.True(t, tc.ContainsField("count", "16"))
	assert.False(t, tc.ContainsField("entries", `"128"`), "ints render bare, not quoted")

	assert.Equal(t, 2, tc.CountLevel(logtest.LevelWarn))
	assert.Equal(t, 1, tc.CountLevel(logtest.LevelInfo))
	assert.Equal(t, 0, tc.CountLevel(logtest.LevelError))

	last, ok := tc.LastLog()
	require.True(t, ok)
	assert.Equal(t, "evicting", last.Args())
}

func TestTestCaptureDrainScopes(t *testing.T) {
	tc := logtest.NewTestCapture(t)
	defer tc.Reset()

	slog.Info("first")

	batch := tc.Drain()
	require.Len(t, batch, 1)
	assert.Equal(t, "first", batch[0].Args())

	slog.Info("second")
	slog.Info("third")

	batch = tc.Drain()
	require.Len(t, batch, 2)
	assert.Equal(t, "second", batch[0].Args())
	assert.Equal(t, "third", batch[1].Args())

	// Logs spans every drain since the helper was created.
	assert.Len(t, tc.Logs(), 3)
}

func TestTestCaptureReset(t *testing.T) {
	tc := logtest.NewTestCapture(t)

	slog.Info("before reset")
	require.True(t, tc.ContainsLog("before reset"))

	tc.Reset()

	assert.Empty(t, tc.Logs())
	_, ok := tc.LastLog()
	assert.False(t, ok)
	assert.True(t, tc.Handle().IsEmpty())
}

func TestTestCaptureHandle(t *testing.T) {
	tc := logtest.NewTestCapture(t)
	defer tc.Reset()

	slog.Info("direct")

	rec, ok := tc.Handle().Pop()
	require.True(t, ok)
	assert.Equal(t, "direct", rec.Args())
	assert.True(t, tc.Handle().IsEmpty())
}
