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
	"context"
	"log"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/logtest"
)

// The capture queue is process-wide, so the tests in this package run
// serially and each drains everything it logs before returning.

func drain(h logtest.Handle) []logtest.Record {
	var recs []logtest.Record
	for {
		rec, ok := h.Pop()
		if !ok {
			return recs
		}
		recs = append(recs, rec)
	}
}

func TestStartCapturesInOrder(t *testing.T) {
	h := logtest.Start()

	slog.Info("hello")
	slog.Info("world")

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "hello", rec.Args())

	rec, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "world", rec.Args())

	_, ok = h.Pop()
	assert.False(t, ok)
	assert.True(t, h.IsEmpty())
}

func TestStartHandlesShareOneQueue(t *testing.T) {
	h1 := logtest.Start()
	h2 := logtest.Start()

	slog.Info("broadcast")

	rec, ok := h2.Pop()
	require.True(t, ok)
	assert.Equal(t, "broadcast", rec.Args())
	assert.True(t, h1.IsEmpty(), "a record popped through one handle is gone from all")
}

func TestInstallAfterStart(t *testing.T) {
	logtest.Start()

	err := logtest.Install()
	require.Error(t, err)
	assert.ErrorIs(t, err, logtest.ErrAlreadyInstalled)
	assert.True(t, logtest.Installed())
}

func TestHandleLen(t *testing.T) {
	h := logtest.Start()
	require.True(t, h.IsEmpty())

	slog.Info("one")
	slog.Info("two")

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.IsEmpty())

	drain(h)
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.IsEmpty())
}

func TestMessageRoundTrip(t *testing.T) {
	h := logtest.Start()

	msg := `rendered upstream: 3 retries, 100% "failed"`
	slog.Info(msg)

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, msg, rec.Args())
}

func TestStringFieldsKeepQuotes(t *testing.T) {
	h := logtest.Start()

	slog.Info("painting", "color", "blue", "coats", 2)

	rec, ok := h.Pop()
	require.True(t, ok)
	want := []logtest.Field{
		{Key: "coats", Value: "2"},
		{Key: "color", Value: `"blue"`},
	}
	assert.Equal(t, want, rec.KeyValues())

	_, ok = h.Pop()
	require.False(t, ok)
}

func TestLevelFidelity(t *testing.T) {
	h := logtest.Start()
	ctx := context.Background()

	slog.Log(ctx, logtest.LevelTrace.Level(), "tracing")
	slog.Debug("debugging")
	slog.Info("informing")
	slog.Warn("warning")
	slog.Error("erroring")

	recs := drain(h)
	require.Len(t, recs, 5)
	want := []logtest.Level{
		logtest.LevelTrace,
		logtest.LevelDebug,
		logtest.LevelInfo,
		logtest.LevelWarn,
		logtest.LevelError,
	}
	for i, rec := range recs {
		assert.Equal(t, want[i], rec.Level(), "record %d (%s)", i, rec.Args())
	}
}

func TestTargetAttributeAndFallback(t *testing.T) {
	h := logtest.Start()

	slog.Info("explicit", "target", "my-app")
	slog.Info("implicit")

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "my-app", rec.Target())
	_, present := rec.Field("target")
	assert.False(t, present, "promoted target must not stay a field")

	rec, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "rivaas.dev/logtest_test", rec.Target())
}

func TestLegacyLogCapture(t *testing.T) {
	h := logtest.Start()

	log.Printf("legacy plumbing %d", 7)

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "legacy plumbing 7", rec.Args())
	assert.Equal(t, logtest.LevelInfo, rec.Level())

	_, ok = h.Pop()
	require.False(t, ok)
}

func TestNewHandlerFeedsSharedQueue(t *testing.T) {
	h := logtest.Start()
	logger := slog.New(logtest.NewHandler())

	logger.Info("via local logger", "component", "worker")

	rec, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "via local logger", rec.Args())
	component, ok := rec.Field("component")
	require.True(t, ok)
	assert.Equal(t, `"worker"`, component)

	_, ok = h.Pop()
	require.False(t, ok)
}

func TestConcurrentPairOrdering(t *testing.T) {
	h := logtest.Start()

	var wg sync.WaitGroup
	for _, who := range []string{"aurora", "borealis"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.Info("step one", "who", who)
			slog.Info("step two", "who", who)
		}()
	}
	wg.Wait()

	recs := drain(h)
	require.Len(t, recs, 4)

	position := make(map[string]int, 4)
	for i, rec := range recs {
		who, ok := rec.Field("who")
		require.True(t, ok)
		position[who+"/"+rec.Args()] = i
	}
	require.Len(t, position, 4)
	for _, who := range []string{`"aurora"`, `"borealis"`} {
		assert.Less(t, position[who+"/step one"], position[who+"/step two"],
			"each goroutine's records keep their relative order")
	}
}
