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

// Package jsonbridge captures line-delimited JSON log streams into the
// logtest queue. Any logger that writes one JSON object per line can be
// pointed at a [Writer]; zerolog is the usual case, and slog's JSONHandler
// output round-trips too:
//
//	logger := zerolog.New(jsonbridge.NewWriter())
//	h := logtest.Start()
//
//	logger.Info().Str("color", "blue").Msg("painted")
//
//	rec, _ := h.Pop()
//	// rec.Args() == "painted"
package jsonbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rivaas.dev/logtest"
)

// ErrInvalidLine is wrapped by [Writer.Write] and [Writer.Flush] when a
// completed line is not a JSON object or carries an unknown level name.
// Well-formed JSON-line loggers never trigger it; seeing it in a test
// almost always means something other than a JSON logger is writing to
// the bridge.
var ErrInvalidLine = errors.New("jsonbridge: line is not a JSON log record")

// Writer is an io.Writer that parses newline-delimited JSON log records
// and feeds them into the capture queue.
//
// Recognized keys: "msg" or "message" carries the message body; "level"
// the severity (parsed with [logtest.ParseLevel], absent defaults to
// INFO); "logger" or "target" the record's target. "time" and "ts" are
// dropped, since captured records carry no timestamp. Every other key
// becomes a field, nested objects flattening into dot-joined keys the
// way slog groups do.
type Writer struct {
	mu      sync.Mutex
	pending []byte
	handler slog.Handler
}

// NewWriter returns a Writer feeding the shared capture queue.
func NewWriter() *Writer {
	return &Writer{handler: logtest.NewHandler()}
}

// Write buffers p and captures one record per completed
// newline-terminated line. A partial trailing line stays buffered for the
// next Write. On a malformed line the error is returned and the lines
// after it stay buffered.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		nl := bytes.IndexByte(w.pending, '\n')
		if nl < 0 {
			return len(p), nil
		}
		line := w.pending[:nl]
		w.pending = w.pending[nl+1:]
		if err := w.capture(line); err != nil {
			return len(p), err
		}
	}
}

// Flush captures a trailing line that was written without a final
// newline. Loggers that terminate every record do not need it.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := w.pending
	w.pending = nil
	return w.capture(line)
}

func (w *Writer) capture(line []byte) error {
	if len(bytes.TrimSpace(line)) == 0 {
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal(line, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}

	msg := ""
	level := logtest.LevelInfo
	target := ""
	attrs := make([]slog.Attr, 0, len(payload))
	for key, value := range payload {
		switch key {
		case "msg", "message":
			msg, _ = value.(string)
		case "level":
			text, _ := value.(string)
			parsed, err := logtest.ParseLevel(text)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidLine, err)
			}
			level = parsed
		case "logger", "target":
			target, _ = value.(string)
		case "time", "ts":
			// Captured records carry no timestamp.
		default:
			attrs = appendAttrs(attrs, key, value)
		}
	}

	rec := slog.NewRecord(time.Time{}, level.Level(), msg, 0)
	if target != "" {
		rec.AddAttrs(slog.String(logtest.TargetKey, target))
	}
	rec.AddAttrs(attrs...)
	return w.handler.Handle(context.Background(), rec)
}

// appendAttrs converts one decoded JSON value, flattening nested objects
// with dot-joined keys.
func appendAttrs(attrs []slog.Attr, key string, value any) []slog.Attr {
	nested, ok := value.(map[string]any)
	if !ok {
		return append(attrs, slog.Any(key, value))
	}
	for k, v := range nested {
		attrs = appendAttrs(attrs, key+"."+k, v)
	}
	return attrs
}
