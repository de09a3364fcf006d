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
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// TargetKey is the reserved attribute key that names a record's target.
//
// A top-level string attribute under this key is promoted to
// [Record.Target] instead of appearing among the record's fields:
//
//	slog.Info("connected", "target", "billing")
//
// captures a record with Target() == "billing" and no "target" field. The
// promoted value is stored raw, without the quoting applied to string
// fields. Non-string values under this key stay ordinary fields. When no
// target attribute is present, the sink falls back to the import path of
// the package containing the logging call site.
const TargetKey = "target"

// captureHandler is the capture sink: an always-enabled [slog.Handler]
// that normalizes each record and appends it to its queue. It performs no
// I/O and writes nothing anywhere but the queue.
type captureHandler struct {
	events *captureQueue
	target string   // promoted from a bound "target" attr
	fields []Field  // attrs bound via WithAttrs, rendered at bind time
	groups []string // open WithGroup names
}

// NewHandler returns the capture sink as an [slog.Handler] feeding the
// shared queue, for wiring up loggers without touching the process
// default:
//
//	logger := slog.New(logtest.NewHandler())
//
// Records captured this way drain through the same [Handle] values
// [Start] returns. Registering the returned handler as the process
// default yourself bypasses the double-install protection [Install]
// provides.
func NewHandler() slog.Handler {
	return &captureHandler{events: events()}
}

// Enabled reports true for every level. The sink never filters; callers
// decide what to log and the queue keeps all of it.
func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle normalizes r into a [Record] and appends it to the queue.
//
// Fields accumulate in insertion order with last-write-wins: attrs bound
// via WithAttrs first, then span-correlation fields from ctx, then the
// record's own attrs, so an explicit attr always has the final say.
func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	fields := make(map[string]string, len(h.fields)+r.NumAttrs()+2)
	for _, f := range h.fields {
		fields[f.Key] = f.Value
	}
	for _, f := range spanFields(ctx) {
		fields[f.Key] = f.Value
	}

	target := h.target
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		walkAttr(fields, &target, prefix, a)
		return true
	})
	if target == "" {
		target = callerPackage(r.PC)
	}

	h.events.push(newRecord(r.Message, Level(r.Level), target, fields))
	return nil
}

// WithAttrs returns a handler whose future records carry attrs. Values
// are resolved and rendered once, here, not per record.
func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	bound := make(map[string]string, len(attrs))
	prefix := strings.Join(h2.groups, ".")
	for _, a := range attrs {
		walkAttr(bound, &h2.target, prefix, a)
	}
	for key, value := range bound {
		h2.fields = append(h2.fields, Field{Key: key, Value: value})
	}
	return h2
}

// WithGroup returns a handler that qualifies future attr keys with name.
func (h *captureHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

func (h *captureHandler) clone() *captureHandler {
	h2 := &captureHandler{events: h.events, target: h.target}
	h2.fields = make([]Field, len(h.fields))
	copy(h2.fields, h.fields)
	h2.groups = make([]string, len(h.groups))
	copy(h2.groups, h.groups)
	return h2
}

// Flush satisfies the flusher probe logger shutdown paths perform. The
// queue is immediately consistent, so there is nothing to flush.
func (h *captureHandler) Flush() error { return nil }

// callerPackage derives a record's fallback target from its caller PC:
// the import path of the package containing the call site, or "" when the
// record carries no caller information.
func callerPackage(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.Function == "" {
		return ""
	}
	return packageOf(frame.Function)
}

// packageOf trims a fully qualified function name, such as
// "rivaas.dev/logtest.Start" or "main.(*server).run", to its package
// import path.
func packageOf(function string) string {
	slash := strings.LastIndexByte(function, '/')
	dot := strings.IndexByte(function[slash+1:], '.')
	if dot < 0 {
		return function
	}
	return function[:slash+1+dot]
}
