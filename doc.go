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

// Package logtest captures log output so tests can assert on it.
//
// Installing the capture sink makes it the process's default slog handler.
// Every record logged afterward, at any level and from any goroutine, is
// normalized into an immutable [Record] and appended to one process-wide
// FIFO queue that tests drain through a [Handle]. Nothing is written to a
// console or file; the queue is the only output.
//
// # Quick Start
//
//	func TestServiceLogsStartup(t *testing.T) {
//		h := logtest.Start()
//
//		service.Boot()
//
//		rec, ok := h.Pop()
//		if !ok {
//			t.Fatal("no log captured")
//		}
//		if rec.Args() != "service starting" {
//			t.Fatalf("unexpected message %q", rec.Args())
//		}
//	}
//
// [Start] is safe to call from every test: only the first call installs the
// sink, later calls hand out another view onto the same queue. The explicit
// [Install] form instead fails with [ErrAlreadyInstalled] once a sink is
// registered. There is no uninstall; installation lasts for the process.
//
// # Capture Model
//
// Records are queued in the order their appends win the queue's lock, which
// preserves each goroutine's own emission order; interleaving between
// goroutines is whatever the scheduler produced. A record carries four
// things: the rendered message ([Record.Args]), the severity
// ([Record.Level], including [LevelTrace] below debug), the origin
// ([Record.Target]), and the rendered structured fields
// ([Record.KeyValues]).
//
// Draining is consuming: [Handle.Pop] removes the oldest record and reports
// false when the queue is empty, so a full drain is
//
//	for {
//		rec, ok := h.Pop()
//		if !ok {
//			break
//		}
//		// assert on rec
//	}
//
// # Structured Fields
//
// Field values keep the rendering of the value that was logged: strings stay
// quoted, numbers and booleans render bare, durations and times use their
// own formats, errors render as their message.
//
//	slog.Info("painting", "color", "blue", "coats", 2)
//
// captures the fields ("coats", "2") and ("color", "\"blue\""). Group
// attributes flatten into dotted keys, so "req" wrapping "method" becomes
// "req.method".
//
// # Targets
//
// A record's target names where it came from. A top-level string attribute
// under [TargetKey] sets it explicitly; otherwise the sink falls back to
// the import path of the package containing the logging call site.
// Records logged inside an active OpenTelemetry span additionally carry
// "trace_id" and "span_id" fields with the raw hex identifiers.
//
// # Other Logging Stacks
//
// The legacy log package is captured automatically: slog's default-logger
// registration rewires it, so log.Printf output arrives at [LevelInfo].
// [NewHandler] exposes the sink for locally constructed slog loggers, and
// the zapbridge, logrbridge, and jsonbridge subpackages feed zap, logr,
// and line-delimited JSON streams (such as zerolog's) into the same queue.
//
// # One Queue Per Process
//
// The queue is deliberately global: the sink must stand behind a
// process-wide logging facade, and every Handle sees the same records.
// Tests that capture must therefore not run in parallel with each other,
// and each should drain the queue before it returns so the next test
// starts empty. The package offers no per-test isolation; when tests from
// several packages capture, Go's per-package test binaries already keep
// them apart.
package logtest
