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

// Package logrbridge routes logr-emitted records into the logtest
// capture queue.
//
//	logger := logrbridge.New()
//	h := logtest.Start()
//
//	logger.V(1).Info("reconciling", "object", "default/web")
//
//	rec, _ := h.Pop()
//	// rec.Level() == logtest.LevelDebug
//
// logr has no warning severity and expresses verbosity as V-levels,
// which map onto capture levels as V(0)→INFO, V(1)→DEBUG, and V(2) and
// above→TRACE. Error records capture at ERROR with the error in an
// "error" field. Names accumulated with WithName join with dots and
// become the record's target; unnamed loggers fall back to the call-site
// package.
package logrbridge

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-logr/logr"

	"rivaas.dev/logtest"
)

// New returns a logr logger whose records are captured.
func New() logr.Logger {
	return logr.New(&sink{handler: logtest.NewHandler()})
}

// sink implements [logr.LogSink] over the capture handler. Values bound
// with WithValues live on the handler, so they render once at bind time
// like native slog bound attrs.
type sink struct {
	handler   slog.Handler
	name      string
	callDepth int
}

func (s *sink) Init(info logr.RuntimeInfo) {
	s.callDepth = info.CallDepth
}

// Enabled reports true for every verbosity; the queue keeps everything.
func (s *sink) Enabled(int) bool { return true }

func (s *sink) Info(level int, msg string, kvs ...any) {
	s.emit(levelOf(level), msg, nil, kvs)
}

func (s *sink) Error(err error, msg string, kvs ...any) {
	s.emit(logtest.LevelError, msg, err, kvs)
}

func (s *sink) WithValues(kvs ...any) logr.LogSink {
	clone := *s
	clone.handler = s.handler.WithAttrs(attrsOf(kvs))
	return &clone
}

func (s *sink) WithName(name string) logr.LogSink {
	clone := *s
	if clone.name == "" {
		clone.name = name
	} else {
		clone.name += "." + name
	}
	return &clone
}

func (s *sink) emit(level logtest.Level, msg string, err error, kvs []any) {
	rec := slog.NewRecord(time.Now(), level.Level(), msg, s.caller())
	if s.name != "" {
		rec.AddAttrs(slog.String(logtest.TargetKey, s.name))
	}
	if err != nil {
		rec.AddAttrs(slog.Any("error", err))
	}
	rec.AddAttrs(attrsOf(kvs)...)
	_ = s.handler.Handle(context.Background(), rec)
}

// caller resolves the PC of the code that called into logr, so unnamed
// loggers still get package-path targets. The skip count covers
// runtime.Callers, this function, emit, and the sink method, plus the
// frames logr reported it adds in Init.
func (s *sink) caller() uintptr {
	var pcs [1]uintptr
	if runtime.Callers(s.callDepth+4, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

// attrsOf pairs up logr's flat key/value list. Keys that are not strings
// get the same "!BADKEY" marker slog uses for that mistake; a trailing
// key without a value gets a nil value.
func attrsOf(kvs []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, (len(kvs)+1)/2)
	for i := 0; i < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		var value any
		if i+1 < len(kvs) {
			value = kvs[i+1]
		}
		attrs = append(attrs, slog.Any(key, value))
	}
	return attrs
}

// levelOf maps logr verbosity onto capture levels.
func levelOf(v int) logtest.Level {
	switch {
	case v <= 0:
		return logtest.LevelInfo
	case v == 1:
		return logtest.LevelDebug
	default:
		return logtest.LevelTrace
	}
}
