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

// Package zapbridge routes zap log entries into the logtest capture
// queue, so tests of zap-based code assert with the same [logtest.Handle]
// as everything else.
//
//	logger := zapbridge.New()
//	h := logtest.Start()
//
//	logger.Info("deploy finished", zap.String("region", "us-east-1"))
//
//	rec, _ := h.Pop()
//	// rec.Args() == "deploy finished"
//
// Entries are converted into slog records and fed through the capture
// handler, so quoting, group flattening, and target resolution behave
// exactly as they do for native slog output. A zap logger name becomes
// the record's target; unnamed loggers fall back to the call-site package
// when the logger was built with caller annotation.
package zapbridge

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rivaas.dev/logtest"
)

// NewCore returns an always-enabled [zapcore.Core] that appends every
// entry written through it to the shared capture queue. Wrap it into an
// existing logger with zap.WrapCore, or build a fresh one with [New].
func NewCore() zapcore.Core {
	return &core{handler: logtest.NewHandler()}
}

// New returns a zap logger whose output is captured. Caller annotation is
// enabled so records keep call-site package targets the way native slog
// records do.
func New() *zap.Logger {
	return zap.New(NewCore(), zap.AddCaller())
}

// core holds fields accumulated via With alongside the capture handler.
type core struct {
	handler slog.Handler
	fields  []zapcore.Field
}

// Enabled reports true for every level; the queue keeps everything, the
// way the capture sink itself does.
func (c *core) Enabled(zapcore.Level) bool { return true }

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := &core{handler: c.handler}
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

// Write converts the entry and its fields into an slog record and hands
// it to the capture handler. Field values pass through zap's own object
// encoding first, so zap types render the way zap renders them, then
// through the capture rendering, so strings end up quoted like any other
// captured string field.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	rec := slog.NewRecord(ent.Time, levelOf(ent.Level).Level(), ent.Message, ent.Caller.PC)
	if ent.LoggerName != "" {
		rec.AddAttrs(slog.String(logtest.TargetKey, ent.LoggerName))
	}
	rec.AddAttrs(attrsOf("", enc.Fields)...)

	return c.handler.Handle(context.Background(), rec)
}

// Sync is a no-op; the queue is immediately consistent.
func (c *core) Sync() error { return nil }

// attrsOf converts an encoded field map into attrs, flattening the nested
// maps zap namespaces produce into dot-joined keys.
func attrsOf(prefix string, m map[string]any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(m))
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			attrs = append(attrs, attrsOf(key, nested)...)
			continue
		}
		attrs = append(attrs, slog.Any(key, value))
	}
	return attrs
}

// levelOf maps zap severities onto capture levels. DPanic, Panic, and
// Fatal all record as ERROR; zap has nothing below Debug.
func levelOf(l zapcore.Level) logtest.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return logtest.LevelDebug
	case l == zapcore.InfoLevel:
		return logtest.LevelInfo
	case l == zapcore.WarnLevel:
		return logtest.LevelWarn
	default:
		return logtest.LevelError
	}
}
