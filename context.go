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

	"go.opentelemetry.io/otel/trace"
)

// Correlation field keys attached to records captured inside an active
// span. Values are the raw hex identifiers, not quoted the way string
// attrs are, so tests can compare them against SpanContext values
// directly.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// spanFields extracts correlation fields from ctx: records logged through
// a context carrying a valid span pick up trace_id and span_id. Explicit
// attrs under the same keys take precedence over these.
func spanFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return nil
	}
	return []Field{
		{Key: fieldTraceID, Value: sc.TraceID().String()},
		{Key: fieldSpanID, Value: sc.SpanID().String()},
	}
}
