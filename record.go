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
	"maps"
	"slices"
	"strings"
)

// Field is one rendered key-value pair attached to a [Record].
type Field struct {
	Key   string
	Value string
}

// Record is an immutable snapshot of one captured log event: the rendered
// message body, the severity, the origin target, and the rendered
// structured fields. Two records are equal when all four parts are equal;
// use [Record.Equal].
type Record struct {
	args      string
	level     Level
	target    string
	keyValues map[string]string
}

// newRecord builds a Record, taking ownership of keyValues.
func newRecord(args string, level Level, target string, keyValues map[string]string) Record {
	return Record{args: args, level: level, target: target, keyValues: keyValues}
}

// Args returns the rendered message body, exactly as it was logged.
func (r Record) Args() string { return r.args }

// Level returns the severity the record was logged at.
func (r Record) Level() Level { return r.level }

// Target returns the record's origin tag: the value of a "target"
// attribute when the call site set one, otherwise the import path of the
// package the log call came from, or "" when neither is known.
func (r Record) Target() string { return r.target }

// KeyValues returns the record's structured fields sorted by key. The
// slice is a copy; mutating it leaves the record untouched.
//
// Values carry each field's own textual rendering. String values keep
// their quotes, so a field logged as "blue" comes back as `"blue"`;
// numeric and boolean values render bare.
func (r Record) KeyValues() []Field {
	fields := make([]Field, 0, len(r.keyValues))
	for key, value := range r.keyValues {
		fields = append(fields, Field{Key: key, Value: value})
	}
	slices.SortFunc(fields, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fields
}

// Field looks up one structured field by key, returning its rendered value
// and whether the key is present.
func (r Record) Field(key string) (string, bool) {
	value, ok := r.keyValues[key]
	return value, ok
}

// Equal reports structural equality: same message, level, target, and
// fields.
func (r Record) Equal(other Record) bool {
	return r.args == other.args &&
		r.level == other.level &&
		r.target == other.target &&
		maps.Equal(r.keyValues, other.keyValues)
}

// String renders the record on one line for debugging output, fields
// sorted by key:
//
//	INFO rivaas.dev/logtest: painting [coats=2 color="blue"]
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.level.String())
	if r.target != "" {
		b.WriteByte(' ')
		b.WriteString(r.target)
	}
	b.WriteString(": ")
	b.WriteString(r.args)
	if len(r.keyValues) > 0 {
		b.WriteString(" [")
		for i, f := range r.KeyValues() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.Key)
			b.WriteByte('=')
			b.WriteString(f.Value)
		}
		b.WriteByte(']')
	}
	return b.String()
}
