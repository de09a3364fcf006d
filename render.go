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
	"log/slog"
	"strconv"
	"time"
)

// walkAttr routes one attribute into a record under construction. A
// top-level string attribute under [TargetKey] becomes the record's
// target; group attributes flatten into dot-joined keys (an empty group
// name inlines its members); everything else is rendered into fields,
// last write winning on duplicate keys. Zero attributes are skipped, per
// the slog handler contract.
func walkAttr(fields map[string]string, target *string, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()

	if prefix == "" && a.Key == TargetKey && v.Kind() == slog.KindString {
		*target = v.String()
		return
	}

	if v.Kind() == slog.KindGroup {
		members := v.Group()
		if len(members) == 0 {
			return
		}
		p := prefix
		if a.Key != "" {
			p = joinKey(prefix, a.Key)
		}
		for _, member := range members {
			walkAttr(fields, target, p, member)
		}
		return
	}

	fields[joinKey(prefix, a.Key)] = renderValue(v)
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// renderValue converts a resolved attribute value into the text stored on
// a record. String values are quoted so their rendering is distinguishable
// from the bare text of other kinds; times use RFC 3339; everything else
// renders the way the value itself does.
func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return strconv.Quote(v.String())
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return v.String()
	}
}
