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
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity attached to a captured [Record].
//
// Levels order by numeric severity: LevelTrace < LevelDebug < LevelInfo <
// LevelWarn < LevelError, most verbose first. The type converts directly
// to and from [slog.Level]; the extra trace severity sits below slog's
// named range.
type Level slog.Level

const (
	// LevelTrace marks finer-grained diagnostics than LevelDebug. slog has
	// no name this low; emit trace records with
	//
	//	slog.Log(ctx, logtest.LevelTrace.Level(), "entering handler")
	LevelTrace Level = Level(slog.LevelDebug) - 4

	// LevelDebug corresponds to [slog.LevelDebug].
	LevelDebug Level = Level(slog.LevelDebug)

	// LevelInfo corresponds to [slog.LevelInfo]. It is the level the
	// legacy log package's captured output carries.
	LevelInfo Level = Level(slog.LevelInfo)

	// LevelWarn corresponds to [slog.LevelWarn].
	LevelWarn Level = Level(slog.LevelWarn)

	// LevelError corresponds to [slog.LevelError].
	LevelError Level = Level(slog.LevelError)
)

// Level returns the severity as a [slog.Level], satisfying [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// String names the level. The five defined levels render as TRACE, DEBUG,
// INFO, WARN, and ERROR; any other value renders as the nearest lower name
// plus the numeric offset, e.g. "TRACE+1" for -7.
func (l Level) String() string {
	str := func(base string, offset Level) string {
		if offset == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, offset)
	}

	switch {
	case l < LevelDebug:
		return str("TRACE", l-LevelTrace)
	case l < LevelInfo:
		return str("DEBUG", l-LevelDebug)
	case l < LevelWarn:
		return str("INFO", l-LevelInfo)
	case l < LevelError:
		return str("WARN", l-LevelWarn)
	default:
		return str("ERROR", l-LevelError)
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and folds the names other logging ecosystems use: "warning" parses as
// LevelWarn, "fatal" and "panic" as LevelError. Offset forms produced by
// [Level.String], such as "TRACE+1", are not parsed.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "fatal", "panic":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logtest: unknown level %q", s)
	}
}
