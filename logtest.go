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
	"sync"
)

// install guards the one-time registration of the capture sink as the
// process default logger. The flag, not slog itself, is what makes a
// second explicit Install detectable.
var install struct {
	mu   sync.Mutex
	done bool
}

// Start ensures the capture sink is installed and returns a new [Handle]
// onto the shared queue.
//
// Unlike [Install], Start is safe to call any number of times: only the
// first call performs the registration, later calls just hand out another
// view. Handles are cheap, interchangeable values; a record popped
// through one is gone from all of them.
func Start() Handle {
	install.mu.Lock()
	if !install.done {
		installLocked()
	}
	install.mu.Unlock()
	return Handle{events: events()}
}

// Install registers the capture sink as the process's default logger.
// It is the explicit, single-use form of [Start]: the first call replaces
// the default [slog.Logger] with one backed by the capture handler and
// returns nil; every later call returns [ErrAlreadyInstalled], whether
// the first installation came from Install or Start.
//
// Installation is terminal for the process lifetime; there is no
// uninstall. Because [slog.SetDefault] also rewires the legacy log
// package, log.Printf output is captured too, at [LevelInfo]. The sink
// accepts every level down past [LevelTrace], so nothing needs a
// threshold change to be captured.
func Install() error {
	install.mu.Lock()
	defer install.mu.Unlock()
	if install.done {
		return ErrAlreadyInstalled
	}
	installLocked()
	return nil
}

// Installed reports whether the capture sink is the process's default
// logger.
func Installed() bool {
	install.mu.Lock()
	defer install.mu.Unlock()
	return install.done
}

// installLocked performs the real registration. install.mu must be held.
func installLocked() {
	slog.SetDefault(slog.New(NewHandler()))
	install.done = true
}

// Handle is a consumer of the shared capture queue.
//
// A Handle owns nothing beyond its view onto the queue: every Handle
// returned by [Start] sees and drains the same records, and any number
// may exist at once. The zero Handle is not usable; obtain one from
// Start.
type Handle struct {
	events *captureQueue
}

// Pop removes and returns the oldest captured record. The second result
// is false when the queue is empty; that is the normal end-of-drain
// signal, not a failure:
//
//	for {
//		rec, ok := h.Pop()
//		if !ok {
//			break
//		}
//		// assert on rec
//	}
func (h Handle) Pop() (Record, bool) {
	return h.events.popFront()
}

// Len returns the number of records currently queued.
func (h Handle) Len() int {
	return h.events.len()
}

// IsEmpty reports whether no records are queued.
func (h Handle) IsEmpty() bool {
	return h.Len() == 0
}
