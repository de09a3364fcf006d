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

import "errors"

// ErrAlreadyInstalled is returned by [Install] when the capture sink is
// already the process's default logger.
//
// The registration is single-use per process: whichever of [Install] or
// [Start] runs first claims the default-logger slot, and a later explicit
// Install reports this error rather than silently stacking a second sink.
// Use [Start] instead when "already capturing" should be a no-op:
//
//	if err := logtest.Install(); errors.Is(err, logtest.ErrAlreadyInstalled) {
//		// another test entry point installed the sink first
//	}
var ErrAlreadyInstalled = errors.New("logtest: capture sink already installed")

// ErrInvalidTranscript is wrapped by [LoadTranscript] when a transcript
// file parses but is structurally unusable, such as an entry without a
// message or with an unknown level name:
//
//	_, err := logtest.LoadTranscript("testdata/boot.yaml")
//	if errors.Is(err, logtest.ErrInvalidTranscript) {
//		// the fixture needs fixing, not the code under test
//	}
var ErrInvalidTranscript = errors.New("logtest: invalid transcript")
