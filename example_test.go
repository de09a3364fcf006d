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

package logtest_test

import (
	"fmt"
	"log/slog"

	"rivaas.dev/logtest"
)

// Captured records carry no timestamps, so example output is exact.

func ExampleStart() {
	h := logtest.Start()

	slog.Info("hello")
	slog.Info("world")

	for {
		rec, ok := h.Pop()
		if !ok {
			break
		}
		fmt.Println(rec.Args())
	}
	// Output:
	// hello
	// world
}

func ExampleHandle_Pop() {
	h := logtest.Start()

	slog.Warn("disk almost full", "free_mb", 512)

	rec, ok := h.Pop()
	fmt.Println(ok, rec.Level(), rec.Args())
	// Output:
	// true WARN disk almost full
}

func ExampleRecord_KeyValues() {
	h := logtest.Start()

	slog.Info("painting", "color", "blue", "coats", 2)

	rec, _ := h.Pop()
	for _, f := range rec.KeyValues() {
		fmt.Printf("%s=%s\n", f.Key, f.Value)
	}
	// Output:
	// coats=2
	// color="blue"
}

func ExampleRecord_String() {
	h := logtest.Start()

	slog.Info("painting", "target", "paint", "color", "blue")

	rec, _ := h.Pop()
	fmt.Println(rec)
	// Output:
	// INFO paint: painting [color="blue"]
}
