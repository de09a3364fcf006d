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

import "sync"

// captureQueue is a FIFO of captured records. The mutex is held only for
// the duration of the individual operation, never across a handler call,
// so appends cannot deadlock even if draining code logs. The queue is
// unbounded; nothing is evicted.
type captureQueue struct {
	mu      sync.Mutex
	records []Record
}

// push appends a record to the back of the queue.
func (q *captureQueue) push(r Record) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.records = append(q.records, r)
}

// popFront removes and returns the oldest record, reporting false when the
// queue is empty.
func (q *captureQueue) popFront() (Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.records) == 0 {
		return Record{}, false
	}
	r := q.records[0]
	// Clear the slot so the backing array does not pin the record.
	q.records[0] = Record{}
	if len(q.records) == 1 {
		q.records = nil
	} else {
		q.records = q.records[1:]
	}
	return r, true
}

// len returns the current queue size.
func (q *captureQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// The process-wide queue every sink and every Handle shares, created on
// first use. All shared state lives behind this one accessor.
var (
	eventsOnce sync.Once
	eventsQ    *captureQueue
)

// events returns the shared capture queue, initializing it exactly once.
func events() *captureQueue {
	eventsOnce.Do(func() {
		eventsQ = &captureQueue{}
	})
	return eventsQ
}
