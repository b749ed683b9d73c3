/*
Copyright (c) OpenCensus Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package telemetry tracks the client's own send/fail/latency counters.
// This is purely diagnostic: it never changes whether a send reports
// success or failure to the caller, and the hot send path in
// internal/frame does not import it — the session records telemetry
// around the call, not inside it.
package telemetry

import (
	"sync"
	"sync/atomic"

	"github.com/eclesh/welford"
)

// Counters is a process-wide set of send counters, modeled on the
// counters map fbclock/stats keeps for its own daemon.
type Counters struct {
	attempted uint64
	sent      uint64
	failed    uint64
	bytes     uint64

	mu      sync.Mutex
	latency *welford.Stats
}

// New returns a zeroed Counters instance.
func New() *Counters {
	return &Counters{latency: welford.New()}
}

// RecordAttempt records one dispatcher call that reached the frame writer.
func (c *Counters) RecordAttempt() {
	atomic.AddUint64(&c.attempted, 1)
}

// RecordResult records the outcome of a Send call: whether it succeeded,
// how many payload bytes the frame carried (the session passes the payload
// length, not the full frame length), and how long the send took. The byte
// count is added whether or not the send succeeded.
func (c *Counters) RecordResult(ok bool, frameBytes int, latencyMicros float64) {
	if ok {
		atomic.AddUint64(&c.sent, 1)
	} else {
		atomic.AddUint64(&c.failed, 1)
	}
	atomic.AddUint64(&c.bytes, uint64(frameBytes))

	c.mu.Lock()
	c.latency.Add(latencyMicros)
	c.mu.Unlock()
}

// Snapshot is a point-in-time, independent copy of the counters — nothing
// sent to the daemon depends on it.
type Snapshot struct {
	Attempted        uint64
	Sent             uint64
	Failed           uint64
	Bytes            uint64
	LatencyMeanMicro float64
	LatencyStdMicro  float64
}

// Snapshot returns a copy of the current counters.
func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	mean, std := c.latency.Mean(), c.latency.Stddev()
	c.mu.Unlock()
	return Snapshot{
		Attempted:        atomic.LoadUint64(&c.attempted),
		Sent:             atomic.LoadUint64(&c.sent),
		Failed:           atomic.LoadUint64(&c.failed),
		Bytes:            atomic.LoadUint64(&c.bytes),
		LatencyMeanMicro: mean,
		LatencyStdMicro:  std,
	}
}
