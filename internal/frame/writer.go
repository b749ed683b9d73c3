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

// Package frame assembles and sends the daemon's wire frames: a four-byte
// resync sentinel, a header of varint fields, and a length-prefixed
// payload, written to the transport within a hard time budget.
package frame

import (
	"time"

	"github.com/census-instrumentation/oc-daemon-client/internal/transport"
	"github.com/census-instrumentation/oc-daemon-client/internal/wire"
)

// StartOfMsg is the four-byte resync sentinel every frame begins with.
var StartOfMsg = [4]byte{0x00, 0x00, 0x00, 0x00}

// Header carries the per-frame envelope fields that precede the payload.
type Header struct {
	Type      byte
	Seq       uint64
	ProcessID uint64
	ThreadID  uint64
	StartTime time.Time
}

// Marshal appends the full wire frame (sentinel, header, length-prefixed
// payload) for h and payload to buf using the given float width, returning
// the extended slice. It never blocks or fails — it is pure assembly.
func Marshal(buf []byte, h Header, width wire.Width, payload []byte) []byte {
	buf = append(buf, StartOfMsg[:]...)
	buf = append(buf, h.Type)
	buf = wire.AppendVarintUint64(buf, h.Seq)
	buf = wire.AppendVarintUint64(buf, h.ProcessID)
	buf = wire.AppendVarintUint64(buf, h.ThreadID)
	buf = wire.AppendFloat(buf, startTimeSeconds(h.StartTime), width)
	buf = wire.AppendVarint(buf, int64(len(payload)))
	buf = append(buf, payload...)
	return buf
}

func startTimeSeconds(t time.Time) float64 {
	if t.IsZero() {
		t = time.Now()
	}
	return float64(t.UnixNano()) / 1e9
}

// Send writes buf to conn within budget, starting the deadline clock now.
// It performs repeated non-blocking writes of the remaining tail until
// either the whole buffer is written (success) or the deadline passes or a
// hard write error occurs (failure, no retry). A short write that is not
// itself an error simply continues the loop with the unwritten tail.
func Send(conn transport.Conn, buf []byte, budget time.Duration) bool {
	deadline := time.Now().Add(budget)
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return false
	}
	remaining := buf
	for len(remaining) > 0 {
		if !time.Now().Before(deadline) {
			return false
		}
		n, err := conn.Write(remaining)
		if n > 0 {
			remaining = remaining[n:]
		}
		if err != nil {
			// Deadline exceeded or a non-retriable transport error: stop.
			// Whatever was already written is left on the wire for the
			// receiver's leading-zero resync to recover from.
			return false
		}
		if n == 0 {
			return false
		}
	}
	return true
}
