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

package frame

import (
	"time"

	"github.com/census-instrumentation/oc-daemon-client/internal/transport"
	"github.com/census-instrumentation/oc-daemon-client/internal/wire"
)

// Sender delivers one assembled frame. It is the single virtual call the
// session's dispatchers go through, so the bypass/direct branching never
// leaks past this boundary.
type Sender interface {
	Send(h Header, payload []byte) bool
}

// Extension is implemented by a co-resident native extension capable of
// delivering frames on the client's behalf. When present, the transport
// handle is never opened and every Sender.Send call delegates here.
type Extension interface {
	DeliverFrame(msgType byte, seq, processID, threadID uint64, startTime time.Time, payload []byte) bool
}

// DirectSender writes frames through the transport itself, using Marshal
// and Send from this package.
type DirectSender struct {
	Conn   transport.Conn
	Width  wire.Width
	Budget time.Duration

	scratch []byte
}

// Send implements Sender.
func (d *DirectSender) Send(h Header, payload []byte) bool {
	d.scratch = Marshal(d.scratch[:0], h, d.Width, payload)
	return Send(d.Conn, d.scratch, d.Budget)
}

// ExtensionSender hands the type byte and payload to a native extension and
// trusts it to deliver them; the frame writer is skipped entirely.
type ExtensionSender struct {
	Extension Extension
}

// Send implements Sender.
func (e *ExtensionSender) Send(h Header, payload []byte) bool {
	return e.Extension.DeliverFrame(h.Type, h.Seq, h.ProcessID, h.ThreadID, h.StartTime, payload)
}
