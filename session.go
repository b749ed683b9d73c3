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

package ocdaemon

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/census-instrumentation/oc-daemon-client/internal/frame"
	"github.com/census-instrumentation/oc-daemon-client/internal/procinfo"
	"github.com/census-instrumentation/oc-daemon-client/internal/telemetry"
	"github.com/census-instrumentation/oc-daemon-client/internal/transport"
	"github.com/census-instrumentation/oc-daemon-client/internal/wire"
)

type state int32

const (
	stateUninitialized state = iota
	stateOpening
	stateReady
	stateClosed
)

// Session is the process-wide singleton holding the transport handle, the
// monotonic sequence counter, and the immutable flags probed at
// construction. At most one Session exists per process for its lifetime.
type Session struct {
	state state // atomic

	mu  sync.Mutex // serializes frame assembly + write + seq increment
	seq uint64

	sender    frame.Sender
	conn      transport.Conn // nil when bypass is active
	width     wire.Width
	hasThread bool
	budget    time.Duration
	pid       uint64

	counters *telemetry.Counters

	shutdownOnce sync.Once
}

var (
	singleton   atomic.Value // holds *Session
	initGroup   singleflight.Group
	extMu       sync.Mutex
	extension   frame.Extension
)

// SetExtension registers a co-resident native extension that will deliver
// frames on this process's behalf instead of this package's own transport.
// It must be called before the first Init call; once the bypass flag is
// set at construction the transport handle is never opened.
func SetExtension(e frame.Extension) {
	extMu.Lock()
	extension = e
	extMu.Unlock()
}

// currentSession returns the existing singleton, or nil before the first
// successful Init.
func currentSession() *Session {
	v := singleton.Load()
	if v == nil {
		return nil
	}
	return v.(*Session)
}

// Init is idempotent: the first call opens the transport, probes the float
// width and thread-identity flag, sends REQ_INIT, and registers the
// shutdown hook. Subsequent calls return the existing Session. Concurrent
// first calls collapse onto a single real handshake via singleflight.
func Init(opts map[string]interface{}) (*Session, error) {
	if s := currentSession(); s != nil {
		return s, nil
	}
	v, err, _ := initGroup.Do("init", func() (interface{}, error) {
		if s := currentSession(); s != nil {
			return s, nil
		}
		s, err := newSession(opts)
		if err != nil {
			return nil, err
		}
		singleton.Store(s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

func newSession(opts map[string]interface{}) (*Session, error) {
	cfg, err := decodeConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		state:     stateOpening,
		width:     wire.ProbeWidth(),
		hasThread: procinfo.HasThreadIdentity(),
		budget:    cfg.sendTimeBudget(),
		pid:       uint64(os.Getpid()),
		counters:  telemetry.New(),
	}

	extMu.Lock()
	ext := extension
	extMu.Unlock()

	if ext != nil {
		s.sender = &frame.ExtensionSender{Extension: ext}
	} else {
		path := cfg.SocketPath
		if useNamedPipe() {
			path = cfg.NamedPipePath
		}
		conn, err := transport.Open(path)
		if err != nil {
			return nil, err
		}
		s.conn = conn
		s.sender = &frame.DirectSender{Conn: conn, Width: s.width, Budget: s.budget}
	}

	short, extended := runtimeVersionStrings()
	payload := []byte{ProtocolVersion}
	payload = wire.AppendString(payload, short)
	payload = wire.AppendString(payload, extended)
	if ok := s.send(MsgReqInit, payload); !ok {
		log.Warn("oc-daemon-client: REQ_INIT frame was not delivered within budget; continuing best-effort")
	}

	atomic.StoreInt32((*int32)(&s.state), int32(stateReady))
	s.installShutdownHook()
	return s, nil
}

// installShutdownHook arms the best-effort teardown path: an explicit
// Shutdown() call, or — since Go has no atexit — a signal handler for the
// common termination signals, mirroring the graceful-shutdown goroutine
// pattern used throughout this codebase's daemons.
func (s *Session) installShutdownHook() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		s.Shutdown()
	}()
}

// Shutdown sends REQ_SHUTDOWN with an empty payload and transitions the
// Session to Closed. It is idempotent, deadline-bounded, and never blocks
// process exit — a failed shutdown send is silently dropped.
func (s *Session) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.send(MsgReqShutdown, nil)
		atomic.StoreInt32((*int32)(&s.state), int32(stateClosed))
	})
}

// ready reports whether the Session will accept new sends.
func (s *Session) ready() bool {
	return state(atomic.LoadInt32((*int32)(&s.state))) == stateReady
}

// send assembles and delivers one frame. The sequence-number increment,
// frame assembly, and the write itself all happen under s.mu as one
// critical section — concurrent callers from a multi-threaded host must
// never interleave bytes from two frames on the wire, and s.sender.Send
// (DirectSender in particular) reuses a scratch buffer that is only safe
// for one assembly at a time.
func (s *Session) send(msgType byte, payload []byte) bool {
	if !s.ready() && msgType != MsgReqInit && msgType != MsgReqShutdown {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	start := time.Now()
	h := frame.Header{
		Type:      msgType,
		Seq:       s.seq,
		ProcessID: s.pid,
		ThreadID:  threadIDFor(s.hasThread),
		StartTime: start,
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("oc-daemon-client: sending frame %s", spew.Sdump(h))
	}

	s.counters.RecordAttempt()
	ok := s.sender.Send(h, payload)
	s.counters.RecordResult(ok, len(payload), float64(time.Since(start).Microseconds()))
	if !ok && log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("oc-daemon-client: frame delivery failed %s", spew.Sdump(h))
	}
	return ok
}

func threadIDFor(hasThread bool) uint64 {
	if !hasThread {
		return 0
	}
	return procinfo.CurrentThreadID()
}

// Telemetry returns a snapshot of this Session's internal send counters.
// It is purely diagnostic.
func (s *Session) Telemetry() telemetry.Snapshot {
	return s.counters.Snapshot()
}

// PrometheusExporter builds an exporter reading this Session's counters.
// Nothing starts an HTTP listener on the caller's behalf; that is left to
// whoever calls this, same as the rest of this codebase's opt-in exporters.
func (s *Session) PrometheusExporter() *telemetry.PrometheusExporter {
	return telemetry.NewPrometheusExporter(s.counters)
}
