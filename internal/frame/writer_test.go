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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/census-instrumentation/oc-daemon-client/internal/wire"
)

// fakeConn lets tests script exactly how many bytes each Write call
// accepts, to exercise the partial-write retry loop and the deadline path.
type fakeConn struct {
	writeSizes []int // bytes accepted per call; 0 ends the script with an error
	err        error
	calls      int
	written    []byte
	deadline   time.Time
}

func (f *fakeConn) SetWriteDeadline(t time.Time) error {
	f.deadline = t
	return nil
}

func (f *fakeConn) Write(p []byte) (int, error) {
	if f.calls >= len(f.writeSizes) {
		if f.err != nil {
			return 0, f.err
		}
		f.written = append(f.written, p...)
		return len(p), nil
	}
	n := f.writeSizes[f.calls]
	f.calls++
	if n > len(p) {
		n = len(p)
	}
	f.written = append(f.written, p[:n]...)
	if n == 0 {
		if f.err == nil {
			f.err = errors.New("fakeConn: zero-length write with no error configured")
		}
		return 0, f.err
	}
	return n, nil
}

func (f *fakeConn) Close() error { return nil }

func Test_Marshal_FrameLayout(t *testing.T) {
	h := Header{Type: 0x2C, Seq: 1, ProcessID: 42, ThreadID: 0, StartTime: time.Unix(100, 0)}
	payload := []byte{0xAA, 0xBB}
	buf := Marshal(nil, h, wire.Width64, payload)

	require.Equal(t, StartOfMsg[:], buf[:4])
	require.Equal(t, byte(0x2C), buf[4])

	rest := buf[5:]
	seq, n := wire.ReadVarint(rest)
	require.Equal(t, uint64(1), seq)
	rest = rest[n:]
	pid, n := wire.ReadVarint(rest)
	require.Equal(t, uint64(42), pid)
	rest = rest[n:]
	tid, n := wire.ReadVarint(rest)
	require.Equal(t, uint64(0), tid)
	rest = rest[n:]

	_, _, ok := wire.ReadFloat(rest)
	require.True(t, ok)
	rest = rest[wire.OnWireSize:]

	msgLen, n := wire.ReadVarint(rest)
	require.Equal(t, uint64(len(payload)), msgLen)
	rest = rest[n:]
	require.Equal(t, payload, rest)
}

func Test_Send_WholeBufferWrittenInOneShot(t *testing.T) {
	conn := &fakeConn{}
	ok := Send(conn, []byte("hello"), 50*time.Millisecond)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), conn.written)
}

func Test_Send_RetriesPartialWrites(t *testing.T) {
	conn := &fakeConn{writeSizes: []int{2, 3}}
	ok := Send(conn, []byte("hello"), 50*time.Millisecond)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), conn.written)
	require.Equal(t, 2, conn.calls)
}

func Test_Send_ZeroWriteFails(t *testing.T) {
	conn := &fakeConn{writeSizes: []int{0}}
	ok := Send(conn, []byte("hello"), 50*time.Millisecond)
	require.False(t, ok)
}

func Test_Send_HardErrorFailsWithoutRetry(t *testing.T) {
	conn := &fakeConn{writeSizes: []int{2}, err: errors.New("broken pipe")}
	ok := Send(conn, []byte("hello"), 50*time.Millisecond)
	require.False(t, ok)
	require.Equal(t, 1, conn.calls)
}

func Test_Send_ExpiredDeadlineFailsBeforeWriting(t *testing.T) {
	conn := &fakeConn{}
	ok := Send(conn, []byte("hello"), -1*time.Millisecond)
	require.False(t, ok)
}
