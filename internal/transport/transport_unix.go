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

//go:build !windows

package transport

import "net"

// openPlatform dials a persistent Unix domain stream socket at path (or
// DefaultUnixSocketPath). *net.UnixConn already satisfies Conn — Go keeps
// the underlying file descriptor in non-blocking mode and integrates
// SetWriteDeadline with the runtime poller, so no extra wrapping is
// needed. This mirrors the dial pattern fbclock's ptp4l socket fetcher
// uses for its own Unix socket, just in stream rather than datagram mode.
func openPlatform(path string) (Conn, error) {
	if path == "" {
		path = DefaultUnixSocketPath
	}
	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUnix("unix", nil, addr)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
