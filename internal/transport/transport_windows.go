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

//go:build windows

package transport

import (
	"context"

	winio "github.com/Microsoft/go-winio"
)

// openPlatform opens a named pipe at path (or DefaultNamedPipePath) for
// writing. go-winio's pipe connection implements net.Conn, including
// SetWriteDeadline, so it satisfies Conn without adapting.
func openPlatform(path string) (Conn, error) {
	if path == "" {
		path = DefaultNamedPipePath
	}
	conn, err := winio.DialPipeContext(context.Background(), path)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
