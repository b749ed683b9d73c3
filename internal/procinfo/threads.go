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

// Package procinfo probes the host process for the per-frame identity
// fields the protocol needs: whether the runtime exposes a meaningful
// per-thread id, and, when it does, the calling thread's id.
package procinfo

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// HasThreadIdentity reports whether the host runtime exposes per-thread
// ids worth sending, probed the same way sptp's sysstats collector reads
// process info: via gopsutil against our own pid.
func HasThreadIdentity() bool {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return false
	}
	n, err := proc.NumThreads()
	if err != nil {
		return false
	}
	return n > 0
}

// CurrentThreadID returns the OS thread id of the calling goroutine's
// current carrier thread, or 0 on platforms without the concept. Because
// the Go runtime can migrate a goroutine between OS threads between calls,
// this is best read as "some thread that ran this call", not a stable
// per-goroutine identity — acceptable here since the protocol only uses it
// as a diagnostic field, not a correctness-bearing one.
func CurrentThreadID() uint64 {
	return currentThreadID()
}
