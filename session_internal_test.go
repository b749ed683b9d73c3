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
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// resetForTest clears the process-wide singleton and the registered
// extension so each test gets its own Session. Production code never calls
// this; the real singleton lives for the process lifetime.
func resetForTest() {
	singleton = atomic.Value{}
	initGroup = singleflight.Group{}
	extMu.Lock()
	extension = nil
	extMu.Unlock()
}
