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
	"runtime"
	"strings"
)

// useNamedPipe selects the Windows named-pipe transport by a
// case-insensitive prefix match on the platform identifier, exactly as the
// protocol specifies, rather than a hardcoded equality check.
func useNamedPipe() bool {
	return strings.HasPrefix(strings.ToLower(runtime.GOOS), "windows")
}
