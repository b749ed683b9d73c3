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

	version "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
)

// runtimeVersionStrings returns the host runtime version string and an
// extended variant, both sent verbatim in REQ_INIT's payload. The short
// form is validated with go-version purely for a diagnostic log line —
// an unparseable string is still sent as-is, never rejected.
func runtimeVersionStrings() (short, extended string) {
	short = strings.TrimPrefix(runtime.Version(), "go")
	extended = runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH

	if _, err := version.NewVersion(short); err != nil {
		log.Debugf("host runtime version %q does not parse as semver: %v", short, err)
	}
	return short, extended
}
