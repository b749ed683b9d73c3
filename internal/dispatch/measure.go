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

package dispatch

import "github.com/census-instrumentation/oc-daemon-client/internal/wire"

// EncodeMeasureCreate builds the MSG_MEASURE_CREATE payload: one value-type
// tag byte, then three length-prefixed strings (name, description, unit).
func EncodeMeasureCreate(m Measure) []byte {
	buf := make([]byte, 0, 16+len(m.Name())+len(m.Description())+len(m.Unit()))
	buf = append(buf, byte(m.ValueType()))
	buf = wire.AppendString(buf, m.Name())
	buf = wire.AppendString(buf, m.Description())
	buf = wire.AppendString(buf, m.Unit())
	return buf
}
