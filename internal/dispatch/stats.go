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

// EncodeStatsRecord builds the MSG_STATS_RECORD payload: a varint count of
// measurements, each as (measure name, value-type tag, value), followed by
// the recorded tag set and then attachments, each its own varint-prefixed
// list of key/value string pairs.
//
// A ValueTypeUnknown measurement writes its type tag but no value bytes —
// receivers must infer the absence from the tag alone. This is called out
// in the protocol notes as a fragile contract; this encoder preserves it
// rather than papering over it.
func EncodeStatsRecord(measurements []Measurement, tags []Tag, attachments []Tag, width wire.Width) []byte {
	buf := wire.AppendVarint(nil, int64(len(measurements)))
	for _, m := range measurements {
		buf = wire.AppendString(buf, m.Measure().Name())
		vt := m.Measure().ValueType()
		buf = append(buf, byte(vt))
		switch vt {
		case ValueTypeInt:
			buf = wire.AppendVarint(buf, toInt64(m.Value()))
		case ValueTypeFloat:
			buf = wire.AppendFloat(buf, toFloat64(m.Value()), width)
		case ValueTypeUnknown:
			// No value bytes by design; see doc comment above.
		}
	}

	buf = wire.AppendVarint(buf, int64(len(tags)))
	for _, t := range tags {
		buf = wire.AppendString(buf, t.Key)
		buf = wire.AppendString(buf, t.Value)
	}

	buf = wire.AppendVarint(buf, int64(len(attachments)))
	for _, a := range attachments {
		buf = wire.AppendString(buf, a.Key)
		buf = wire.AppendString(buf, a.Value)
	}
	return buf
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	default:
		return 0
	}
}
