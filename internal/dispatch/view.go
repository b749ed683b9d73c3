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

// AggregationDistribution is the wire type code that carries bucket
// boundaries alongside the aggregation.
const AggregationDistribution int64 = 3

// EncodeReportingPeriod builds the MSG_VIEW_REPORTING_PERIOD payload: a
// single float naming the period in seconds. The <1.0 rejection happens at
// the API boundary, not here — this always encodes whatever it is given.
func EncodeReportingPeriod(seconds float64, width wire.Width) []byte {
	return wire.AppendFloat(nil, seconds, width)
}

// EncodeViewRegister builds the MSG_VIEW_REGISTER payload for views.
//
// Bucket boundaries are written in whatever order Aggregation.Buckets()
// returns them; monotonicity is not enforced here, matching upstream
// behavior — a non-monotonic distribution is the caller's bug, not
// something this encoder silently repairs.
func EncodeViewRegister(views []View, width wire.Width) []byte {
	buf := wire.AppendVarint(nil, int64(len(views)))
	for _, v := range views {
		buf = wire.AppendString(buf, v.Name())
		buf = wire.AppendString(buf, v.Description())

		keys := v.TagKeys()
		buf = wire.AppendVarint(buf, int64(len(keys)))
		for _, k := range keys {
			buf = wire.AppendString(buf, k)
		}

		buf = wire.AppendString(buf, v.Measure().Name())

		agg := v.Aggregation()
		buf = wire.AppendVarint(buf, agg.TypeCode())
		if agg.TypeCode() == AggregationDistribution {
			buckets := agg.Buckets()
			buf = wire.AppendVarint(buf, int64(len(buckets)))
			for _, b := range buckets {
				buf = wire.AppendFloat(buf, b, width)
			}
		}
	}
	return buf
}

// EncodeViewUnregister builds the MSG_VIEW_UNREGISTER payload: a varint
// count followed by each view's name.
func EncodeViewUnregister(names []string) []byte {
	buf := wire.AppendVarint(nil, int64(len(names)))
	for _, n := range names {
		buf = wire.AppendString(buf, n)
	}
	return buf
}
