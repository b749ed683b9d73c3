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

import "time"

type fakeMeasure struct {
	valueType   ValueType
	name        string
	description string
	unit        string
}

func (m fakeMeasure) ValueType() ValueType   { return m.valueType }
func (m fakeMeasure) Name() string           { return m.name }
func (m fakeMeasure) Description() string    { return m.description }
func (m fakeMeasure) Unit() string           { return m.unit }

type fakeMeasurement struct {
	measure Measure
	value   interface{}
}

func (m fakeMeasurement) Measure() Measure    { return m.measure }
func (m fakeMeasurement) Value() interface{}  { return m.value }

type fakeAggregation struct {
	typeCode int64
	buckets  []float64
}

func (a fakeAggregation) TypeCode() int64    { return a.typeCode }
func (a fakeAggregation) Buckets() []float64 { return a.buckets }

type fakeView struct {
	name        string
	description string
	tagKeys     []string
	measure     Measure
	aggregation Aggregation
}

func (v fakeView) Name() string            { return v.name }
func (v fakeView) Description() string     { return v.description }
func (v fakeView) TagKeys() []string       { return v.tagKeys }
func (v fakeView) Measure() Measure        { return v.measure }
func (v fakeView) Aggregation() Aggregation { return v.aggregation }

type fakeSpan struct {
	traceID, spanID, parentSpanID string
	name, kind, stackTrace        string
	start, end                    time.Time
	status                        SpanStatus
}

func (s fakeSpan) TraceID() string                       { return s.traceID }
func (s fakeSpan) SpanID() string                        { return s.spanID }
func (s fakeSpan) ParentSpanID() string                  { return s.parentSpanID }
func (s fakeSpan) Name() string                          { return s.name }
func (s fakeSpan) Kind() string                          { return s.kind }
func (s fakeSpan) StackTrace() string                    { return s.stackTrace }
func (s fakeSpan) StartTime() time.Time                  { return s.start }
func (s fakeSpan) EndTime() time.Time                    { return s.end }
func (s fakeSpan) Status() SpanStatus                    { return s.status }
func (s fakeSpan) Attributes() map[string]interface{}    { return nil }
func (s fakeSpan) TimeEvents() []TimeEvent               { return nil }
func (s fakeSpan) Links() []Link                         { return nil }
func (s fakeSpan) SameProcessAsParentSpan() bool         { return true }
