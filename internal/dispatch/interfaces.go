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

// Package dispatch encodes the six application-level message payloads:
// trace export, measure create, view register/unregister, reporting
// period, and stats record. It consumes the trace/stats object model
// through the narrow accessor contracts below; how spans, measures, views,
// and tags are constructed is an external collaborator's concern.
package dispatch

import "time"

// ValueType discriminates a measure or measurement's concrete numeric
// variant on the wire.
type ValueType byte

// Wire values for ValueType, shared with the protocol's MS_TYPE_* constants.
const (
	ValueTypeInt     ValueType = 0x01
	ValueTypeFloat   ValueType = 0x02
	ValueTypeUnknown ValueType = 0xFF
)

// Measure is a named numeric quantity definition.
type Measure interface {
	ValueType() ValueType
	Name() string
	Description() string
	Unit() string
}

// Aggregation is a rule for combining measurements, identified on the wire
// by a numeric type code. Distribution aggregations additionally expose
// bucket boundaries.
type Aggregation interface {
	TypeCode() int64
	Buckets() []float64
}

// View is a named aggregation over a measure, optionally filtered by tag
// keys.
type View interface {
	Name() string
	Description() string
	TagKeys() []string
	Measure() Measure
	Aggregation() Aggregation
}

// Measurement is a single recorded value of a measure.
type Measurement interface {
	Measure() Measure
	// Value returns the recorded value. Its concrete type must agree with
	// Measure().ValueType(): float64 for ValueTypeFloat, int64 for
	// ValueTypeInt. ValueTypeUnknown measurements carry no value bytes.
	Value() interface{}
}

// Tag is a single key/value label.
type Tag struct {
	Key   string
	Value string
}

// TagContext exposes the tags attached to a recorded measurement.
type TagContext interface {
	Tags() []Tag
}

// Span exposes every field the trace export payload projects to JSON.
type Span interface {
	TraceID() string
	SpanID() string
	ParentSpanID() string
	Name() string
	Kind() string
	StackTrace() string
	StartTime() time.Time
	EndTime() time.Time
	Status() SpanStatus
	Attributes() map[string]interface{}
	TimeEvents() []TimeEvent
	Links() []Link
	SameProcessAsParentSpan() bool
}

// SpanStatus is the projected status field of a span.
type SpanStatus struct {
	Code    int32
	Message string
}

// TimeEvent is a projected timestamped annotation or message event.
type TimeEvent struct {
	Time       time.Time
	Annotation string
	Attributes map[string]interface{}
}

// Link is a projected reference to another span.
type Link struct {
	TraceID string
	SpanID  string
	Type    string
}
