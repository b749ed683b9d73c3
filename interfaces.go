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

// Package ocdaemon is a client for shipping distributed-tracing spans and
// stats measurements out-of-band from a request-oriented host process to a
// long-lived local daemon, over a length-delimited binary framing protocol
// on a local IPC transport (Unix domain socket on POSIX, named pipe on
// Windows).
//
// The package exposes a process-wide singleton Session reached through
// Init. Every other exported function operates on that singleton.
package ocdaemon

import "github.com/census-instrumentation/oc-daemon-client/internal/dispatch"

// External collaborator types. How these are constructed and populated is
// outside this package's scope — only the accessor contracts below matter.
type (
	// ValueType discriminates a measure or measurement's concrete numeric
	// variant.
	ValueType = dispatch.ValueType

	// Measure is a named numeric quantity definition.
	Measure = dispatch.Measure

	// Aggregation is a rule for combining measurements.
	Aggregation = dispatch.Aggregation

	// View is a named aggregation over a measure.
	View = dispatch.View

	// Measurement is a single recorded value of a measure.
	Measurement = dispatch.Measurement

	// Tag is a single key/value label.
	Tag = dispatch.Tag

	// TagContext exposes the tags attached to a recorded measurement.
	TagContext = dispatch.TagContext

	// Span exposes every field the trace export payload projects.
	Span = dispatch.Span

	// SpanStatus is a span's projected status field.
	SpanStatus = dispatch.SpanStatus

	// TimeEvent is a projected timestamped annotation or message event.
	TimeEvent = dispatch.TimeEvent

	// Link is a projected reference to another span.
	Link = dispatch.Link
)

// Value-type wire tags, re-exported for callers building Measure/Measurement
// implementations.
const (
	ValueTypeInt     = dispatch.ValueTypeInt
	ValueTypeFloat   = dispatch.ValueTypeFloat
	ValueTypeUnknown = dispatch.ValueTypeUnknown
)

// AggregationDistribution is the aggregation type code that carries bucket
// boundaries.
const AggregationDistribution = dispatch.AggregationDistribution
