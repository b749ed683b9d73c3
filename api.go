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
	log "github.com/sirupsen/logrus"

	"github.com/census-instrumentation/oc-daemon-client/internal/dispatch"
)

// MinReportingPeriodSeconds is the floor enforced at the API boundary.
// Values below this are rejected without sending a frame.
const MinReportingPeriodSeconds = 1.0

// ExportSpans projects spans to JSON and sends a single MSG_TRACE_EXPORT
// frame. An empty slice is a no-op success; a JSON marshal failure (a span
// of the wrong shape) is reported as a failure, not a panic.
func ExportSpans(spans []Span) bool {
	if len(spans) == 0 {
		return true
	}
	s := currentSession()
	if s == nil {
		return false
	}
	payload, err := dispatch.EncodeTraceExport(spans)
	if err != nil {
		log.Errorf("oc-daemon-client: failed to encode trace export: %v", err)
		return false
	}
	return s.send(MsgTraceExport, payload)
}

// CreateMeasure sends one MSG_MEASURE_CREATE frame describing m.
func CreateMeasure(m Measure) bool {
	s := currentSession()
	if s == nil {
		return false
	}
	return s.send(MsgMeasureCreate, dispatch.EncodeMeasureCreate(m))
}

// SetReportingPeriod sends MSG_VIEW_REPORTING_PERIOD. Periods below
// MinReportingPeriodSeconds are rejected with no frame sent.
func SetReportingPeriod(seconds float64) bool {
	if seconds < MinReportingPeriodSeconds {
		return false
	}
	s := currentSession()
	if s == nil {
		return false
	}
	return s.send(MsgViewReportingPeriod, dispatch.EncodeReportingPeriod(seconds, s.width))
}

// RegisterViews sends one MSG_VIEW_REGISTER frame describing views. An
// empty slice is a no-op success.
func RegisterViews(views []View) bool {
	if len(views) == 0 {
		return true
	}
	s := currentSession()
	if s == nil {
		return false
	}
	return s.send(MsgViewRegister, dispatch.EncodeViewRegister(views, s.width))
}

// UnregisterViews sends one MSG_VIEW_UNREGISTER frame naming the given
// views. An empty slice is a no-op success.
func UnregisterViews(names []string) bool {
	if len(names) == 0 {
		return true
	}
	s := currentSession()
	if s == nil {
		return false
	}
	return s.send(MsgViewUnregister, dispatch.EncodeViewUnregister(names))
}

// RecordStats sends one MSG_STATS_RECORD frame for measurements, tagged
// with tags and attachments. An empty measurements slice is a no-op
// success.
func RecordStats(measurements []Measurement, tags []Tag, attachments []Tag) bool {
	if len(measurements) == 0 {
		return true
	}
	s := currentSession()
	if s == nil {
		return false
	}
	return s.send(MsgStatsRecord, dispatch.EncodeStatsRecord(measurements, tags, attachments, s.width))
}
