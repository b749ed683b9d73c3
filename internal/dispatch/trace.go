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

import "encoding/json"

// jsonSpan is the wire projection of a Span. Spans are variable-shape,
// evolve frequently, and are produced at a much lower rate than stats, so
// JSON wins over a binary encoding here despite every other message type
// using one.
type jsonSpan struct {
	TraceID                 string                 `json:"traceId"`
	SpanID                  string                 `json:"spanId"`
	ParentSpanID            string                 `json:"parentSpanId,omitempty"`
	Name                    string                 `json:"name"`
	Kind                    string                 `json:"kind"`
	StackTrace              string                 `json:"stackTrace,omitempty"`
	StartTime               int64                  `json:"startTime"`
	EndTime                 int64                  `json:"endTime"`
	Status                  jsonSpanStatus         `json:"status"`
	Attributes              map[string]interface{} `json:"attributes,omitempty"`
	TimeEvents              []jsonTimeEvent         `json:"timeEvents,omitempty"`
	Links                   []jsonLink              `json:"links,omitempty"`
	SameProcessAsParentSpan bool                    `json:"sameProcessAsParentSpan"`
}

type jsonSpanStatus struct {
	Code    int32  `json:"code"`
	Message string `json:"message,omitempty"`
}

type jsonTimeEvent struct {
	Time       int64                  `json:"time"`
	Annotation string                 `json:"annotation,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

type jsonLink struct {
	TraceID string `json:"traceId"`
	SpanID  string `json:"spanId"`
	Type    string `json:"type"`
}

func projectSpan(s Span) jsonSpan {
	events := make([]jsonTimeEvent, 0, len(s.TimeEvents()))
	for _, e := range s.TimeEvents() {
		events = append(events, jsonTimeEvent{
			Time:       e.Time.UnixNano(),
			Annotation: e.Annotation,
			Attributes: e.Attributes,
		})
	}
	links := make([]jsonLink, 0, len(s.Links()))
	for _, l := range s.Links() {
		links = append(links, jsonLink{TraceID: l.TraceID, SpanID: l.SpanID, Type: l.Type})
	}
	status := s.Status()
	return jsonSpan{
		TraceID:                 s.TraceID(),
		SpanID:                  s.SpanID(),
		ParentSpanID:            s.ParentSpanID(),
		Name:                    s.Name(),
		Kind:                    s.Kind(),
		StackTrace:              s.StackTrace(),
		StartTime:               s.StartTime().UnixNano(),
		EndTime:                 s.EndTime().UnixNano(),
		Status:                  jsonSpanStatus{Code: status.Code, Message: status.Message},
		Attributes:              s.Attributes(),
		TimeEvents:              events,
		Links:                   links,
		SameProcessAsParentSpan: s.SameProcessAsParentSpan(),
	}
}

// EncodeTraceExport projects spans and marshals them as a single JSON array
// byte string — the entire MSG_TRACE_EXPORT payload.
func EncodeTraceExport(spans []Span) ([]byte, error) {
	projected := make([]jsonSpan, 0, len(spans))
	for _, s := range spans {
		projected = append(projected, projectSpan(s))
	}
	return json.Marshal(projected)
}
