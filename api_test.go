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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/census-instrumentation/oc-daemon-client/internal/frame"
)

func initWithMock(t *testing.T) *frame.MockExtension {
	t.Helper()
	resetForTest()
	t.Cleanup(resetForTest)

	ctrl := gomock.NewController(t)
	ext := frame.NewMockExtension(ctrl)
	ext.EXPECT().DeliverFrame(MsgReqInit, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)
	SetExtension(ext)

	_, err := Init(nil)
	require.NoError(t, err)
	return ext
}

func Test_ExportSpans_EmptyIsNoOp(t *testing.T) {
	initWithMock(t)
	assert.True(t, ExportSpans(nil))
}

func Test_ExportSpans_SendsTraceExportFrame(t *testing.T) {
	ext := initWithMock(t)
	ext.EXPECT().DeliverFrame(MsgTraceExport, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	ok := ExportSpans([]Span{fakeSpan{traceID: "t1", spanID: "s1", name: "op"}})
	assert.True(t, ok)
}

func Test_CreateMeasure_SendsMeasureCreateFrame(t *testing.T) {
	ext := initWithMock(t)
	ext.EXPECT().DeliverFrame(MsgMeasureCreate, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	ok := CreateMeasure(fakeMeasure{valueType: ValueTypeInt, name: "requests", unit: "1"})
	assert.True(t, ok)
}

func Test_SetReportingPeriod_RejectsBelowMinimumWithoutSending(t *testing.T) {
	initWithMock(t) // no further DeliverFrame expectation registered

	assert.False(t, SetReportingPeriod(0.5))
}

func Test_SetReportingPeriod_SendsAtMinimum(t *testing.T) {
	ext := initWithMock(t)
	ext.EXPECT().DeliverFrame(MsgViewReportingPeriod, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	assert.True(t, SetReportingPeriod(MinReportingPeriodSeconds))
}

func Test_RegisterViews_EmptyIsNoOp(t *testing.T) {
	initWithMock(t)
	assert.True(t, RegisterViews(nil))
}

func Test_RegisterViews_SendsViewRegisterFrame(t *testing.T) {
	ext := initWithMock(t)
	ext.EXPECT().DeliverFrame(MsgViewRegister, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	m := fakeMeasure{valueType: ValueTypeInt, name: "requests"}
	v := fakeView{name: "requests_count", measure: m, aggregation: fakeAggregation{typeCode: 1}}
	assert.True(t, RegisterViews([]View{v}))
}

func Test_UnregisterViews_EmptyIsNoOp(t *testing.T) {
	initWithMock(t)
	assert.True(t, UnregisterViews(nil))
}

func Test_RecordStats_EmptyMeasurementsIsNoOp(t *testing.T) {
	initWithMock(t)
	assert.True(t, RecordStats(nil, nil, nil))
}

func Test_RecordStats_SendsStatsRecordFrame(t *testing.T) {
	ext := initWithMock(t)
	ext.EXPECT().DeliverFrame(MsgStatsRecord, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(1)

	m := fakeMeasure{valueType: ValueTypeInt, name: "requests"}
	meas := fakeMeasurement{measure: m, value: int64(1)}
	assert.True(t, RecordStats([]Measurement{meas}, nil, nil))
}

func Test_API_WithoutInit_ReturnsFalse(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	assert.False(t, CreateMeasure(fakeMeasure{name: "x"}))
	assert.False(t, RegisterViews([]View{fakeView{name: "v"}}))
}
