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

// Message type tags. Tags partition by purpose: process lifecycle
// (0x01-0x02), request lifecycle (0x03-0x04), trace (0x14), stats
// (0x28-0x2C).
const (
	MsgProcInit     byte = 0x01
	MsgProcShutdown byte = 0x02

	MsgReqInit     byte = 0x03
	MsgReqShutdown byte = 0x04

	MsgTraceExport byte = 0x14

	MsgMeasureCreate        byte = 0x28
	MsgViewReportingPeriod  byte = 0x29
	MsgViewRegister         byte = 0x2A
	MsgViewUnregister       byte = 0x2B
	MsgStatsRecord          byte = 0x2C
)

// ProtocolVersion is the single version byte sent in REQ_INIT.
const ProtocolVersion byte = 0x01
