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

// Package wire implements the primitive codecs shared by every daemon frame:
// unsigned LEB128 varints, length-prefixed byte strings, and the
// width-negotiated float encoding described by the daemon wire protocol.
package wire

import "encoding/binary"

// AppendVarint appends the LEB128 encoding of n to buf and returns the
// extended slice. Negative inputs are not representable on the wire and are
// treated as 0 rather than producing an undefined byte sequence.
func AppendVarint(buf []byte, n int64) []byte {
	if n < 0 {
		n = 0
	}
	return binary.AppendUvarint(buf, uint64(n))
}

// AppendVarintUint64 is AppendVarint for callers that already hold an
// unsigned value, avoiding the int64 round trip.
func AppendVarintUint64(buf []byte, n uint64) []byte {
	return binary.AppendUvarint(buf, n)
}

// ReadVarint decodes a varint from the front of buf, returning the value and
// the number of bytes consumed. It returns (0, 0) if buf does not contain a
// complete varint.
func ReadVarint(buf []byte) (uint64, int) {
	v, n := binary.Uvarint(buf)
	if n <= 0 {
		return 0, 0
	}
	return v, n
}

// VarintLen returns the number of bytes AppendVarint would append for n.
func VarintLen(n int64) int {
	if n < 0 {
		n = 0
	}
	u := uint64(n)
	l := 1
	for u >= 0x80 {
		u >>= 7
		l++
	}
	return l
}
