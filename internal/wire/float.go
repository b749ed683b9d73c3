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

package wire

import "math"

// Width is the wire width of a float field, in bytes.
type Width int

const (
	// Width32 is the 4-byte IEEE-754 single precision width, sent as an
	// 8-byte field zero-padded on both sides.
	Width32 Width = 4
	// Width64 is the 8-byte IEEE-754 double precision width.
	Width64 Width = 8
)

// OnWireSize is the number of bytes every float field occupies, regardless
// of Width: 32-bit mode pads to the same 8 bytes so receivers can tell the
// two apart by inspecting the padding positions.
const OnWireSize = 8

// ProbeWidth determines the session's float width by doing exactly what the
// protocol says: encode 1.0 in the host's native double representation and
// measure the resulting byte length. In Go, float64 is always the native
// double, so this always yields Width64 — the probe is kept as a real
// measurement (rather than a hardcoded constant) so the session's immutable
// float-width flag is always honestly derived, not assumed.
func ProbeWidth() Width {
	var scratch [8]byte
	n := putFloat64(scratch[:0], 1.0)
	if len(n) == 4 {
		return Width32
	}
	return Width64
}

func putFloat64(buf []byte, v float64) []byte {
	bits := math.Float64bits(v)
	return appendUint64LE(buf, bits)
}

func appendUint64LE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

func appendUint32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// AppendFloat appends v to buf as an on-wire float field for the given
// width. 64-bit mode writes 8 little-endian bytes; 32-bit mode writes
// 2 zero bytes, the 4-byte little-endian float32, then 2 more zero bytes —
// the padding is exact and must be reproduced bit-for-bit for the daemon's
// width auto-detection to work.
func AppendFloat(buf []byte, v float64, width Width) []byte {
	if width == Width32 {
		buf = append(buf, 0x00, 0x00)
		buf = appendUint32LE(buf, math.Float32bits(float32(v)))
		buf = append(buf, 0x00, 0x00)
		return buf
	}
	return appendUint64LE(buf, math.Float64bits(v))
}

// ReadFloat decodes an OnWireSize-byte float field from the front of buf.
// Width is detected from the padding: if bytes 0,1,6,7 are all zero the
// field is treated as 32-bit padded, otherwise as a plain 64-bit value.
// This mirrors the daemon's own detection and shares its ambiguity for the
// degenerate case of a 64-bit value whose outer bytes happen to be zero.
func ReadFloat(buf []byte) (v float64, width Width, ok bool) {
	if len(buf) < OnWireSize {
		return 0, 0, false
	}
	b := buf[:OnWireSize]
	if b[0] == 0 && b[1] == 0 && b[6] == 0 && b[7] == 0 {
		bits := uint32(b[2]) | uint32(b[3])<<8 | uint32(b[4])<<16 | uint32(b[5])<<24
		return float64(math.Float32frombits(bits)), Width32, true
	}
	bits := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	return math.Float64frombits(bits), Width64, true
}
