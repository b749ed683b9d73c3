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

// AppendString appends a length-prefixed byte string: the varint length of s
// followed by its raw bytes, verbatim. No charset conversion, no terminator.
func AppendString(buf []byte, s string) []byte {
	buf = AppendVarint(buf, int64(len(s)))
	return append(buf, s...)
}

// AppendBytes is AppendString for callers already holding a []byte payload.
func AppendBytes(buf []byte, b []byte) []byte {
	buf = AppendVarint(buf, int64(len(b)))
	return append(buf, b...)
}

// ReadString decodes a length-prefixed string from the front of buf,
// returning the string and the number of bytes consumed. ok is false if buf
// does not hold a complete length-prefixed string.
func ReadString(buf []byte) (s string, n int, ok bool) {
	l, ln := ReadVarint(buf)
	if ln == 0 {
		return "", 0, false
	}
	total := ln + int(l)
	if total > len(buf) {
		return "", 0, false
	}
	return string(buf[ln:total]), total, true
}
