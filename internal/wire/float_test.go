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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ProbeWidth_IsNativeDoubleOnGo(t *testing.T) {
	require.Equal(t, Width64, ProbeWidth())
}

func Test_Float64_RoundTrip(t *testing.T) {
	buf := AppendFloat(nil, 2.5, Width64)
	require.Len(t, buf, OnWireSize)
	v, width, ok := ReadFloat(buf)
	require.True(t, ok)
	require.Equal(t, Width64, width)
	require.InDelta(t, 2.5, v, 1e-9)
}

func Test_Float32_PaddingIsExact(t *testing.T) {
	buf := AppendFloat(nil, 1.0, Width32)
	require.Len(t, buf, OnWireSize)
	require.Equal(t, byte(0x00), buf[0])
	require.Equal(t, byte(0x00), buf[1])
	require.Equal(t, byte(0x00), buf[6])
	require.Equal(t, byte(0x00), buf[7])

	v, width, ok := ReadFloat(buf)
	require.True(t, ok)
	require.Equal(t, Width32, width)
	require.InDelta(t, 1.0, v, 1e-6)
}

func Test_Float_TooShortNotOK(t *testing.T) {
	_, _, ok := ReadFloat([]byte{0x00, 0x00, 0x00})
	require.False(t, ok)
}
