// Package ieee754 encodes the fixed-width little-endian floating point immediates used by
// f32.const and f64.const, as distinct from the variable-length LEB128 integers used elsewhere
// in the Wasm binary format.
package ieee754

import (
	"encoding/binary"
	"math"
)

// EncodeFloat32 returns the 4-byte little-endian IEEE-754 encoding of v.
func EncodeFloat32(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

// EncodeFloat64 returns the 8-byte little-endian IEEE-754 encoding of v.
func EncodeFloat64(v float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	return buf
}

// DecodeFloat32 decodes the 4-byte little-endian IEEE-754 encoding at the front of buf. Used only
// by tests to assert round-trip encoding.
func DecodeFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

// DecodeFloat64 decodes the 8-byte little-endian IEEE-754 encoding at the front of buf. Used only
// by tests to assert round-trip encoding.
func DecodeFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}
