// Package leb128 encodes and decodes LEB128 variable-length integers as used throughout the
// Wasm binary format for lengths, indices, and signed immediates.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/values.html#integers
package leb128

import "fmt"

// EncodeUint32 encodes v as unsigned LEB128, the minimal number of bytes required.
func EncodeUint32(v uint32) []byte {
	return encodeUint64(uint64(v))
}

// EncodeUint64 encodes v as unsigned LEB128, the minimal number of bytes required.
func EncodeUint64(v uint64) []byte {
	return encodeUint64(v)
}

func encodeUint64(v uint64) []byte {
	ret := make([]byte, 0, 10)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			ret = append(ret, b|0x80)
		} else {
			ret = append(ret, b)
			return ret
		}
	}
}

// EncodeInt32 encodes v as signed LEB128, the minimal number of bytes required.
func EncodeInt32(v int32) []byte {
	return encodeSigned(int64(v))
}

// EncodeInt64 encodes v as signed LEB128, the minimal number of bytes required.
func EncodeInt64(v int64) []byte {
	return encodeSigned(v)
}

// EncodeInt33AsInt64 encodes v, a 33-bit signed quantity stored in an int64, as signed LEB128.
// This is used for the block-type type-index immediate, whose sign-extended range is 33 bits.
func EncodeInt33AsInt64(v int64) []byte {
	return encodeSigned(v)
}

// encodeSigned implements the standard signed LEB128 algorithm: shift off 7 bits at a time,
// stopping once the remaining sign-extended value is fully represented by the sign bit of the
// last emitted group.
func encodeSigned(v int64) []byte {
	ret := make([]byte, 0, 10)
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		// After an arithmetic shift, v is either all-zero (value was non-negative and exhausted)
		// or all-one (value was negative and exhausted); in both cases the sign bit of b already
		// matches what v would sign-extend to, so no more bytes are needed.
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			more = false
		} else {
			b |= 0x80
		}
		ret = append(ret, b)
	}
	return ret
}

// LoadUint32 decodes an unsigned LEB128 value from the front of buf, returning the number of
// bytes consumed. Used to verify round-trip encoding in tests.
func LoadUint32(buf []byte) (uint32, uint64, error) {
	v, n, err := loadUint(buf, 32)
	if err != nil {
		return 0, 0, err
	}
	if v > 0xffffffff {
		return 0, 0, fmt.Errorf("invalid uint32: overflow")
	}
	return uint32(v), n, nil
}

// LoadUint64 decodes an unsigned LEB128 value from the front of buf, returning the number of
// bytes consumed.
func LoadUint64(buf []byte) (uint64, uint64, error) {
	return loadUint(buf, 64)
}

// loadUint decodes an unsigned LEB128 value no wider than bitWidth. A value needs at most
// ceil(bitWidth/7) bytes to stay in range; any continuation byte past that cap is rejected
// unconditionally, and the last byte that fits only partially (its top bits would land outside
// bitWidth) is rejected unless those extra bits are zero. The partial-byte check matters for
// bitWidth==64, where the result accumulator is itself only 64 bits wide, so an ordinary shift
// would silently drop any excess instead of surfacing it as an error.
func loadUint(buf []byte, bitWidth uint) (uint64, uint64, error) {
	maxBytes := (bitWidth + 6) / 7
	var result uint64
	var shift uint
	var n uint64
	for {
		if int(n) >= len(buf) {
			return 0, 0, fmt.Errorf("unexpected end of buffer while decoding uleb128")
		}
		if n >= uint64(maxBytes) {
			return 0, 0, fmt.Errorf("uleb128 overflows %d bits", bitWidth)
		}
		b := buf[n]
		n++
		chunk := uint64(b & 0x7f)
		if shift+7 > bitWidth && chunk>>(bitWidth-shift) != 0 {
			return 0, 0, fmt.Errorf("uleb128 overflows %d bits", bitWidth)
		}
		result |= chunk << shift
		if b&0x80 == 0 {
			return result, n, nil
		}
		shift += 7
	}
}

// LoadInt32 decodes a signed LEB128 value from the front of buf, returning the number of bytes
// consumed.
func LoadInt32(buf []byte) (int32, uint64, error) {
	v, n, err := loadSigned(buf, 32)
	if err != nil {
		return 0, 0, err
	}
	// A 32-bit immediate may be encoded with trailing continuation bytes whose extra bits must
	// all agree with the sign bit of the 32-bit result; if truncating to int32 and sign-extending
	// back doesn't reproduce v, those extra bits disagreed and the encoding overflows 32 bits.
	if int64(int32(v)) != v {
		return 0, 0, fmt.Errorf("invalid int32: overflow")
	}
	return int32(v), n, nil
}

// LoadInt64 decodes a signed LEB128 value from the front of buf, returning the number of bytes
// consumed.
func LoadInt64(buf []byte) (int64, uint64, error) {
	return loadSigned(buf, 64)
}

// DecodeInt33AsInt64 decodes a signed 33-bit LEB128 value (the block-type type-index immediate)
// from r, returning the number of bytes consumed.
func DecodeInt33AsInt64(r interface {
	ReadByte() (byte, error)
}) (int64, uint64, error) {
	var result int64
	var shift uint
	var n uint64
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("read byte: %w", err)
		}
		n++
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 33 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, n, nil
		}
	}
}

func loadSigned(buf []byte, bitWidth uint) (int64, uint64, error) {
	var result int64
	var shift uint
	var n uint64
	for {
		if int(n) >= len(buf) {
			return 0, 0, fmt.Errorf("unexpected end of buffer while decoding sleb128")
		}
		b := buf[n]
		n++
		if shift >= 64 {
			return 0, 0, fmt.Errorf("sleb128 overflows %d bits", bitWidth)
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, n, nil
		}
	}
}
