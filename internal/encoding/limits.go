package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
)

// EncodeLimits returns (min, max) encoded as the Wasm `limits` binary type: a flag byte (0x00
// min-only, 0x01 min+max) followed by unsigned LEB128 numbers.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#limits
func EncodeLimits(min uint32, max *uint32) []byte {
	if max == nil {
		return append([]byte{0x00}, leb128.EncodeUint32(min)...)
	}
	return append([]byte{0x01}, append(leb128.EncodeUint32(min), leb128.EncodeUint32(*max)...)...)
}
