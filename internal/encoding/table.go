package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// EncodeTableType returns a table type (reference type + limits) in Wasm binary format.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#table-types
func EncodeTableType(refType wasm.RefType, min uint32, max *uint32) []byte {
	return append([]byte{refType}, EncodeLimits(min, max)...)
}
