package encoding

import "github.com/wasmcraft/wasmcraft/internal/leb128"

// EncodeName encodes a UTF-8 string prefixed by its unsigned LEB128 byte length.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/values.html#names
func EncodeName(s string) []byte {
	return append(leb128.EncodeUint32(uint32(len(s))), s...)
}
