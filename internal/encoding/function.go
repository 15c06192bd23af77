package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// EncodeFunctionType returns the function type byte 0x60 followed by the vectors of parameter
// and result value types.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#function-types
func EncodeFunctionType(params, results []wasm.ValueType) []byte {
	data := append([]byte{0x60}, EncodeValTypes(params)...)
	return append(data, EncodeValTypes(results)...)
}
