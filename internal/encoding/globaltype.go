package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// EncodeGlobalType returns a global type (value type + mutability byte) in Wasm binary format.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#global-types
func EncodeGlobalType(valType wasm.ValueType, mutable bool) []byte {
	mut := wasm.MutabilityConst
	if mutable {
		mut = wasm.MutabilityVar
	}
	return []byte{valType, mut}
}
