package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// EncodeExport returns an export entry: name, kind byte, index, in that order.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#export-section
func EncodeExport(name string, kind wasm.ExternType, index uint32) []byte {
	data := EncodeName(name)
	data = append(data, kind)
	return append(data, leb128.EncodeUint32(index)...)
}
