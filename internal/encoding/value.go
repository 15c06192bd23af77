// Package encoding implements the Wasm 2.0 binary format encoders for the composite types that
// make up a module: value-type vectors, limits, function/table/memory/global types, names,
// exports, block types, locals, function bodies, and data/element segments. Constant
// expressions are not encoded here; they come pre-finalized from Expression. Every encoder here is a pure
// function from in-memory values to bytes; none of it performs I/O or owns mutable state — that
// belongs to the module assembler that calls these functions while emitting each section.
package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

var noValTypes = []byte{0}

// encodedValTypes caches the size-prefixed encoding of single-value-type vectors, the
// overwhelmingly common case for function results and many parameter lists.
var encodedValTypes = map[wasm.ValueType][]byte{
	wasm.ValueTypeI32:       {1, wasm.ValueTypeI32},
	wasm.ValueTypeI64:       {1, wasm.ValueTypeI64},
	wasm.ValueTypeF32:       {1, wasm.ValueTypeF32},
	wasm.ValueTypeF64:       {1, wasm.ValueTypeF64},
	wasm.ValueTypeFuncref:   {1, wasm.ValueTypeFuncref},
	wasm.ValueTypeExternref: {1, wasm.ValueTypeExternref},
}

// EncodeValTypes encodes a "vector of valtype": an unsigned LEB128 count followed by the raw
// value-type bytes.
func EncodeValTypes(vt []wasm.ValueType) []byte {
	switch len(vt) {
	case 0:
		return noValTypes
	case 1:
		if encoded, ok := encodedValTypes[vt[0]]; ok {
			return encoded
		}
	}
	count := leb128.EncodeUint32(uint32(len(vt)))
	return append(count, vt...)
}
