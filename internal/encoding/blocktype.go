package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// EncodeEmptyBlockType returns the block-type immediate for a block with no parameters and no
// results: the single byte 0x40.
func EncodeEmptyBlockType() []byte {
	return []byte{wasm.BlockTypeEmpty}
}

// EncodeValTypeBlockType returns the block-type immediate for a block with no parameters and
// exactly one result: the single value-type byte.
func EncodeValTypeBlockType(vt wasm.ValueType) []byte {
	return []byte{vt}
}

// EncodeTypeIndexBlockType returns the block-type immediate referencing a function type by index:
// a signed 33-bit LEB128 encoding of the type index, used whenever a block's signature has more
// than one result or any parameters.
func EncodeTypeIndexBlockType(typeIdx uint32) []byte {
	return leb128.EncodeInt33AsInt64(int64(typeIdx))
}
