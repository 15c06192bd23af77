package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// TableGet emits table.get, pushing the reference stored in table tableIdx at an index popped
// from the stack.
func (e *Expression) TableGet(tableIdx uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeTableGet, leb128.EncodeUint32(tableIdx))
}

// TableSet emits table.set, storing a reference into table tableIdx at an index popped from the
// stack.
func (e *Expression) TableSet(tableIdx uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeTableSet, leb128.EncodeUint32(tableIdx))
}

// TableInit emits table.init, copying from element segment elemIdx into table tableIdx.
func (e *Expression) TableInit(elemIdx, tableIdx uint32) error {
	immediate := append(leb128.EncodeUint32(elemIdx), leb128.EncodeUint32(tableIdx)...)
	return e.appendMiscOpcode(wasm.OpcodeMiscTableInit, immediate)
}

// ElemDrop emits elem.drop, marking element segment elemIdx as unusable by future table.init
// calls.
func (e *Expression) ElemDrop(elemIdx uint32) error {
	return e.appendMiscOpcode(wasm.OpcodeMiscElemDrop, leb128.EncodeUint32(elemIdx))
}

// TableCopy emits table.copy, copying between table dst and table src.
func (e *Expression) TableCopy(dst, src uint32) error {
	immediate := append(leb128.EncodeUint32(dst), leb128.EncodeUint32(src)...)
	return e.appendMiscOpcode(wasm.OpcodeMiscTableCopy, immediate)
}

// TableGrow emits table.grow on table tableIdx.
func (e *Expression) TableGrow(tableIdx uint32) error {
	return e.appendMiscOpcode(wasm.OpcodeMiscTableGrow, leb128.EncodeUint32(tableIdx))
}

// TableSize emits table.size on table tableIdx.
func (e *Expression) TableSize(tableIdx uint32) error {
	return e.appendMiscOpcode(wasm.OpcodeMiscTableSize, leb128.EncodeUint32(tableIdx))
}

// TableFill emits table.fill on table tableIdx.
func (e *Expression) TableFill(tableIdx uint32) error {
	return e.appendMiscOpcode(wasm.OpcodeMiscTableFill, leb128.EncodeUint32(tableIdx))
}
