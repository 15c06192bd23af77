package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/encoding"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// Drop emits drop, discarding the top stack value.
func (e *Expression) Drop() error {
	return e.appendOpcode(wasm.OpcodeDrop)
}

// Select emits the untyped select: the operand type is left for a validator to infer from the
// stack, so only use this when both candidate values are numeric.
func (e *Expression) Select() error {
	return e.appendOpcode(wasm.OpcodeSelect)
}

// SelectTyped emits the typed select, with an explicit result-type vector. Required whenever the
// candidate values are references, since those can't be inferred structurally.
func (e *Expression) SelectTyped(types []ValueType) error {
	return e.appendOpcodeBytes(wasm.OpcodeSelectT, encoding.EncodeValTypes(types))
}
