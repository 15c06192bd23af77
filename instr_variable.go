package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// LocalGet emits local.get, pushing the value of local x.
func (e *Expression) LocalGet(x uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeLocalGet, leb128.EncodeUint32(x))
}

// LocalSet emits local.set, popping the top of the stack into local x.
func (e *Expression) LocalSet(x uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeLocalSet, leb128.EncodeUint32(x))
}

// LocalTee emits local.tee, writing the top of the stack into local x without popping it.
func (e *Expression) LocalTee(x uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeLocalTee, leb128.EncodeUint32(x))
}

// GlobalGet emits global.get, pushing the value of global x. As a single leading instruction
// this is recognized as a constant expression whose type is global x's declared value type —
// the only form of global.get the Wasm spec allows in a constant expression is a reference to an
// imported, immutable global, which Module's caller is responsible for respecting.
func (e *Expression) GlobalGet(x uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeGlobalGet)
	e.buf = append(e.buf, leb128.EncodeUint32(x)...)
	e.noteInstruction()
	e.noteConst(constKindGlobalGet, 0, x)
	return nil
}

// GlobalSet emits global.set, popping the top of the stack into global x.
func (e *Expression) GlobalSet(x uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeGlobalSet, leb128.EncodeUint32(x))
}
