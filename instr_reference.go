package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// RefNull emits ref.null, pushing a null reference of type rt. As a single leading instruction
// this is recognized as a constant expression of type rt.
func (e *Expression) RefNull(rt RefType) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeRefNull, rt)
	e.noteInstruction()
	e.noteConst(constKindSimple, rt, 0)
	return nil
}

// RefIsNull emits ref.is_null, popping a reference and pushing 1 if it was null, 0 otherwise.
func (e *Expression) RefIsNull() error {
	return e.appendOpcode(wasm.OpcodeRefIsNull)
}

// RefFunc emits ref.func, pushing a funcref to funcIdx. As a single leading instruction this is
// recognized as a constant expression of type funcref.
func (e *Expression) RefFunc(funcIdx uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeRefFunc)
	e.buf = append(e.buf, leb128.EncodeUint32(funcIdx)...)
	e.noteInstruction()
	e.noteConst(constKindSimple, ValueTypeFuncref, 0)
	return nil
}
