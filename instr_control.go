package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// Unreachable emits unreachable, an unconditional trap.
func (e *Expression) Unreachable() error {
	return e.appendOpcode(wasm.OpcodeUnreachable)
}

// Nop emits nop.
func (e *Expression) Nop() error {
	return e.appendOpcode(wasm.OpcodeNop)
}

// Block opens a block with signature bt. A branch to this block's label jumps to just after
// its matching End.
func (e *Expression) Block(bt BlockType) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeBlock)
	e.buf = append(e.buf, bt.bytes()...)
	e.open = append(e.open, blockKindBlock)
	e.noteInstruction()
	return nil
}

// Loop opens a loop with signature bt. A branch to this loop's label jumps back to the loop's
// start.
func (e *Expression) Loop(bt BlockType) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeLoop)
	e.buf = append(e.buf, bt.bytes()...)
	e.open = append(e.open, blockKindLoop)
	e.noteInstruction()
	return nil
}

// If opens an if with signature bt, consuming a condition value from the stack. The then-branch
// runs until a matching Else or End.
func (e *Expression) If(bt BlockType) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeIf)
	e.buf = append(e.buf, bt.bytes()...)
	e.open = append(e.open, blockKindIf)
	e.noteInstruction()
	return nil
}

// Else begins the else-branch of the innermost open If. It fails with StructureError if the
// innermost open construct is not an If.
func (e *Expression) Else() error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if len(e.open) == 0 || e.open[len(e.open)-1] != blockKindIf {
		return newStructureError("else outside an open if")
	}
	e.buf = append(e.buf, wasm.OpcodeElse)
	e.noteInstruction()
	return nil
}

// End closes the innermost open Block, Loop, or If. It fails with StructureError if nothing is
// open. This is the mid-expression closing instruction, distinct from Finalize, which appends
// the expression's own terminating end once every opened construct has already been closed.
func (e *Expression) End() error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if len(e.open) == 0 {
		return newStructureError("end without a matching open block, loop, or if")
	}
	e.open = e.open[:len(e.open)-1]
	e.buf = append(e.buf, wasm.OpcodeEnd)
	e.noteInstruction()
	return nil
}

func (e *Expression) checkLabel(label uint32) error {
	if label > uint32(len(e.open)) {
		return newStructureError("branch target exceeds current nesting depth")
	}
	return nil
}

// Br emits an unconditional branch to the label-th enclosing construct (0 = innermost). It fails
// with StructureError if label exceeds the current nesting depth.
func (e *Expression) Br(label uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if err := e.checkLabel(label); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeBr)
	e.buf = append(e.buf, leb128.EncodeUint32(label)...)
	e.noteInstruction()
	return nil
}

// BrIf emits a conditional branch, consuming a condition value from the stack.
func (e *Expression) BrIf(label uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if err := e.checkLabel(label); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeBrIf)
	e.buf = append(e.buf, leb128.EncodeUint32(label)...)
	e.noteInstruction()
	return nil
}

// BrTable emits a branch table: an index popped from the stack selects a label from labels,
// falling back to defaultLabel when the index is out of range. Every label, including the
// default, must be within the current nesting depth.
func (e *Expression) BrTable(labels []uint32, defaultLabel uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	for _, l := range labels {
		if err := e.checkLabel(l); err != nil {
			return err
		}
	}
	if err := e.checkLabel(defaultLabel); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeBrTable)
	e.buf = append(e.buf, leb128.EncodeUint32(uint32(len(labels)))...)
	for _, l := range labels {
		e.buf = append(e.buf, leb128.EncodeUint32(l)...)
	}
	e.buf = append(e.buf, leb128.EncodeUint32(defaultLabel)...)
	e.noteInstruction()
	return nil
}

// Return emits return, exiting the current function.
func (e *Expression) Return() error {
	return e.appendOpcode(wasm.OpcodeReturn)
}

// Call emits a direct call to function funcIdx.
func (e *Expression) Call(funcIdx uint32) error {
	return e.appendOpcodeBytes(wasm.OpcodeCall, leb128.EncodeUint32(funcIdx))
}

// CallIndirect emits an indirect call through table tableIdx, checking the callee's type
// against typeIdx.
func (e *Expression) CallIndirect(typeIdx, tableIdx uint32) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeCallIndirect)
	e.buf = append(e.buf, leb128.EncodeUint32(typeIdx)...)
	e.buf = append(e.buf, leb128.EncodeUint32(tableIdx)...)
	e.noteInstruction()
	return nil
}
