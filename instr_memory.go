package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

func memArg(align, offset uint32) []byte {
	return append(leb128.EncodeUint32(align), leb128.EncodeUint32(offset)...)
}

func (e *Expression) load(op wasm.Opcode, align, offset uint32) error {
	return e.appendOpcodeBytes(op, memArg(align, offset))
}

// I32Load emits i32.load with the given alignment hint and byte offset.
func (e *Expression) I32Load(align, offset uint32) error { return e.load(wasm.OpcodeI32Load, align, offset) }

// I64Load emits i64.load.
func (e *Expression) I64Load(align, offset uint32) error { return e.load(wasm.OpcodeI64Load, align, offset) }

// F32Load emits f32.load.
func (e *Expression) F32Load(align, offset uint32) error { return e.load(wasm.OpcodeF32Load, align, offset) }

// F64Load emits f64.load.
func (e *Expression) F64Load(align, offset uint32) error { return e.load(wasm.OpcodeF64Load, align, offset) }

// I32Load8S emits i32.load8_s.
func (e *Expression) I32Load8S(align, offset uint32) error { return e.load(wasm.OpcodeI32Load8S, align, offset) }

// I32Load8U emits i32.load8_u.
func (e *Expression) I32Load8U(align, offset uint32) error { return e.load(wasm.OpcodeI32Load8U, align, offset) }

// I32Load16S emits i32.load16_s.
func (e *Expression) I32Load16S(align, offset uint32) error {
	return e.load(wasm.OpcodeI32Load16S, align, offset)
}

// I32Load16U emits i32.load16_u.
func (e *Expression) I32Load16U(align, offset uint32) error {
	return e.load(wasm.OpcodeI32Load16U, align, offset)
}

// I64Load8S emits i64.load8_s.
func (e *Expression) I64Load8S(align, offset uint32) error { return e.load(wasm.OpcodeI64Load8S, align, offset) }

// I64Load8U emits i64.load8_u.
func (e *Expression) I64Load8U(align, offset uint32) error { return e.load(wasm.OpcodeI64Load8U, align, offset) }

// I64Load16S emits i64.load16_s.
func (e *Expression) I64Load16S(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Load16S, align, offset)
}

// I64Load16U emits i64.load16_u.
func (e *Expression) I64Load16U(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Load16U, align, offset)
}

// I64Load32S emits i64.load32_s.
func (e *Expression) I64Load32S(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Load32S, align, offset)
}

// I64Load32U emits i64.load32_u.
func (e *Expression) I64Load32U(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Load32U, align, offset)
}

// I32Store emits i32.store.
func (e *Expression) I32Store(align, offset uint32) error { return e.load(wasm.OpcodeI32Store, align, offset) }

// I64Store emits i64.store.
func (e *Expression) I64Store(align, offset uint32) error { return e.load(wasm.OpcodeI64Store, align, offset) }

// F32Store emits f32.store.
func (e *Expression) F32Store(align, offset uint32) error { return e.load(wasm.OpcodeF32Store, align, offset) }

// F64Store emits f64.store.
func (e *Expression) F64Store(align, offset uint32) error { return e.load(wasm.OpcodeF64Store, align, offset) }

// I32Store8 emits i32.store8.
func (e *Expression) I32Store8(align, offset uint32) error { return e.load(wasm.OpcodeI32Store8, align, offset) }

// I32Store16 emits i32.store16.
func (e *Expression) I32Store16(align, offset uint32) error {
	return e.load(wasm.OpcodeI32Store16, align, offset)
}

// I64Store8 emits i64.store8.
func (e *Expression) I64Store8(align, offset uint32) error { return e.load(wasm.OpcodeI64Store8, align, offset) }

// I64Store16 emits i64.store16.
func (e *Expression) I64Store16(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Store16, align, offset)
}

// I64Store32 emits i64.store32.
func (e *Expression) I64Store32(align, offset uint32) error {
	return e.load(wasm.OpcodeI64Store32, align, offset)
}

// MemorySize emits memory.size, pushing the current size of memory 0 in pages.
func (e *Expression) MemorySize() error {
	return e.appendOpcodeBytes(wasm.OpcodeMemorySize, []byte{0x00})
}

// MemoryGrow emits memory.grow, growing memory 0 by a page count popped from the stack.
func (e *Expression) MemoryGrow() error {
	return e.appendOpcodeBytes(wasm.OpcodeMemoryGrow, []byte{0x00})
}

// MemoryInit emits memory.init, copying from data segment dataIdx into memory 0.
func (e *Expression) MemoryInit(dataIdx uint32) error {
	immediate := append(leb128.EncodeUint32(dataIdx), 0x00)
	return e.appendMiscOpcode(wasm.OpcodeMiscMemoryInit, immediate)
}

// DataDrop emits data.drop, marking data segment dataIdx as unusable by future memory.init calls.
func (e *Expression) DataDrop(dataIdx uint32) error {
	return e.appendMiscOpcode(wasm.OpcodeMiscDataDrop, leb128.EncodeUint32(dataIdx))
}

// MemoryCopy emits memory.copy within memory 0.
func (e *Expression) MemoryCopy() error {
	return e.appendMiscOpcode(wasm.OpcodeMiscMemoryCopy, []byte{0x00, 0x00})
}

// MemoryFill emits memory.fill on memory 0.
func (e *Expression) MemoryFill() error {
	return e.appendMiscOpcode(wasm.OpcodeMiscMemoryFill, []byte{0x00})
}
