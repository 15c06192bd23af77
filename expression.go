package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/encoding"
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// blockKind distinguishes the three control constructs that open a nesting level, so Else can
// validate that it is only used directly inside an open If.
type blockKind byte

const (
	blockKindBlock blockKind = iota
	blockKindLoop
	blockKindIf
)

// constKind classifies whether a finalized Expression is recognized as one of the constant-
// expression forms the Wasm spec allows for global initializers and active segment offsets, so
// Module can check TypeMismatch without a general-purpose evaluator.
type constKind byte

const (
	constKindNone constKind = iota
	constKindSimple
	constKindGlobalGet
)

// Expression accumulates a sequence of Wasm instructions — a function body or a constant
// initializer expression — plus the structural nesting depth needed to validate branches and
// block closings as they're emitted. It is single-writer and must not be used after Finalize.
//
// See §4.2 of the Wasm 2.0 binary format for the instruction encoding this type produces.
type Expression struct {
	buf       []byte
	open      []blockKind
	finalized bool

	instrCount int
	constKind  constKind
	constType  ValueType
	constIdx   uint32
}

// NewExpression returns an empty Expression ready to accept instructions.
func NewExpression() *Expression {
	return &Expression{}
}

// Depth returns the current structural nesting depth: the number of block/loop/if constructs
// opened and not yet closed by a matching End.
func (e *Expression) Depth() int {
	return len(e.open)
}

func (e *Expression) checkOpen() error {
	if e.finalized {
		return newStructureError("emit into a finalized expression")
	}
	return nil
}

func (e *Expression) noteInstruction() {
	e.instrCount++
	e.constKind = constKindNone
}

func (e *Expression) noteConst(kind constKind, vt ValueType, idx uint32) {
	if e.instrCount == 1 {
		e.constKind = kind
		e.constType = vt
		e.constIdx = idx
	} else {
		e.constKind = constKindNone
	}
}

// constResultType reports the value type of e when e is recognized as a single-instruction
// constant expression: an i32/i64/f32/f64 const, a ref.null/ref.func, or a global.get of a
// global whose type is known to m. Returns ok=false for any other expression shape — callers
// should treat that as "type unknown", not as a mismatch, since this is not a general evaluator.
func (e *Expression) constResultType(m *Module) (ValueType, bool) {
	switch e.constKind {
	case constKindSimple:
		return e.constType, true
	case constKindGlobalGet:
		if gt, ok := m.globalTypeAt(e.constIdx); ok {
			return gt.ValType, true
		}
	}
	return 0, false
}

// Finalize appends the terminating end opcode and returns the accumulated instruction bytes.
// It fails with StructureError if called twice, or if any block/loop/if remains unclosed.
func (e *Expression) Finalize() ([]byte, error) {
	if e.finalized {
		return nil, newStructureError("finalize called on an already-finalized expression")
	}
	if len(e.open) != 0 {
		return nil, newStructureError("finalize called with an open block, loop, or if")
	}
	e.buf = append(e.buf, wasm.OpcodeEnd)
	e.finalized = true
	return e.buf, nil
}

// appendOpcode emits a bare opcode with no immediate.
func (e *Expression) appendOpcode(op wasm.Opcode) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, op)
	e.noteInstruction()
	return nil
}

// appendOpcodeBytes emits an opcode followed by pre-encoded immediate bytes.
func (e *Expression) appendOpcodeBytes(op wasm.Opcode, immediate []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, op)
	e.buf = append(e.buf, immediate...)
	e.noteInstruction()
	return nil
}

// appendMiscOpcode emits the 0xFC prefix byte, the misc sub-opcode as unsigned LEB128, and any
// immediate bytes. Used by saturating conversions and the bulk-memory/table instructions.
func (e *Expression) appendMiscOpcode(misc wasm.OpcodeMisc, immediate []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.buf = append(e.buf, wasm.OpcodeMiscPrefix)
	e.buf = append(e.buf, leb128.EncodeUint32(uint32(misc))...)
	e.buf = append(e.buf, immediate...)
	e.noteInstruction()
	return nil
}

// BlockType is the signature attached to block, loop, and if: no results, a single result, or
// a full function type referenced by index.
type BlockType struct {
	encoded []byte
}

// BlockTypeEmpty returns the block type for a block with no parameters and no results.
func BlockTypeEmpty() BlockType {
	return BlockType{encoded: encoding.EncodeEmptyBlockType()}
}

// BlockTypeResult returns the block type for a block with no parameters and exactly one result.
func BlockTypeResult(vt ValueType) BlockType {
	return BlockType{encoded: encoding.EncodeValTypeBlockType(vt)}
}

// BlockTypeFunc returns the block type for a block whose signature is the function type at
// typeIdx — required whenever a block takes parameters or returns more than one value.
func BlockTypeFunc(typeIdx uint32) BlockType {
	return BlockType{encoded: encoding.EncodeTypeIndexBlockType(typeIdx)}
}

func (bt BlockType) bytes() []byte {
	if bt.encoded == nil {
		return encoding.EncodeEmptyBlockType()
	}
	return bt.encoded
}
