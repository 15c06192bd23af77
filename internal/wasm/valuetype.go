package wasm

// ValueType is the binary encoding of a Wasm value type.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#binary-valtype
type ValueType = byte

const (
	ValueTypeI32       ValueType = 0x7f
	ValueTypeI64       ValueType = 0x7e
	ValueTypeF32       ValueType = 0x7d
	ValueTypeF64       ValueType = 0x7c
	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// ValueTypeName returns the Wasm text format name of a ValueType.
func ValueTypeName(vt ValueType) string {
	switch vt {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return "unknown"
}

// RefType is the binary encoding of a Wasm reference type: always one of ValueTypeFuncref or
// ValueTypeExternref, kept as a distinct alias to document intent at call sites.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#reference-types
type RefType = byte

const (
	RefTypeFuncref   RefType = ValueTypeFuncref
	RefTypeExternref RefType = ValueTypeExternref
)

// ExternType classifies imports and exports by the kind of entity they describe.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#binary-importdesc
type ExternType = byte

const (
	ExternTypeFunc   ExternType = 0x00
	ExternTypeTable  ExternType = 0x01
	ExternTypeMemory ExternType = 0x02
	ExternTypeGlobal ExternType = 0x03
)

// ExternTypeName returns the Wasm text format field name of an ExternType.
func ExternTypeName(et ExternType) string {
	switch et {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	}
	return "unknown"
}

// Mutability is the binary encoding of a global's mutability flag.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#binary-mut
type Mutability = byte

const (
	MutabilityConst Mutability = 0x00
	MutabilityVar   Mutability = 0x01
)

// BlockTypeEmpty is the block-type immediate encoding for a block with no parameters and no results.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/instructions.html#binary-blocktype
const BlockTypeEmpty = 0x40

// SectionID identifies a Wasm binary module section.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#sections
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
)
