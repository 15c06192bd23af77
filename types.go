package wasmcraft

import "github.com/wasmcraft/wasmcraft/internal/wasm"

// ValueType is one of the Wasm value types. v128 is reserved for parity with the Wasm 2.0 type
// space but is never produced by any instruction exposed here — SIMD is out of scope.
type ValueType = wasm.ValueType

const (
	ValueTypeI32       = wasm.ValueTypeI32
	ValueTypeI64       = wasm.ValueTypeI64
	ValueTypeF32       = wasm.ValueTypeF32
	ValueTypeF64       = wasm.ValueTypeF64
	ValueTypeFuncref   = wasm.ValueTypeFuncref
	ValueTypeExternref = wasm.ValueTypeExternref
)

// RefType is either ValueTypeFuncref or ValueTypeExternref.
type RefType = wasm.RefType

const (
	RefTypeFuncref   = wasm.RefTypeFuncref
	RefTypeExternref = wasm.RefTypeExternref
)

// ElementMode classifies how an element segment's contents reach their target table. See
// ElementModeActive, ElementModePassive, ElementModeDeclarative.
type ElementMode = wasm.ElementMode

const (
	ElementModeActive      = wasm.ElementModeActive
	ElementModePassive     = wasm.ElementModePassive
	ElementModeDeclarative = wasm.ElementModeDeclarative
)

// Limits bounds a table or memory: Min is required, Max is optional (nil means unbounded). If
// Max is present it must be >= Min.
type Limits struct {
	Min uint32
	Max *uint32
}

// FuncType is a function signature: ordered parameter types followed by ordered result types.
// Two FuncTypes are structurally equal (for deduplication purposes) when both sequences match
// element-for-element.
type FuncType struct {
	Params  []ValueType
	Results []ValueType
}

// Equal reports whether ft and other describe the same parameter and result sequences.
func (ft FuncType) Equal(other FuncType) bool {
	if len(ft.Params) != len(other.Params) || len(ft.Results) != len(other.Results) {
		return false
	}
	for i, p := range ft.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, r := range ft.Results {
		if r != other.Results[i] {
			return false
		}
	}
	return true
}

// TableType is a table's element type plus its size limits.
type TableType struct {
	RefType RefType
	Limits  Limits
}

// MemoryType is a memory's size limits, measured in 64KiB pages.
type MemoryType struct {
	Limits Limits
}

// GlobalType is a global's value type plus whether it is mutable.
type GlobalType struct {
	ValType ValueType
	Mutable bool
}

func valueTypeName(vt ValueType) string {
	return wasm.ValueTypeName(vt)
}

// Local is one run of function-local variables sharing a value type, as declared at the front of
// a function body.
type Local struct {
	Count uint32
	Type  ValueType
}

// FuncImport describes a function import: the two-part name under which the host resolves it,
// plus the index of its signature in the module's type section.
type FuncImport struct {
	Module    string
	Name      string
	TypeIndex uint32
}

// TableImport describes a table import.
type TableImport struct {
	Module string
	Name   string
	Type   TableType
}

// MemoryImport describes a memory import.
type MemoryImport struct {
	Module string
	Name   string
	Type   MemoryType
}

// GlobalImport describes a global import. Imported globals have no initializer of their own —
// the host supplies the value.
type GlobalImport struct {
	Module string
	Name   string
	Type   GlobalType
}

// Function is a function declaration: the index of its signature, its local variable groups,
// and its body. Body is finalized (and thereby consumed) when the Function is inserted into a
// Module.
type Function struct {
	TypeIndex uint32
	Locals    []Local
	Body      *Expression
}

