package wasmcraft

import (
	"github.com/wasmcraft/wasmcraft/internal/encoding"
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// export is the internal, already-validated record backing one of the ExportFunction/
// ExportTable/ExportMemory/ExportGlobal calls. Exports are recorded in insertion order, which is
// also their order in the emitted Export section.
type export struct {
	name  string
	kind  wasm.ExternType
	index uint32
}

// dataSegment is the internal record backing PassiveData/ActiveData.
type dataSegment struct {
	passive     bool
	memoryIndex uint32
	offsetExpr  []byte
	init        []byte
}

// elementSegment is the internal record backing the ElementSegment* insertion methods. Exactly
// one of funcIndices or exprs is set, matching the two initializer forms the Wasm binary format
// supports (bare function indices, always funcref, versus general ref.null/ref.func constant
// expressions, which may target externref).
type elementSegment struct {
	mode        ElementMode
	tableIndex  uint32
	offsetExpr  []byte
	refType     RefType
	useExprs    bool
	funcIndices []uint32
	exprs       [][]byte
}

// function is the internal record backing Module.Function: fn.Body has already been finalized
// into raw bytes and fn.Locals converted to the encoding package's compressed-run form.
type function struct {
	typeIndex uint32
	locals    []encoding.LocalsGroup
	body      []byte
}

// global is the internal record backing Module.Global, with its initializer already finalized.
type global struct {
	typ  GlobalType
	init []byte
}

// Module is a mutable, single-owner assembler for a Wasm 2.0 binary module. Every insertion
// method validates its arguments against the module's current state and returns the combined-
// space index assigned to the new entity. Once Assemble is called the module is frozen and all
// further insertions fail with ErrFrozen.
type Module struct {
	frozen bool

	types []FuncType

	funcImports   []FuncImport
	tableImports  []TableImport
	memImports    []MemoryImport
	globalImports []GlobalImport

	functions []function
	tables    []TableType
	memories  []MemoryType
	globals   []global

	exports     []export
	exportNames map[string]struct{}

	elements []elementSegment
	data     []dataSegment
}

// NewModule returns an empty Module with no types, imports, or declarations.
func NewModule() *Module {
	return &Module{exportNames: make(map[string]struct{})}
}

func (m *Module) checkFrozen() error {
	if m.frozen {
		return ErrFrozen
	}
	return nil
}

func (m *Module) combinedFuncCount() uint32 {
	return uint32(len(m.funcImports) + len(m.functions))
}

func (m *Module) combinedTableCount() uint32 {
	return uint32(len(m.tableImports) + len(m.tables))
}

func (m *Module) combinedMemoryCount() uint32 {
	return uint32(len(m.memImports) + len(m.memories))
}

func (m *Module) combinedGlobalCount() uint32 {
	return uint32(len(m.globalImports) + len(m.globals))
}

// globalTypeAt resolves the declared type of a global in the combined index space, used by
// Expression.constResultType to type-check a global.get used as a constant expression.
func (m *Module) globalTypeAt(idx uint32) (GlobalType, bool) {
	if idx < uint32(len(m.globalImports)) {
		return m.globalImports[idx].Type, true
	}
	i := idx - uint32(len(m.globalImports))
	if i < uint32(len(m.globals)) {
		return m.globals[i].typ, true
	}
	return GlobalType{}, false
}

func encodeSection(id wasm.SectionID, payload []byte) []byte {
	ret := []byte{id}
	ret = append(ret, leb128.EncodeUint32(uint32(len(payload)))...)
	return append(ret, payload...)
}

func encodeVector(n int, each func(i int) []byte) []byte {
	ret := leb128.EncodeUint32(uint32(n))
	for i := 0; i < n; i++ {
		ret = append(ret, each(i)...)
	}
	return ret
}

// Assemble serializes the module's current state into a Wasm 2.0 binary module and freezes the
// module against further insertions. It can only fail if the module was already frozen; every
// other failure mode is caught eagerly by the insertion methods.
func (m *Module) Assemble() ([]byte, error) {
	if err := m.checkFrozen(); err != nil {
		return nil, err
	}

	out := append([]byte{}, wasm.Magic...)
	out = append(out, wasm.Version...)

	if len(m.types) > 0 {
		payload := encodeVector(len(m.types), func(i int) []byte {
			ft := m.types[i]
			return encoding.EncodeFunctionType(ft.Params, ft.Results)
		})
		out = append(out, encodeSection(wasm.SectionIDType, payload)...)
	}

	if importCount := len(m.funcImports) + len(m.tableImports) + len(m.memImports) + len(m.globalImports); importCount > 0 {
		out = append(out, encodeSection(wasm.SectionIDImport, m.encodeImportSection())...)
	}

	if len(m.functions) > 0 {
		payload := encodeVector(len(m.functions), func(i int) []byte {
			return leb128.EncodeUint32(m.functions[i].typeIndex)
		})
		out = append(out, encodeSection(wasm.SectionIDFunction, payload)...)
	}

	if len(m.tables) > 0 {
		payload := encodeVector(len(m.tables), func(i int) []byte {
			tt := m.tables[i]
			return encoding.EncodeTableType(tt.RefType, tt.Limits.Min, tt.Limits.Max)
		})
		out = append(out, encodeSection(wasm.SectionIDTable, payload)...)
	}

	if len(m.memories) > 0 {
		payload := encodeVector(len(m.memories), func(i int) []byte {
			return encoding.EncodeMemoryType(m.memories[i].Limits.Min, m.memories[i].Limits.Max)
		})
		out = append(out, encodeSection(wasm.SectionIDMemory, payload)...)
	}

	if len(m.globals) > 0 {
		payload := encodeVector(len(m.globals), func(i int) []byte {
			g := m.globals[i]
			ret := encoding.EncodeGlobalType(g.typ.ValType, g.typ.Mutable)
			return append(ret, g.init...)
		})
		out = append(out, encodeSection(wasm.SectionIDGlobal, payload)...)
	}

	if len(m.exports) > 0 {
		payload := encodeVector(len(m.exports), func(i int) []byte {
			ex := m.exports[i]
			return encoding.EncodeExport(ex.name, ex.kind, ex.index)
		})
		out = append(out, encodeSection(wasm.SectionIDExport, payload)...)
	}

	if len(m.elements) > 0 {
		payload := encodeVector(len(m.elements), func(i int) []byte {
			return m.encodeElement(m.elements[i])
		})
		out = append(out, encodeSection(wasm.SectionIDElement, payload)...)
	}

	if len(m.data) > 0 {
		out = append(out, encodeSection(wasm.SectionIDDataCount, leb128.EncodeUint32(uint32(len(m.data))))...)
	}

	if len(m.functions) > 0 {
		payload := encodeVector(len(m.functions), func(i int) []byte {
			fn := m.functions[i]
			return encoding.EncodeFunctionBody(fn.locals, fn.body)
		})
		out = append(out, encodeSection(wasm.SectionIDCode, payload)...)
	}

	if len(m.data) > 0 {
		payload := encodeVector(len(m.data), func(i int) []byte {
			d := m.data[i]
			return encoding.EncodeDataSegment(d.passive, d.memoryIndex, d.offsetExpr, d.init)
		})
		out = append(out, encodeSection(wasm.SectionIDData, payload)...)
	}

	m.frozen = true
	return out, nil
}

func (m *Module) encodeElement(e elementSegment) []byte {
	if e.useExprs {
		return encoding.EncodeElementSegmentExprs(e.mode, e.tableIndex, e.offsetExpr, e.refType, e.exprs)
	}
	return encoding.EncodeElementSegmentIndices(e.mode, e.tableIndex, e.offsetExpr, e.funcIndices)
}

func (m *Module) encodeImportSection() []byte {
	total := len(m.funcImports) + len(m.tableImports) + len(m.memImports) + len(m.globalImports)
	ret := leb128.EncodeUint32(uint32(total))
	for _, imp := range m.funcImports {
		ret = append(ret, encoding.EncodeName(imp.Module)...)
		ret = append(ret, encoding.EncodeName(imp.Name)...)
		ret = append(ret, wasm.ExternTypeFunc)
		ret = append(ret, leb128.EncodeUint32(imp.TypeIndex)...)
	}
	for _, imp := range m.tableImports {
		ret = append(ret, encoding.EncodeName(imp.Module)...)
		ret = append(ret, encoding.EncodeName(imp.Name)...)
		ret = append(ret, wasm.ExternTypeTable)
		ret = append(ret, encoding.EncodeTableType(imp.Type.RefType, imp.Type.Limits.Min, imp.Type.Limits.Max)...)
	}
	for _, imp := range m.memImports {
		ret = append(ret, encoding.EncodeName(imp.Module)...)
		ret = append(ret, encoding.EncodeName(imp.Name)...)
		ret = append(ret, wasm.ExternTypeMemory)
		ret = append(ret, encoding.EncodeMemoryType(imp.Type.Limits.Min, imp.Type.Limits.Max)...)
	}
	for _, imp := range m.globalImports {
		ret = append(ret, encoding.EncodeName(imp.Module)...)
		ret = append(ret, encoding.EncodeName(imp.Name)...)
		ret = append(ret, wasm.ExternTypeGlobal)
		ret = append(ret, encoding.EncodeGlobalType(imp.Type.ValType, imp.Type.Mutable)...)
	}
	return ret
}
