package wasmcraft

import "github.com/wasmcraft/wasmcraft/internal/encoding"

func validateLimits(l Limits) error {
	if l.Max != nil && *l.Max < l.Min {
		return newEncodeError("limits maximum is less than minimum")
	}
	return nil
}

// Table inserts a table declaration. Returns the assigned combined-space table index.
func (m *Module) Table(tt TableType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if err := validateLimits(tt.Limits); err != nil {
		return 0, err
	}
	idx := m.combinedTableCount()
	m.tables = append(m.tables, tt)
	return idx, nil
}

// Memory inserts a memory declaration. Returns the assigned combined-space memory index.
func (m *Module) Memory(mt MemoryType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if err := validateLimits(mt.Limits); err != nil {
		return 0, err
	}
	idx := m.combinedMemoryCount()
	m.memories = append(m.memories, mt)
	return idx, nil
}

// Global inserts a global declaration. init is finalized (and thereby consumed) as part of
// insertion. If init is recognized as a constant expression of known type (see
// Expression.constResultType), that type must match gt.ValType or the call fails with
// TypeMismatchError.
func (m *Module) Global(gt GlobalType, init *Expression) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if got, ok := init.constResultType(m); ok && got != gt.ValType {
		return 0, newTypeMismatchError(gt.ValType, got)
	}
	bytes, err := init.Finalize()
	if err != nil {
		return 0, err
	}
	idx := m.combinedGlobalCount()
	m.globals = append(m.globals, global{typ: gt, init: bytes})
	return idx, nil
}

// Function inserts a function declaration. fn.TypeIndex must be a known type index, and
// fn.Body is finalized (and thereby consumed) as part of insertion. Returns the assigned
// combined-space function index.
func (m *Module) Function(fn Function) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if err := m.checkTypeIndex(fn.TypeIndex); err != nil {
		return 0, err
	}
	body, err := fn.Body.Finalize()
	if err != nil {
		return 0, err
	}
	groups := make([]encoding.LocalsGroup, len(fn.Locals))
	for i, l := range fn.Locals {
		groups[i] = encoding.LocalsGroup{Count: l.Count, Type: l.Type}
	}
	idx := m.combinedFuncCount()
	m.functions = append(m.functions, function{typeIndex: fn.TypeIndex, locals: groups, body: body})
	return idx, nil
}
