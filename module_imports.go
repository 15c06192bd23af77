package wasmcraft

// ImportFunction inserts a function import. It fails with OrderingError if any function
// declaration has already been inserted, and with IndexOutOfRangeError if typeIdx is not a
// known type index. Returns the assigned combined-space function index.
func (m *Module) ImportFunction(module, name string, typeIdx uint32) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if len(m.functions) > 0 {
		return 0, newOrderingError("function")
	}
	if err := m.checkTypeIndex(typeIdx); err != nil {
		return 0, err
	}
	idx := uint32(len(m.funcImports))
	m.funcImports = append(m.funcImports, FuncImport{Module: module, Name: name, TypeIndex: typeIdx})
	return idx, nil
}

// ImportTable inserts a table import. It fails with OrderingError if any table declaration has
// already been inserted. Returns the assigned combined-space table index.
func (m *Module) ImportTable(module, name string, tt TableType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if len(m.tables) > 0 {
		return 0, newOrderingError("table")
	}
	if err := validateLimits(tt.Limits); err != nil {
		return 0, err
	}
	idx := uint32(len(m.tableImports))
	m.tableImports = append(m.tableImports, TableImport{Module: module, Name: name, Type: tt})
	return idx, nil
}

// ImportMemory inserts a memory import. It fails with OrderingError if any memory declaration
// has already been inserted. Returns the assigned combined-space memory index.
func (m *Module) ImportMemory(module, name string, mt MemoryType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if len(m.memories) > 0 {
		return 0, newOrderingError("memory")
	}
	if err := validateLimits(mt.Limits); err != nil {
		return 0, err
	}
	idx := uint32(len(m.memImports))
	m.memImports = append(m.memImports, MemoryImport{Module: module, Name: name, Type: mt})
	return idx, nil
}

// ImportGlobal inserts a global import. It fails with OrderingError if any global declaration
// has already been inserted. Returns the assigned combined-space global index.
func (m *Module) ImportGlobal(module, name string, gt GlobalType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if len(m.globals) > 0 {
		return 0, newOrderingError("global")
	}
	idx := uint32(len(m.globalImports))
	m.globalImports = append(m.globalImports, GlobalImport{Module: module, Name: name, Type: gt})
	return idx, nil
}
