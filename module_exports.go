package wasmcraft

import "github.com/wasmcraft/wasmcraft/internal/wasm"

func (m *Module) insertExport(name string, kind wasm.ExternType, index uint32) error {
	if err := m.checkFrozen(); err != nil {
		return err
	}
	if _, dup := m.exportNames[name]; dup {
		return newDuplicateExportError(name)
	}
	m.exportNames[name] = struct{}{}
	m.exports = append(m.exports, export{name: name, kind: kind, index: index})
	return nil
}

// ExportFunction exports the function at combined-space index idx under name.
func (m *Module) ExportFunction(name string, idx uint32) error {
	if idx >= m.combinedFuncCount() {
		return newIndexOutOfRangeError("function", idx, m.combinedFuncCount())
	}
	return m.insertExport(name, wasm.ExternTypeFunc, idx)
}

// ExportTable exports the table at combined-space index idx under name.
func (m *Module) ExportTable(name string, idx uint32) error {
	if idx >= m.combinedTableCount() {
		return newIndexOutOfRangeError("table", idx, m.combinedTableCount())
	}
	return m.insertExport(name, wasm.ExternTypeTable, idx)
}

// ExportMemory exports the memory at combined-space index idx under name.
func (m *Module) ExportMemory(name string, idx uint32) error {
	if idx >= m.combinedMemoryCount() {
		return newIndexOutOfRangeError("memory", idx, m.combinedMemoryCount())
	}
	return m.insertExport(name, wasm.ExternTypeMemory, idx)
}

// ExportGlobal exports the global at combined-space index idx under name.
func (m *Module) ExportGlobal(name string, idx uint32) error {
	if idx >= m.combinedGlobalCount() {
		return newIndexOutOfRangeError("global", idx, m.combinedGlobalCount())
	}
	return m.insertExport(name, wasm.ExternTypeGlobal, idx)
}
