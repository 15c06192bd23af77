package wasmcraft

// PassiveData inserts a passive data segment holding data verbatim. Returns the assigned data
// index, used as the operand of memory.init / data.drop.
func (m *Module) PassiveData(data []byte) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	idx := uint32(len(m.data))
	m.data = append(m.data, dataSegment{passive: true, init: data})
	return idx, nil
}

// ActiveData inserts an active data segment: data is copied into memory memIndex at the offset
// given by offset, at instantiation time. offset is finalized (and thereby consumed) as part of
// insertion. Returns the assigned data index.
func (m *Module) ActiveData(data []byte, memIndex uint32, offset *Expression) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	if memIndex >= m.combinedMemoryCount() {
		return 0, newIndexOutOfRangeError("memory", memIndex, m.combinedMemoryCount())
	}
	offsetBytes, err := offset.Finalize()
	if err != nil {
		return 0, err
	}
	idx := uint32(len(m.data))
	m.data = append(m.data, dataSegment{memoryIndex: memIndex, offsetExpr: offsetBytes, init: data})
	return idx, nil
}

func (m *Module) checkElementOffset(mode ElementMode, tableIndex uint32, offset *Expression) ([]byte, error) {
	if mode != ElementModeActive {
		return nil, nil
	}
	if tableIndex >= m.combinedTableCount() {
		return nil, newIndexOutOfRangeError("table", tableIndex, m.combinedTableCount())
	}
	if offset == nil {
		return nil, newStructureError("active element segment requires an offset expression")
	}
	return offset.Finalize()
}

// ElementSegmentIndices inserts an element segment whose initializers are bare function indices
// (always funcref). offset and tableIndex are only meaningful when mode is ElementModeActive.
// Returns the assigned element index, used as the operand of table.init / elem.drop.
func (m *Module) ElementSegmentIndices(mode ElementMode, tableIndex uint32, offset *Expression, funcIndices []uint32) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	offsetBytes, err := m.checkElementOffset(mode, tableIndex, offset)
	if err != nil {
		return 0, err
	}
	for _, fi := range funcIndices {
		if fi >= m.combinedFuncCount() {
			return 0, newIndexOutOfRangeError("function", fi, m.combinedFuncCount())
		}
	}
	idx := uint32(len(m.elements))
	m.elements = append(m.elements, elementSegment{
		mode:        mode,
		tableIndex:  tableIndex,
		offsetExpr:  offsetBytes,
		refType:     RefTypeFuncref,
		funcIndices: funcIndices,
	})
	return idx, nil
}

// ElementSegmentExprs inserts an element segment whose initializers are constant expressions
// (ref.null or ref.func), allowing refType to be externref as well as funcref. Each expression
// in exprs is finalized (and thereby consumed) as part of insertion; any that is recognized as a
// constant expression of a type other than refType fails the call with TypeMismatchError.
func (m *Module) ElementSegmentExprs(mode ElementMode, tableIndex uint32, offset *Expression, refType RefType, exprs []*Expression) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	offsetBytes, err := m.checkElementOffset(mode, tableIndex, offset)
	if err != nil {
		return 0, err
	}
	encoded := make([][]byte, len(exprs))
	for i, ex := range exprs {
		if got, ok := ex.constResultType(m); ok && got != refType {
			return 0, newTypeMismatchError(refType, got)
		}
		bytes, err := ex.Finalize()
		if err != nil {
			return 0, err
		}
		encoded[i] = bytes
	}
	idx := uint32(len(m.elements))
	m.elements = append(m.elements, elementSegment{
		mode:       mode,
		tableIndex: tableIndex,
		offsetExpr: offsetBytes,
		refType:    refType,
		useExprs:   true,
		exprs:      encoded,
	})
	return idx, nil
}
