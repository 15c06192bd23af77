package wasmcraft

// FunctionType inserts ft into the type section, deduplicating against any structurally equal
// type already present. Returns the assigned (or matching existing) type index.
func (m *Module) FunctionType(ft FuncType) (uint32, error) {
	if err := m.checkFrozen(); err != nil {
		return 0, err
	}
	for i, existing := range m.types {
		if existing.Equal(ft) {
			return uint32(i), nil
		}
	}
	m.types = append(m.types, ft)
	return uint32(len(m.types) - 1), nil
}

func (m *Module) checkTypeIndex(idx uint32) error {
	if idx >= uint32(len(m.types)) {
		return newIndexOutOfRangeError("type", idx, uint32(len(m.types)))
	}
	return nil
}
