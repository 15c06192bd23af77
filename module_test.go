package wasmcraft

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmcraft/wasmcraft/internal/leb128"
)

func TestModule_emptyModule(t *testing.T) {
	m := NewModule()
	bytes, err := m.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bytes)
}

func TestModule_oneFunctionType(t *testing.T) {
	m := NewModule()
	_, err := m.FunctionType(FuncType{
		Params:  []ValueType{ValueTypeI32, ValueTypeI32},
		Results: []ValueType{ValueTypeI32},
	})
	require.NoError(t, err)

	bytes, err := m.Assemble()
	require.NoError(t, err)

	header := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	typeSection := []byte{0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f}
	require.Equal(t, append(header, typeSection...), bytes)
}

func TestModule_functionTypeDeduplication(t *testing.T) {
	m := NewModule()
	ft := FuncType{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI32}}
	i1, err := m.FunctionType(ft)
	require.NoError(t, err)
	i2, err := m.FunctionType(ft)
	require.NoError(t, err)
	i3, err := m.FunctionType(ft)
	require.NoError(t, err)
	require.Equal(t, i1, i2)
	require.Equal(t, i2, i3)
	require.Len(t, m.types, 1)
}

func TestModule_importOrderingGate(t *testing.T) {
	m := NewModule()
	ft, err := m.FunctionType(FuncType{})
	require.NoError(t, err)

	body := NewExpression()
	_, err = m.Function(Function{TypeIndex: ft, Body: body})
	require.NoError(t, err)

	_, err = m.ImportFunction("env", "f", ft)
	require.Error(t, err)
	require.IsType(t, &OrderingError{}, err)
	// state is unchanged: no import was recorded
	require.Len(t, m.funcImports, 0)
}

func TestModule_indexSpaceMonotonicity(t *testing.T) {
	m := NewModule()
	ft, err := m.FunctionType(FuncType{})
	require.NoError(t, err)
	fi, err := m.ImportFunction("env", "f0", ft)
	require.NoError(t, err)
	require.Equal(t, uint32(0), fi)

	for k := uint32(0); k < 3; k++ {
		idx, err := m.Function(Function{TypeIndex: ft, Body: NewExpression()})
		require.NoError(t, err)
		require.Equal(t, uint32(1)+k, idx) // 1 import precedes declarations
	}
}

func TestModule_exportIndexValidation(t *testing.T) {
	m := NewModule()
	err := m.ExportFunction("f", 0)
	require.Error(t, err)
	require.IsType(t, &IndexOutOfRangeError{}, err)
}

func TestModule_duplicateExportRejected(t *testing.T) {
	m := NewModule()
	ft, err := m.FunctionType(FuncType{})
	require.NoError(t, err)
	idx, err := m.Function(Function{TypeIndex: ft, Body: NewExpression()})
	require.NoError(t, err)

	require.NoError(t, m.ExportFunction("f", idx))
	err = m.ExportFunction("f", idx)
	require.Error(t, err)
	require.IsType(t, &DuplicateExportError{}, err)
}

func TestModule_globalTypeMismatch(t *testing.T) {
	m := NewModule()
	init := NewExpression()
	require.NoError(t, init.I64Const(1))
	_, err := m.Global(GlobalType{ValType: ValueTypeI32, Mutable: false}, init)
	require.Error(t, err)
	require.IsType(t, &TypeMismatchError{}, err)
}

func TestModule_globalOK(t *testing.T) {
	m := NewModule()
	init := NewExpression()
	require.NoError(t, init.I32Const(7))
	idx, err := m.Global(GlobalType{ValType: ValueTypeI32, Mutable: true}, init)
	require.NoError(t, err)
	require.Equal(t, uint32(0), idx)
}

func TestModule_frozenAfterAssemble(t *testing.T) {
	m := NewModule()
	_, err := m.Assemble()
	require.NoError(t, err)

	_, err = m.FunctionType(FuncType{})
	require.ErrorIs(t, err, ErrFrozen)

	_, err = m.Assemble()
	require.ErrorIs(t, err, ErrFrozen)
}

func TestModule_dataCountPrecedesCode(t *testing.T) {
	m := NewModule()
	_, err := m.PassiveData([]byte{0x42})
	require.NoError(t, err)
	ft, err := m.FunctionType(FuncType{})
	require.NoError(t, err)
	_, err = m.Function(Function{TypeIndex: ft, Body: NewExpression()})
	require.NoError(t, err)

	bytes, err := m.Assemble()
	require.NoError(t, err)

	dataCountIdx := indexOfByte(bytes, 12)
	codeIdx := indexOfByte(bytes, 10)
	require.Greater(t, dataCountIdx, 0)
	require.Greater(t, codeIdx, dataCountIdx)
}

// indexOfByte returns the index of the first section header whose id byte is id, scanning from
// after the 8-byte preamble; used only to assert relative ordering in tests.
func indexOfByte(b []byte, id byte) int {
	for i := 8; i < len(b); {
		if b[i] == id {
			return i
		}
		size, n, err := leb128.LoadUint32(b[i+1:])
		if err != nil {
			return -1
		}
		i += 1 + int(n) + int(size)
	}
	return -1
}

func TestModule_helloWorldWASI(t *testing.T) {
	m := NewModule()

	fdWriteType, err := m.FunctionType(FuncType{
		Params:  []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32, ValueTypeI32},
		Results: []ValueType{ValueTypeI32},
	})
	require.NoError(t, err)
	fdWrite, err := m.ImportFunction("wasi_unstable", "fd_write", fdWriteType)
	require.NoError(t, err)
	require.Equal(t, uint32(0), fdWrite)

	memIdx, err := m.Memory(MemoryType{Limits: Limits{Min: 1}})
	require.NoError(t, err)
	require.NoError(t, m.ExportMemory("memory", memIdx))

	offset := NewExpression()
	require.NoError(t, offset.I32Const(8))
	_, err = m.ActiveData([]byte("hello world\n"), 0, offset)
	require.NoError(t, err)

	startType, err := m.FunctionType(FuncType{})
	require.NoError(t, err)
	require.Equal(t, uint32(1), startType)

	body := NewExpression()
	require.NoError(t, body.I32Const(0))
	require.NoError(t, body.I32Const(8))
	require.NoError(t, body.I32Store(2, 0))
	require.NoError(t, body.I32Const(4))
	require.NoError(t, body.I32Const(12))
	require.NoError(t, body.I32Store(2, 0))
	require.NoError(t, body.I32Const(1))
	require.NoError(t, body.I32Const(0))
	require.NoError(t, body.I32Const(1))
	require.NoError(t, body.I32Const(20))
	require.NoError(t, body.Call(fdWrite))
	require.NoError(t, body.Drop())

	start, err := m.Function(Function{TypeIndex: startType, Body: body})
	require.NoError(t, err)
	require.Equal(t, uint32(1), start)
	require.NoError(t, m.ExportFunction("_start", start))

	bytes, err := m.Assemble()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bytes[:8])
	// Data count (id 12) must precede Code (id 10).
	require.Greater(t, indexOfByte(bytes, 10), indexOfByte(bytes, 12))
}

func TestModule_elementSegmentFuncIndices(t *testing.T) {
	m := NewModule()
	tableIdx, err := m.Table(TableType{RefType: RefTypeFuncref, Limits: Limits{Min: 1}})
	require.NoError(t, err)
	ft, err := m.FunctionType(FuncType{})
	require.NoError(t, err)
	fn, err := m.Function(Function{TypeIndex: ft, Body: NewExpression()})
	require.NoError(t, err)

	offset := NewExpression()
	require.NoError(t, offset.I32Const(0))
	_, err = m.ElementSegmentIndices(ElementModeActive, tableIdx, offset, []uint32{fn})
	require.NoError(t, err)
}

func TestModule_elementSegmentExprsTypeMismatch(t *testing.T) {
	m := NewModule()
	_, err := m.Table(TableType{RefType: RefTypeExternref, Limits: Limits{Min: 1}})
	require.NoError(t, err)

	badExpr := NewExpression()
	require.NoError(t, badExpr.RefFunc(0))
	_, err = m.ElementSegmentExprs(ElementModeDeclarative, 0, nil, RefTypeExternref, []*Expression{badExpr})
	require.Error(t, err)
	require.IsType(t, &TypeMismatchError{}, err)
}

func TestModule_limitsMaxLessThanMinFails(t *testing.T) {
	m := NewModule()
	max := uint32(0)
	_, err := m.Memory(MemoryType{Limits: Limits{Min: 1, Max: &max}})
	require.Error(t, err)
	require.IsType(t, &EncodeError{}, err)
}

func TestModule_importTableLimitsValidated(t *testing.T) {
	m := NewModule()
	max := uint32(2)
	_, err := m.ImportTable("env", "t", TableType{RefType: RefTypeFuncref, Limits: Limits{Min: 5, Max: &max}})
	require.Error(t, err)
	require.IsType(t, &EncodeError{}, err)
}

func TestModule_importMemoryLimitsValidated(t *testing.T) {
	m := NewModule()
	max := uint32(0)
	_, err := m.ImportMemory("env", "m", MemoryType{Limits: Limits{Min: 1, Max: &max}})
	require.Error(t, err)
	require.IsType(t, &EncodeError{}, err)
}
