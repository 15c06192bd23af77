package wasmcraft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpression_Finalize_appendsEnd(t *testing.T) {
	e := NewExpression()
	require.NoError(t, e.I32Const(42))
	require.NoError(t, e.Drop())
	bytes, err := e.Finalize()
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x2a, 0x1a, 0x0b}, bytes)
}

func TestExpression_Finalize_empty(t *testing.T) {
	e := NewExpression()
	bytes, err := e.Finalize()
	require.NoError(t, err)
	require.Equal(t, []byte{0x0b}, bytes)
}

func TestExpression_Finalize_twiceFails(t *testing.T) {
	e := NewExpression()
	_, err := e.Finalize()
	require.NoError(t, err)
	_, err = e.Finalize()
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)
}

func TestExpression_emitAfterFinalizeFails(t *testing.T) {
	e := NewExpression()
	_, err := e.Finalize()
	require.NoError(t, err)
	err = e.Nop()
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)
}

func TestExpression_finalizeWithOpenBlockFails(t *testing.T) {
	e := NewExpression()
	require.NoError(t, e.Block(BlockTypeEmpty()))
	_, err := e.Finalize()
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)
}

func TestExpression_blockLoopIfDepth(t *testing.T) {
	e := NewExpression()
	require.Equal(t, 0, e.Depth())
	require.NoError(t, e.Block(BlockTypeEmpty()))
	require.Equal(t, 1, e.Depth())
	require.NoError(t, e.Loop(BlockTypeEmpty()))
	require.Equal(t, 2, e.Depth())
	require.NoError(t, e.End())
	require.Equal(t, 1, e.Depth())
	require.NoError(t, e.End())
	require.Equal(t, 0, e.Depth())
	_, err := e.Finalize()
	require.NoError(t, err)
}

func TestExpression_elseRequiresOpenIf(t *testing.T) {
	e := NewExpression()
	err := e.Else()
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)

	e = NewExpression()
	require.NoError(t, e.Block(BlockTypeEmpty()))
	err = e.Else()
	require.Error(t, err)

	e = NewExpression()
	require.NoError(t, e.If(BlockTypeEmpty()))
	require.NoError(t, e.Else())
	require.NoError(t, e.End())
	_, err = e.Finalize()
	require.NoError(t, err)
}

func TestExpression_endWithoutOpenFails(t *testing.T) {
	e := NewExpression()
	err := e.End()
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)
}

func TestExpression_branchBeyondDepthFails(t *testing.T) {
	e := NewExpression()
	require.NoError(t, e.Block(BlockTypeEmpty()))
	require.NoError(t, e.Br(0))
	require.NoError(t, e.Br(1)) // branches to the implicit function-level block, still valid
	err := e.Br(2)
	require.Error(t, err)
	require.IsType(t, &StructureError{}, err)
}

func TestExpression_brTableValidatesEveryLabel(t *testing.T) {
	e := NewExpression()
	require.NoError(t, e.Block(BlockTypeEmpty()))
	require.NoError(t, e.BrTable([]uint32{0, 1}, 0))
	err := e.BrTable([]uint32{0}, 5)
	require.Error(t, err)
	err = e.BrTable([]uint32{5}, 0)
	require.Error(t, err)
}

func TestExpression_constResultType(t *testing.T) {
	for _, c := range []struct {
		name  string
		build func(e *Expression) error
		want  ValueType
	}{
		{"i32.const", func(e *Expression) error { return e.I32Const(1) }, ValueTypeI32},
		{"i64.const", func(e *Expression) error { return e.I64Const(1) }, ValueTypeI64},
		{"f32.const", func(e *Expression) error { return e.F32Const(1) }, ValueTypeF32},
		{"f64.const", func(e *Expression) error { return e.F64Const(1) }, ValueTypeF64},
		{"ref.null funcref", func(e *Expression) error { return e.RefNull(RefTypeFuncref) }, ValueTypeFuncref},
		{"ref.func", func(e *Expression) error { return e.RefFunc(0) }, ValueTypeFuncref},
	} {
		t.Run(c.name, func(t *testing.T) {
			e := NewExpression()
			require.NoError(t, c.build(e))
			got, ok := e.constResultType(NewModule())
			require.True(t, ok)
			require.Equal(t, c.want, got)
		})
	}
}

func TestExpression_constResultType_notRecognized(t *testing.T) {
	e := NewExpression()
	require.NoError(t, e.I32Const(1))
	require.NoError(t, e.I32Const(2))
	require.NoError(t, e.I32Add())
	_, ok := e.constResultType(NewModule())
	require.False(t, ok)
}

func TestExpression_globalGetConstResultType(t *testing.T) {
	m := NewModule()
	_, err := m.ImportGlobal("env", "base", GlobalType{ValType: ValueTypeI32, Mutable: false})
	require.NoError(t, err)

	e := NewExpression()
	require.NoError(t, e.GlobalGet(0))
	got, ok := e.constResultType(m)
	require.True(t, ok)
	require.Equal(t, ValueType(ValueTypeI32), got)
}
