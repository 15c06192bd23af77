package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

func TestEncodeValTypes(t *testing.T) {
	require.Equal(t, []byte{0}, EncodeValTypes(nil))
	require.Equal(t, []byte{1, wasm.ValueTypeI32}, EncodeValTypes([]wasm.ValueType{wasm.ValueTypeI32}))
	require.Equal(t, []byte{2, wasm.ValueTypeI32, wasm.ValueTypeI64},
		EncodeValTypes([]wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64}))
}

func TestEncodeFunctionType(t *testing.T) {
	got := EncodeFunctionType([]wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, []wasm.ValueType{wasm.ValueTypeI32})
	require.Equal(t, []byte{0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f}, got)
}

func TestEncodeLimits(t *testing.T) {
	require.Equal(t, []byte{0x00, 0x01}, EncodeLimits(1, nil))
	max := uint32(2)
	require.Equal(t, []byte{0x01, 0x01, 0x02}, EncodeLimits(1, &max))
}

func TestEncodeTableType(t *testing.T) {
	got := EncodeTableType(wasm.RefTypeFuncref, 1, nil)
	require.Equal(t, []byte{wasm.RefTypeFuncref, 0x00, 0x01}, got)
}

func TestEncodeMemoryType(t *testing.T) {
	got := EncodeMemoryType(1, nil)
	require.Equal(t, []byte{0x00, 0x01}, got)
}

func TestEncodeGlobalType(t *testing.T) {
	require.Equal(t, []byte{wasm.ValueTypeI32, wasm.MutabilityConst}, EncodeGlobalType(wasm.ValueTypeI32, false))
	require.Equal(t, []byte{wasm.ValueTypeI32, wasm.MutabilityVar}, EncodeGlobalType(wasm.ValueTypeI32, true))
}

func TestEncodeExport(t *testing.T) {
	got := EncodeExport("f", wasm.ExternTypeFunc, 3)
	require.Equal(t, []byte{0x01, 'f', wasm.ExternTypeFunc, 0x03}, got)
}

func TestEncodeName(t *testing.T) {
	require.Equal(t, []byte{0x05, 'h', 'e', 'l', 'l', 'o'}, EncodeName("hello"))
	require.Equal(t, []byte{0x00}, EncodeName(""))
}

func TestEncodeEmptyBlockType(t *testing.T) {
	require.Equal(t, []byte{wasm.BlockTypeEmpty}, EncodeEmptyBlockType())
}

func TestEncodeValTypeBlockType(t *testing.T) {
	require.Equal(t, []byte{wasm.ValueTypeI32}, EncodeValTypeBlockType(wasm.ValueTypeI32))
}

func TestEncodeTypeIndexBlockType(t *testing.T) {
	got := EncodeTypeIndexBlockType(5)
	require.Equal(t, []byte{0x05}, got)
}
