package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

func TestEncodeElementSegmentIndices_flags(t *testing.T) {
	offset := []byte{0x41, 0x00, 0x0b}

	got := EncodeElementSegmentIndices(wasm.ElementModeActive, 0, offset, []uint32{7})
	want := append([]byte{0x00}, offset...)
	want = append(want, 0x01, 0x07)
	require.Equal(t, want, got)

	got = EncodeElementSegmentIndices(wasm.ElementModePassive, 0, nil, []uint32{7})
	require.Equal(t, []byte{0x01, elemKindFuncref, 0x01, 0x07}, got)

	got = EncodeElementSegmentIndices(wasm.ElementModeDeclarative, 0, nil, nil)
	require.Equal(t, []byte{0x03, elemKindFuncref, 0x00}, got)

	got = EncodeElementSegmentIndices(wasm.ElementModeActive, 3, offset, []uint32{7})
	want = []byte{0x02, 0x03}
	want = append(want, offset...)
	want = append(want, elemKindFuncref, 0x01, 0x07)
	require.Equal(t, want, got)
}

func TestEncodeElementSegmentExprs_flags(t *testing.T) {
	offset := []byte{0x41, 0x00, 0x0b}
	expr := []byte{0xd0, 0x70, 0x0b} // ref.null funcref; end

	got := EncodeElementSegmentExprs(wasm.ElementModeActive, 0, offset, wasm.RefTypeFuncref, [][]byte{expr})
	want := append([]byte{0x04}, offset...)
	want = append(want, 0x01)
	want = append(want, expr...)
	require.Equal(t, want, got)

	got = EncodeElementSegmentExprs(wasm.ElementModePassive, 0, nil, wasm.RefTypeExternref, [][]byte{expr})
	require.Equal(t, append([]byte{0x05, wasm.RefTypeExternref, 0x01}, expr...), got)

	got = EncodeElementSegmentExprs(wasm.ElementModeDeclarative, 0, nil, wasm.RefTypeFuncref, nil)
	require.Equal(t, []byte{0x07, wasm.RefTypeFuncref, 0x00}, got)

	got = EncodeElementSegmentExprs(wasm.ElementModeActive, 2, offset, wasm.RefTypeExternref, [][]byte{expr})
	want = []byte{0x06, 0x02}
	want = append(want, offset...)
	want = append(want, wasm.RefTypeExternref, 0x01)
	want = append(want, expr...)
	require.Equal(t, want, got)
}
