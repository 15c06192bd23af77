package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

func TestEncodeLocals(t *testing.T) {
	require.Equal(t, []byte{0x00}, EncodeLocals(nil))
	require.Equal(t, []byte{0x01, 0x02, 0x7f}, EncodeLocals([]LocalsGroup{{Count: 2, Type: wasm.ValueTypeI32}}))
	require.Equal(t, []byte{0x02, 0x01, 0x7f, 0x03, 0x7e},
		EncodeLocals([]LocalsGroup{{Count: 1, Type: wasm.ValueTypeI32}, {Count: 3, Type: wasm.ValueTypeI64}}))
}

func TestEncodeFunctionBody(t *testing.T) {
	body := []byte{0x0b} // empty expression, just `end`
	got := EncodeFunctionBody(nil, body)
	// size byte + empty locals vector (0x00) + body
	require.Equal(t, []byte{0x02, 0x00, 0x0b}, got)
}

func TestEncodeFunctionBody_withLocals(t *testing.T) {
	locals := []LocalsGroup{{Count: 1, Type: wasm.ValueTypeI32}}
	body := []byte{0x0b}
	got := EncodeFunctionBody(locals, body)
	payload := append(EncodeLocals(locals), body...)
	require.Equal(t, append([]byte{byte(len(payload))}, payload...), got)
}
