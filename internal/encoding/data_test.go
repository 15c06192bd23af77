package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDataSegment_passive(t *testing.T) {
	got := EncodeDataSegment(true, 0, nil, []byte{0xaa, 0xbb})
	require.Equal(t, []byte{0x01, 0x02, 0xaa, 0xbb}, got)
}

func TestEncodeDataSegment_activeMemoryZero(t *testing.T) {
	offset := []byte{0x41, 0x00, 0x0b} // i32.const 0; end
	got := EncodeDataSegment(false, 0, offset, []byte{0x01})
	want := append([]byte{0x00}, offset...)
	want = append(want, 0x01, 0x01)
	require.Equal(t, want, got)
}

func TestEncodeDataSegment_activeExplicitMemory(t *testing.T) {
	offset := []byte{0x41, 0x00, 0x0b}
	got := EncodeDataSegment(false, 2, offset, []byte{0x01})
	require.Equal(t, byte(0x02), got[0])
	require.Equal(t, byte(0x02), got[1]) // leb128(memoryIndex=2)
}
