package ieee754

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeFloat32(t *testing.T) {
	for _, v := range []float32{
		0, 100, -100, 1, -1,
		100.01234124, -100.01234124,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
	} {
		encoded := EncodeFloat32(v)
		require.Len(t, encoded, 4)
		require.Equal(t, v, DecodeFloat32(encoded))
	}
}

func TestEncodeDecodeFloat64(t *testing.T) {
	for _, v := range []float64{
		0, 100, -100, 1, -1,
		100.01234124, -100.01234124,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1),
	} {
		encoded := EncodeFloat64(v)
		require.Len(t, encoded, 8)
		require.Equal(t, v, DecodeFloat64(encoded))
	}
}
