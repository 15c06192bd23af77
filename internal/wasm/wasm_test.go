package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d}, Magic)
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, Version)
}

func TestInstructionName(t *testing.T) {
	require.Equal(t, "unreachable", InstructionName(OpcodeUnreachable))
	require.Equal(t, "br", InstructionName(OpcodeBr))
	require.Equal(t, "ref.func", InstructionName(OpcodeRefFunc))
	require.Equal(t, "i32.extend8_s", InstructionName(OpcodeI32Extend8S))
}

func TestValueTypeName(t *testing.T) {
	require.Equal(t, "i32", ValueTypeName(ValueTypeI32))
	require.Equal(t, "funcref", ValueTypeName(ValueTypeFuncref))
	require.Equal(t, "unknown", ValueTypeName(0xff))
}

func TestElementMode(t *testing.T) {
	require.NotEqual(t, ElementModeActive, ElementModePassive)
	require.NotEqual(t, ElementModePassive, ElementModeDeclarative)
}
