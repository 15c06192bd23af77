package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// LocalsGroup is one run of locals sharing a value type, as stored in the Wasm binary format's
// compressed locals encoding: a count followed by the repeated type.
type LocalsGroup struct {
	Count uint32
	Type  wasm.ValueType
}

// EncodeLocals returns the "vector of locals" preceding a function body: an unsigned LEB128
// count of groups followed by each group's (count, valtype) pair.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#code-section
func EncodeLocals(groups []LocalsGroup) []byte {
	ret := leb128.EncodeUint32(uint32(len(groups)))
	for _, g := range groups {
		ret = append(ret, leb128.EncodeUint32(g.Count)...)
		ret = append(ret, g.Type)
	}
	return ret
}
