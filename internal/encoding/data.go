package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
)

// EncodeDataSegment returns a data segment entry. When passive is true, memoryIndex and
// offsetExpr are ignored and the segment is encoded as flag 0x01 followed by the raw bytes.
// Otherwise it is active: flag 0x00 (memory index 0, the common case) or 0x02 (explicit memory
// index) followed by the constant offset expression and the raw bytes.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#data-section
func EncodeDataSegment(passive bool, memoryIndex uint32, offsetExpr []byte, data []byte) []byte {
	var ret []byte
	switch {
	case passive:
		ret = append(ret, 0x01)
	case memoryIndex == 0:
		ret = append(ret, 0x00)
		ret = append(ret, offsetExpr...)
	default:
		ret = append(ret, 0x02)
		ret = append(ret, leb128.EncodeUint32(memoryIndex)...)
		ret = append(ret, offsetExpr...)
	}
	ret = append(ret, leb128.EncodeUint32(uint32(len(data)))...)
	return append(ret, data...)
}
