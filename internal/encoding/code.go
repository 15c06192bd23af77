package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
)

// EncodeFunctionBody returns one entry of the Code section: the byte length of (locals vector +
// body), followed by that payload. body must already be a finalized expression — terminated by
// its own `end` opcode.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#code-section
func EncodeFunctionBody(locals []LocalsGroup, body []byte) []byte {
	payload := append(EncodeLocals(locals), body...)
	return append(leb128.EncodeUint32(uint32(len(payload))), payload...)
}
