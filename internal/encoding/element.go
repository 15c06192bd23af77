package encoding

import (
	"github.com/wasmcraft/wasmcraft/internal/leb128"
	"github.com/wasmcraft/wasmcraft/internal/wasm"
)

// elemKindFuncref is the only defined value of the one-byte "elemkind" field used by the
// func-index flavored element segment flags 1, 2 and 3 (flag 0 omits it). It exists purely for forward
// compatibility in the spec and always reads back as funcref.
const elemKindFuncref = 0x00

// EncodeElementSegmentIndices returns an element segment whose initializers are bare function
// indices — always implicitly funcref. tableIndex and offsetExpr are only meaningful when mode
// is active; declarative and passive segments ignore them.
//
// Selects flag 0 (active, table 0, no elemkind byte), 1 (passive), 2 (active, explicit table) or
// 3 (declarative), per the Wasm 2.0 element section flag matrix.
func EncodeElementSegmentIndices(mode wasm.ElementMode, tableIndex uint32, offsetExpr []byte, funcIndices []uint32) []byte {
	var ret []byte
	switch mode {
	case wasm.ElementModeActive:
		if tableIndex == 0 {
			ret = append(ret, 0x00)
			ret = append(ret, offsetExpr...)
		} else {
			ret = append(ret, 0x02)
			ret = append(ret, leb128.EncodeUint32(tableIndex)...)
			ret = append(ret, offsetExpr...)
			ret = append(ret, elemKindFuncref)
		}
	case wasm.ElementModePassive:
		ret = append(ret, 0x01, elemKindFuncref)
	case wasm.ElementModeDeclarative:
		ret = append(ret, 0x03, elemKindFuncref)
	}
	ret = append(ret, leb128.EncodeUint32(uint32(len(funcIndices)))...)
	for _, idx := range funcIndices {
		ret = append(ret, leb128.EncodeUint32(idx)...)
	}
	return ret
}

// EncodeElementSegmentExprs returns an element segment whose initializers are constant
// expressions (each a `ref.null`/`ref.func` instruction already terminated by `end`), allowing
// refType to be externref as well as funcref.
//
// Selects flag 4 (active, table 0, funcref implied), 5 (passive), 6 (active, explicit table) or
// 7 (declarative), per the Wasm 2.0 element section flag matrix.
func EncodeElementSegmentExprs(mode wasm.ElementMode, tableIndex uint32, offsetExpr []byte, refType wasm.RefType, exprs [][]byte) []byte {
	var ret []byte
	switch mode {
	case wasm.ElementModeActive:
		if tableIndex == 0 && refType == wasm.RefTypeFuncref {
			ret = append(ret, 0x04)
			ret = append(ret, offsetExpr...)
		} else {
			ret = append(ret, 0x06)
			ret = append(ret, leb128.EncodeUint32(tableIndex)...)
			ret = append(ret, offsetExpr...)
			ret = append(ret, refType)
		}
	case wasm.ElementModePassive:
		ret = append(ret, 0x05, refType)
	case wasm.ElementModeDeclarative:
		ret = append(ret, 0x07, refType)
	}
	ret = append(ret, leb128.EncodeUint32(uint32(len(exprs)))...)
	for _, e := range exprs {
		ret = append(ret, e...)
	}
	return ret
}
