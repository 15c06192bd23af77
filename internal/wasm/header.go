package wasm

// Magic is the 4-byte preamble (literally "\0asm") every Wasm binary module starts with.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#binary-magic
var Magic = []byte{0x00, 0x61, 0x73, 0x6d}

// Version is the binary format version. It has not changed across the 1.0 and 2.0 specs.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#binary-version
var Version = []byte{0x01, 0x00, 0x00, 0x00}
