// Package wasmcraft assembles WebAssembly 2.0 binary modules from an in-memory description.
//
// A client builds up a Module by inserting function types, imports, tables, memories, globals,
// functions and their bodies, exports, and data/element segments, then calls Assemble to
// serialize the whole thing into the canonical Wasm binary layout. Function bodies and constant
// initializer expressions (globals, active segment offsets) are built with Expression, which
// exposes one method per Wasm 2.0 instruction (excluding SIMD and other post-2.0 proposals).
//
// The package performs no decoding, validation beyond structural index/type checks, optimization,
// or execution — it only emits bytes that a conforming Wasm 2.0 decoder can read back.
package wasmcraft
