package encoding

// EncodeMemoryType returns a memory type (limits, measured in pages) in Wasm binary format.
// Shared memory is a threads-proposal feature and out of scope here, so it is not encoded.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/types.html#memory-types
func EncodeMemoryType(min uint32, max *uint32) []byte {
	return EncodeLimits(min, max)
}
