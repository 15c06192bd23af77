package wasmcraft

import (
	"errors"
	"fmt"
)

// IndexOutOfRangeError is returned when a type, function, table, memory, or global index
// argument to a Module method exceeds the currently known space for its kind. Data, element,
// local, table, and function indices passed to Expression methods are not range-checked, and a
// branch label beyond the current nesting depth fails with StructureError instead.
type IndexOutOfRangeError struct {
	kind  string
	index uint32
	size  uint32
}

func newIndexOutOfRangeError(kind string, index, size uint32) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{kind: kind, index: index, size: size}
}

// Kind names the index space that was violated, e.g. "type" or "function".
func (e *IndexOutOfRangeError) Kind() string { return e.kind }

// Index is the offending index value.
func (e *IndexOutOfRangeError) Index() uint32 { return e.index }

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range (%d known)", e.kind, e.index, e.size)
}

// OrderingError is returned when an import operation is attempted after a declaration of the
// same entity kind has already been inserted — imports must precede declarations in each index
// space.
type OrderingError struct {
	kind string
}

func newOrderingError(kind string) *OrderingError {
	return &OrderingError{kind: kind}
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("cannot import %s after a %s declaration has been added", e.kind, e.kind)
}

// StructureError is returned for expression-builder misuse: an unmatched end, an else outside an
// open if, a branch target beyond the current nesting depth, an emit or finalize after the
// expression was already finalized, or inserting into a Module an expression that still has an
// open block, loop, or if (Module finalizes expressions at insertion, so Assemble never sees one).
// It is also returned for an active element segment given no offset expression.
type StructureError struct {
	reason string
}

func newStructureError(reason string) *StructureError {
	return &StructureError{reason: reason}
}

func (e *StructureError) Error() string {
	return "invalid expression structure: " + e.reason
}

// TypeMismatchError is returned when a global initializer's evaluated type disagrees with the
// global's declared type, or an element segment's initializer type disagrees with its declared
// reference type.
type TypeMismatchError struct {
	want ValueType
	got  ValueType
}

func newTypeMismatchError(want, got ValueType) *TypeMismatchError {
	return &TypeMismatchError{want: want, got: got}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", valueTypeName(e.want), valueTypeName(e.got))
}

// EncodeError is returned when a value cannot be legally encoded in the binary format: limits
// whose maximum is less than their minimum. Integer operands are uint32 or int64 values that
// always fit their encodings, so they never produce it.
type EncodeError struct {
	reason string
}

func newEncodeError(reason string) *EncodeError {
	return &EncodeError{reason: reason}
}

func (e *EncodeError) Error() string {
	return "encode error: " + e.reason
}

// DuplicateExportError is returned when an export name has already been used by a previous
// export of any kind. The Wasm spec forbids duplicate export names at validation time; this
// library rejects them eagerly at insertion instead of silently emitting an invalid module.
type DuplicateExportError struct {
	name string
}

func newDuplicateExportError(name string) *DuplicateExportError {
	return &DuplicateExportError{name: name}
}

func (e *DuplicateExportError) Error() string {
	return fmt.Sprintf("duplicate export name %q", e.name)
}

// ErrFrozen is returned by any insertion method called after Assemble has been called on the
// Module. A Module has no unfreeze operation — once assembled it is a read-only record of what
// was emitted.
var ErrFrozen = errors.New("wasmcraft: module is frozen; assemble already called")
