package wasm

// ElementMode classifies how an element segment's contents reach their target table.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#element-section
type ElementMode byte

const (
	// ElementModeActive segments copy their contents into a table at instantiation time, at an
	// offset given by a constant expression.
	ElementModeActive ElementMode = iota
	// ElementModePassive segments are inert until referenced by table.init.
	ElementModePassive
	// ElementModeDeclarative segments are never copied; they only make their contents'
	// func indices valid operands of ref.func within the module's code.
	ElementModeDeclarative
)
