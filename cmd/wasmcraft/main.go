// Command wasmcraft assembles the "hello world" WASI module used as a worked example
// throughout the wasmcraft library's tests and writes the resulting bytes to a file.
package main

import (
	"fmt"
	"os"

	"github.com/wasmcraft/wasmcraft"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: wasmcraft <output.wasm>")
		os.Exit(1)
	}
	bytes, err := buildHelloWorld()
	if err != nil {
		fmt.Fprintln(os.Stderr, "assemble:", err)
		os.Exit(1)
	}
	if err := writeFile(os.Args[1], bytes); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
}

// buildHelloWorld assembles a module that writes "hello world\n" to stdout via
// wasi_unstable's fd_write, the same module TestModule_helloWorldWASI assembles and checks for
// its header and section order.
func buildHelloWorld() ([]byte, error) {
	m := wasmcraft.NewModule()

	fdWriteType, err := m.FunctionType(wasmcraft.FuncType{
		Params:  []wasmcraft.ValueType{wasmcraft.ValueTypeI32, wasmcraft.ValueTypeI32, wasmcraft.ValueTypeI32, wasmcraft.ValueTypeI32},
		Results: []wasmcraft.ValueType{wasmcraft.ValueTypeI32},
	})
	if err != nil {
		return nil, err
	}
	fdWrite, err := m.ImportFunction("wasi_unstable", "fd_write", fdWriteType)
	if err != nil {
		return nil, err
	}

	memIdx, err := m.Memory(wasmcraft.MemoryType{Limits: wasmcraft.Limits{Min: 1}})
	if err != nil {
		return nil, err
	}
	if err := m.ExportMemory("memory", memIdx); err != nil {
		return nil, err
	}

	msg := []byte("hello world\n")
	offset := wasmcraft.NewExpression()
	if err := offset.I32Const(8); err != nil {
		return nil, err
	}
	if _, err := m.ActiveData(msg, 0, offset); err != nil {
		return nil, err
	}

	startType, err := m.FunctionType(wasmcraft.FuncType{})
	if err != nil {
		return nil, err
	}

	body := wasmcraft.NewExpression()
	// iovec[0] = {ptr: 8, len: 12}
	mustEmit(body.I32Const(0))
	mustEmit(body.I32Const(8))
	mustEmit(body.I32Store(2, 0))
	mustEmit(body.I32Const(4))
	mustEmit(body.I32Const(int32(len(msg))))
	mustEmit(body.I32Store(2, 0))
	// fd_write(1, iovs=0, iovs_len=1, nwritten=20)
	mustEmit(body.I32Const(1))
	mustEmit(body.I32Const(0))
	mustEmit(body.I32Const(1))
	mustEmit(body.I32Const(20))
	mustEmit(body.Call(fdWrite))
	mustEmit(body.Drop())

	start, err := m.Function(wasmcraft.Function{TypeIndex: startType, Body: body})
	if err != nil {
		return nil, err
	}
	if err := m.ExportFunction("_start", start); err != nil {
		return nil, err
	}

	return m.Assemble()
}

// mustEmit panics on error from an Expression method; every call site above passes fixed,
// well-formed immediates, so a failure here would mean a bug in this file, not bad input.
func mustEmit(err error) {
	if err != nil {
		panic(err)
	}
}
