//go:build !unix

package main

import "os"

// writeFile falls back to the standard library on platforms x/sys/unix doesn't cover.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
