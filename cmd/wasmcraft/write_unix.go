//go:build unix

package main

import "golang.org/x/sys/unix"

// writeFile opens path directly through the kernel's file descriptor interface rather than
// os.WriteFile, mirroring how this module would be used as one stage of a larger toolchain that
// already talks to the filesystem through unix, not os.
func writeFile(path string, data []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	for len(data) > 0 {
		n, err := unix.Write(fd, data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
