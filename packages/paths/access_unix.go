//go:build unix

package paths

import "golang.org/x/sys/unix"

// Access checks use the real uid/gid, matching what the process could
// actually do with the path.

func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func canWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

func canExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
