package build

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Copies the produced binary to its destination.
//
// The destination is created or truncated, receives the source's bytes and
// then the source's permission bits. The source is not modified. A failed
// copy may leave a partial destination behind. All failures wrap
// [ErrPlacement] together with the underlying filesystem error.
func place(src, dest string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPlacement, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s is not a regular file", ErrPlacement, src)
	}

	if destInfo, err := os.Stat(dest); err == nil && os.SameFile(info, destInfo) {
		return 0, fmt.Errorf("%w: %s and %s are the same file", ErrPlacement, src, dest)
	}

	slog.Debug("copy", "src", src, "dest", dest, "mode", info.Mode().Perm().String())

	n, err := copyFile(src, dest, info.Mode().Perm())
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrPlacement, err)
	}

	return n, nil
}

// Writes the contents of src to dest and sets dest's permission bits.
func copyFile(src, dest string, perm os.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, err
	}

	// OpenFile only applies perm, masked by the umask, to new files.
	if err := out.Chmod(perm); err != nil {
		out.Close()
		return n, err
	}

	return n, out.Close()
}
