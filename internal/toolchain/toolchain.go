// Package toolchain turns generated assembly into a native executable using
// the system C compiler, and runs it.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CC is the compiler driver used to assemble and link. The listing is
// 32-bit code, so it is built with -m32 and linked against the C runtime,
// which calls the generated function as main.
var CC = "gcc"

// ErrNotFound is returned when the compiler driver is not on PATH.
var ErrNotFound = errors.New("toolchain: compiler driver not found")

// Available reports whether the compiler driver can be found.
func Available() bool {
	_, err := exec.LookPath(CC)
	return err == nil
}

// Build assembles assembly and links it into an executable at outputPath.
func Build(ctx context.Context, assembly string, outputPath string) error {
	if !Available() {
		return ErrNotFound
	}

	tmpDir, err := os.MkdirTemp("", "ucc-build-")
	if err != nil {
		return fmt.Errorf("toolchain: create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	asmPath := filepath.Join(tmpDir, "program.s")
	if err := os.WriteFile(asmPath, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("toolchain: write assembly: %w", err)
	}

	cmd := exec.CommandContext(ctx, CC, "-m32", asmPath, "-o", outputPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("toolchain: %s failed: %w\n%s", CC, err, output)
	}
	return nil
}

// Exec runs the executable at path and returns its exit status. A program
// that exits non-zero is not an error; the status is the low byte of the
// value main returned.
func Exec(ctx context.Context, path string) (int, error) {
	err := exec.CommandContext(ctx, path).Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("toolchain: run %s: %w", path, err)
}
