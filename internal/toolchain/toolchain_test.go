package toolchain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

// build skips the test when the host cannot produce 32-bit executables.
func build(t *testing.T, assembly string) string {
	t.Helper()
	if !Available() {
		t.Skipf("%s not available", CC)
	}
	out := filepath.Join(t.TempDir(), "prog")
	if err := Build(context.Background(), assembly, out); err != nil {
		t.Skipf("cannot build 32-bit executables here: %v", err)
	}
	return out
}

func TestBuildAndExec(t *testing.T) {
	out := build(t, ".globl main\nmain:\nmovl $39, %eax\nret\n")

	code, err := Exec(context.Background(), out)
	be.Err(t, err, nil)
	be.Equal(t, code, 39)
}

func TestExecMissing(t *testing.T) {
	_, err := Exec(context.Background(), filepath.Join(t.TempDir(), "missing"))
	be.Err(t, err, "toolchain: run")
}

func TestBuildRejectsBadAssembly(t *testing.T) {
	if !Available() {
		t.Skipf("%s not available", CC)
	}
	// Confirm 32-bit builds work at all before asserting on a failure.
	build(t, ".globl main\nmain:\nret\n")

	err := Build(context.Background(), "main:\nbogus %eax\n", filepath.Join(t.TempDir(), "bad"))
	be.Err(t, err, "failed")
}
