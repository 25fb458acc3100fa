// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var _ = fmt.Print

func TestWriteFileIfChanged(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.go")
	changed, err := WriteFileIfChanged(p, []byte("one"), 0o640)
	if err != nil || !changed {
		t.Fatalf("New file not written: %v %v", changed, err)
	}
	st, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o640 {
		t.Fatalf("Wrong permissions for new file: %o", st.Mode().Perm())
	}
	if changed, err = WriteFileIfChanged(p, []byte("one")); err != nil || changed {
		t.Fatalf("Unchanged file rewritten: %v %v", changed, err)
	}
	if changed, err = WriteFileIfChanged(p, []byte("two"), 0o600); err != nil || !changed {
		t.Fatalf("Changed file not written: %v %v", changed, err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Fatalf("Wrong contents: %#v", string(data))
	}
	if st, err = os.Stat(p); err != nil || st.Mode().Perm() != 0o640 {
		t.Fatalf("Permissions of existing file not kept: %v %v", st.Mode().Perm(), err)
	}
	entries, err := os.ReadDir(filepath.Dir(p))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Temporary files left behind: %d entries", len(entries))
	}
}
