// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package fileicons

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestParseVersion(t *testing.T) {
	for raw, expected := range map[string]VersionType{
		"0.3.0": {0, 3, 0}, "v1.12.7": {1, 12, 7}, "v2.0.1+dirty": {2, 0, 1},
	} {
		actual, err := parse_version(raw)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Failed to parse %s:\n%s", raw, diff)
		}
	}
	if _, err := parse_version("devel"); err == nil {
		t.Fatalf("Invalid version parsed")
	}
	if VersionString == "" {
		t.Fatalf("VersionString not set")
	}
}
