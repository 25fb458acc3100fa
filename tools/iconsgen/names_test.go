// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"fmt"
	"testing"
)

var _ = fmt.Print

func TestComponentNames(t *testing.T) {
	for path, expected := range map[string]string{
		"lang_go.svg": "lang_go", "a/b/Folder-Open.SVG": "folder-open", "x.y.svg": "x.y", "npm": "npm",
	} {
		if actual := IconName(path); actual != expected {
			t.Fatalf("IconName(%#v) = %#v != %#v", path, actual, expected)
		}
	}
	for _, tc := range []struct{ name, prefix, suffix, expected string }{
		{"lang_go", "", "", "LangGo"},
		{"lang_typescript_def", "", "", "LangTypescriptDef"},
		{"folder-open", "", "", "FolderOpen"},
		{"json", "", "icon", "JsonIcon"},
		{"git", "nerd", "", "NerdGit"},
		{"3d_model", "", "", "Icon3DModel"},
	} {
		actual, err := ComponentName(tc.name, tc.prefix, tc.suffix)
		if err != nil {
			t.Fatalf("Failed to make component name for %#v: %s", tc.name, err)
		}
		if actual != tc.expected {
			t.Fatalf("ComponentName(%#v, %#v, %#v) = %#v != %#v", tc.name, tc.prefix, tc.suffix, actual, tc.expected)
		}
	}
	for _, name := range []string{"", "---", "$$"} {
		if ans, err := ComponentName(name, "", ""); err == nil {
			t.Fatalf("No error for icon name %#v, got: %#v", name, ans)
		}
	}
	if actual := markup_const("LangGo"); actual != "langGoSVG" {
		t.Fatalf("Wrong markup constant: %s", actual)
	}
	if actual := words("LangTypescriptDef"); actual != "lang typescript def" {
		t.Fatalf("Wrong words: %s", actual)
	}
}
