// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestIconForPath(t *testing.T) {
	for path, expected := range map[string]Icon{
		"path/to/package.json":     NPM,
		"PACKAGE.JSON":             NPM,
		"Dockerfile":               DOCKER,
		`C:\src\project\Makefile`:  MAKE,
		"src/main.go":              LANG_GO,
		"index.d.ts":               LANG_TYPESCRIPT_DEF,
		"lib/INDEX.D.TS":           LANG_TYPESCRIPT_DEF,
		"index.ts":                 LANG_TYPESCRIPT,
		"widget.spec.ts":           TEST,
		"archive.tar.gz":           COMPRESSED,
		"style.CSS":                CSS3,
		"unknown.xyzzy":            DefaultIcon,
		"README":                   README,
		"NOTES":                    DefaultIcon,
		"docs/README.md":           README,
		"notes.md":                 MARKDOWN,
		".gitignore":               GIT,
		"":                         DefaultIcon,
		"dir/":                     DefaultIcon,
		"some.dir/other.thing.yml": YAML,
	} {
		if actual := IconForPath(path); actual != expected {
			t.Fatalf("Wrong icon for %#v: %#v != %#v", path, actual, expected)
		}
	}
}

func TestExtension(t *testing.T) {
	type ext struct {
		Ext   string
		Found bool
	}
	r := Default()
	no_compound := NewResolver(Tables{Extensions: map[string]Icon{"gz": COMPRESSED}})
	for _, tc := range []struct {
		r        *Resolver
		path     string
		expected ext
	}{
		{r, "README", ext{"", false}},
		{r, "", ext{"", false}},
		{r, ".gitignore", ext{"gitignore", true}},
		{r, "archive.tar.gz", ext{"tar.gz", true}},
		{no_compound, "archive.tar.gz", ext{"gz", true}},
		{r, "ARCHIVE.TAR.GZ", ext{"TAR.GZ", true}},
		{r, "a/b.c/archive", ext{"", false}},
		{r, "style.CSS", ext{"CSS", true}},
		{r, "weird.name.xyzzy", ext{"xyzzy", true}},
		{r, "file.", ext{"", true}},
		{r, "dir.d/", ext{"d/", true}},
	} {
		e, found := tc.r.Extension(tc.path)
		if diff := cmp.Diff(tc.expected, ext{e, found}); diff != "" {
			t.Fatalf("Wrong extension for %#v:\n%s", tc.path, diff)
		}
	}
}

func TestHasExtension(t *testing.T) {
	for _, tc := range []struct {
		path, expected string
		ans            bool
	}{
		{"style.CSS", ".css", true},
		{"style.css", "CSS", true},
		{"style.css", "..css", false},
		{"README", "", false},
		{"README", "readme", false},
		{"archive.tar.gz", "tar.gz", true},
		{"archive.tar.gz", ".gz", false},
		{"x/.gitignore", ".gitignore", true},
	} {
		if actual := HasExtension(tc.path, tc.expected); actual != tc.ans {
			t.Fatalf("HasExtension(%#v, %#v) = %v", tc.path, tc.expected, actual)
		}
	}
}

func TestSuggestions(t *testing.T) {
	for path, expected := range map[string][]Icon{
		"package.json":       {NPM, JSON},
		"Cargo.lock":         {LANG_RUST, LOCK},
		"go.mod":             {LANG_GO},
		"main.go":            {LANG_GO},
		"unknown.xyzzy":      {DefaultIcon},
		"":                   {DefaultIcon},
		"src/types/api.d.ts": {LANG_TYPESCRIPT_DEF},
	} {
		if diff := cmp.Diff(expected, Suggestions(path)); diff != "" {
			t.Fatalf("Wrong suggestions for %#v:\n%s", path, diff)
		}
	}
	r := NewResolver(Tables{
		FileNames:  map[string]Icon{"build.yaml": YAML},
		Extensions: map[string]Icon{"yaml": YAML},
	})
	if diff := cmp.Diff([]Icon{YAML}, r.Suggestions("BUILD.yaml")); diff != "" {
		t.Fatalf("Duplicate suggestions not removed:\n%s", diff)
	}
}

func TestBuiltinTablesResolve(t *testing.T) {
	r := Default()
	for name, expected := range FileNameMap() {
		if name != strings.ToLower(name) {
			t.Fatalf("File name key is not lowercase: %#v", name)
		}
		for _, q := range []string{name, strings.ToUpper(name), "some/dir/" + name} {
			if actual := r.IconFor(q); actual != expected {
				t.Fatalf("Wrong icon for file name %#v: %#v != %#v", q, actual, expected)
			}
		}
	}
	for ext, expected := range ExtensionMap() {
		if ext != strings.ToLower(ext) || strings.HasPrefix(ext, ".") {
			t.Fatalf("Extension key is not normalized: %#v", ext)
		}
		q := "zz_not_a_known_name." + ext
		if actual := r.IconFor(q); actual != expected {
			t.Fatalf("Wrong icon for %#v: %#v != %#v", q, actual, expected)
		}
		if !r.HasExtension(q, "."+strings.ToUpper(ext)) {
			t.Fatalf("%#v does not have the extension: %#v", q, ext)
		}
	}
	for name := range DirectoryNameMap() {
		if name != strings.ToLower(name) {
			t.Fatalf("Directory key is not lowercase: %#v", name)
		}
	}
}

func TestCompoundExtensionPriority(t *testing.T) {
	// the algorithm must not depend on which compound keys exist
	for _, compound := range []string{"d.ts", "spec.ts", "min.js", "tar.gz"} {
		_, simple, _ := strings.Cut(compound, ".")
		r := NewResolver(Tables{Extensions: map[string]Icon{
			compound: "compound", simple: "simple",
		}})
		if actual := r.IconFor("x." + compound); actual != "compound" {
			t.Fatalf("Compound extension %#v lost to %#v", compound, actual)
		}
		if actual := r.IconFor("x.other." + simple); actual != "simple" {
			t.Fatalf("Simple extension %#v not used: %#v", simple, actual)
		}
		if actual := r.IconFor("x." + simple); actual != "simple" {
			t.Fatalf("Simple extension %#v not used: %#v", simple, actual)
		}
	}
}

func TestFileNamePriority(t *testing.T) {
	r := NewResolver(Tables{
		FileNames:  map[string]Icon{"Special.d.TS": "special"},
		Extensions: map[string]Icon{"d.ts": "compound", "ts": "simple"},
		Default:    "nothing",
	})
	for path, expected := range map[string]Icon{
		"a/b/special.d.ts": "special",
		"other.d.ts":       "compound",
		"other.ts":         "simple",
		"other":            "nothing",
	} {
		if actual := r.IconFor(path); actual != expected {
			t.Fatalf("Wrong icon for %#v: %#v != %#v", path, actual, expected)
		}
	}
}

func TestResolverIsolatedFromCallerMaps(t *testing.T) {
	exts := map[string]Icon{"go": LANG_GO, "GO": LANG_C}
	r := NewResolver(Tables{Extensions: exts})
	exts["go"] = LANG_RUST
	exts["py"] = LANG_PYTHON
	if actual := r.IconFor("main.go"); actual != LANG_GO {
		t.Fatalf("Resolver changed after caller mutated its map: %#v", actual)
	}
	if actual := r.IconFor("main.py"); actual != DefaultIcon {
		t.Fatalf("Resolver picked up a key added after creation: %#v", actual)
	}
}

func TestConcurrentResolution(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if IconForPath("index.d.ts") != LANG_TYPESCRIPT_DEF {
					t.Error("wrong icon under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGlyphs(t *testing.T) {
	if LANG_GO.Glyph() != 0xe65e {
		t.Fatalf("Wrong glyph for %s: %x", LANG_GO, LANG_GO.Glyph())
	}
	if Icon("no such icon").Glyph() != DefaultIcon.Glyph() {
		t.Fatalf("Unknown icons must use the default glyph")
	}
	check := func(m map[string]Icon) {
		for k, v := range m {
			if _, found := glyphs()[v]; !found {
				t.Fatalf("No glyph for %s used by %#v", v, k)
			}
		}
	}
	check(FileNameMap())
	check(ExtensionMap())
	check(DirectoryNameMap())
}

func TestIconForFileWithMode(t *testing.T) {
	tdir := t.TempDir()
	mk := func(name string) string {
		p := filepath.Join(tdir, name)
		if err := os.WriteFile(p, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}
	target := mk("main.go")
	if err := os.Mkdir(filepath.Join(tdir, "node_modules"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(tdir, "link")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(tdir, "node_modules"), filepath.Join(tdir, "dirlink")); err != nil {
		t.Fatal(err)
	}
	icon_for := func(name string, follow bool) Icon {
		p := filepath.Join(tdir, name)
		st, err := os.Lstat(p)
		if err != nil {
			t.Fatal(err)
		}
		return IconForFileWithMode(p, st.Mode(), follow)
	}
	actual := []Icon{
		icon_for("main.go", false), icon_for("node_modules", false),
		icon_for("link", false), icon_for("link", true), icon_for("dirlink", true),
	}
	expected := []Icon{LANG_GO, FOLDER_NPM, SYMLINK, LANG_GO, SYMLINK_TO_DIR}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("Wrong icons for special files:\n%s", diff)
	}
	if actual := Default().DirectoryIcon("some/where/else"); actual != FOLDER {
		t.Fatalf("Wrong default directory icon: %#v", actual)
	}
	if l, err := net.Listen("unix", filepath.Join(tdir, "sock")); err == nil {
		defer l.Close()
		if actual := icon_for("sock", false); actual != SOCKET {
			t.Fatalf("Wrong icon for socket: %#v", actual)
		}
	}
}
