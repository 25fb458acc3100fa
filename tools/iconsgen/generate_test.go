// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func write_assets(t *testing.T, dir string, assets map[string]string) {
	t.Helper()
	for name, data := range assets {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func test_config(t *testing.T) *Config {
	tdir := t.TempDir()
	cfg := Defaults()
	cfg.Source = filepath.Join(tdir, "svg")
	cfg.Output = filepath.Join(tdir, "out", "icons.go")
	cfg.Package = "icons"
	cfg.Exclude = []string{"**/_*.svg"}
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := test_config(t)
	write_assets(t, cfg.Source, map[string]string{
		"box.svg":          `<svg width="16" height="16" viewBox="0 0 16 16"><path d="M0 0h16v16H0z"/></svg>`,
		"sub/square.svg":   "<!-- same as box -->\n<svg viewBox=\"0 0 16 16\">\n  <path d=\"M0 0h16v16H0z\"/>\n</svg>\n",
		"sub/dot_mark.svg": `<svg viewBox='0 0 2 2'><circle r="1"/></svg>`,
		"sub/_draft.svg":   `<svg/>`,
		"sub/readme.txt":   `not an icon`,
		"sub/tick.svg":     "<svg><text>a`b</text></svg>",
	})
	res, err := Run(cfg, DryRun)
	if err != nil {
		t.Fatal(err)
	}
	type summary struct{ Path, Name, Component, AliasOf string }
	var actual []summary
	for _, a := range res.Assets {
		actual = append(actual, summary{a.Path, a.Name, a.Component, a.AliasOf})
	}
	if diff := cmp.Diff([]summary{
		{"box.svg", "box", "Box", ""},
		{"sub/dot_mark.svg", "dot_mark", "DotMark", ""},
		{"sub/square.svg", "square", "Square", "Box"},
		{"sub/tick.svg", "tick", "Tick", ""},
	}, actual); diff != "" {
		t.Fatalf("Wrong assets collected:\n%s", diff)
	}
	if res.Aliases() != 1 {
		t.Fatalf("Wrong number of aliases: %d", res.Aliases())
	}
	if _, err = os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Fatalf("Dry run wrote the output file")
	}
	src := string(res.Source)
	for _, q := range []string{
		"// Code generated by fileicons generate; DO NOT EDIT.\n\npackage icons\n",
		"// Box renders the box icon.\nfunc Box(attrs ...templ.Attributes) templ.Component {\n\treturn svgicon.New(boxSVG, attrs...)\n}\n",
		"// DotMark renders the dot mark icon.\n",
		"// Square renders the same icon as [Box].\nfunc Square(attrs ...templ.Attributes) templ.Component {\n\treturn Box(attrs...)\n}\n",
		"\t\"box\":      Box,\n",
		"\t\"dot_mark\": DotMark,\n",
		"\tboxSVG     = `<svg viewBox=\"0 0 16 16\"><path d=\"M0 0h16v16H0z\"/></svg>`\n",
		"\tdotMarkSVG = `<svg viewBox=\"0 0 2 2\"><circle r=\"1\"/></svg>`\n",
		"\ttickSVG    = \"<svg><text>a`b</text></svg>\"\n",
	} {
		if !strings.Contains(src, q) {
			t.Fatalf("%#v not found in generated source:\n%s", q, src)
		}
	}
	if strings.Contains(src, "squareSVG") {
		t.Fatalf("Markup of an alias was emitted:\n%s", src)
	}
	if _, err = parser.ParseFile(token.NewFileSet(), cfg.Output, res.Source, parser.ParseComments); err != nil {
		t.Fatalf("Generated source does not parse: %s", err)
	}

	if res, err = Run(cfg, Check); !errors.Is(err, ErrStale) || !res.Changed {
		t.Fatalf("Check of missing output did not report staleness: %v", err)
	}
	if res, err = Run(cfg, Write); err != nil || !res.Changed {
		t.Fatalf("First write did not change output: %v", err)
	}
	if data, err := os.ReadFile(cfg.Output); err != nil || string(data) != src {
		t.Fatalf("Output file does not have the generated source: %v", err)
	}
	if res, err = Run(cfg, Write); err != nil || res.Changed {
		t.Fatalf("Second write changed output: %v", err)
	}
	if _, err = Run(cfg, Check); err != nil {
		t.Fatalf("Check of current output failed: %s", err)
	}
	write_assets(t, cfg.Source, map[string]string{"extra.svg": `<svg/>`})
	if _, err = Run(cfg, Check); !errors.Is(err, ErrStale) {
		t.Fatalf("Check after adding an asset did not report staleness: %v", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	cfg := test_config(t)
	if _, err := Run(cfg, DryRun); !os.IsNotExist(err) {
		t.Fatalf("Unexpected error for missing source: %v", err)
	}
	write_assets(t, cfg.Source, map[string]string{"sub/_skip.svg": `<svg/>`})
	if _, err := Run(cfg, DryRun); !errors.Is(err, ErrNoAssets) {
		t.Fatalf("Unexpected error with no assets: %v", err)
	}
	write_assets(t, cfg.Source, map[string]string{
		"good.svg":     `<svg/>`,
		"page.svg":     `<html/>`,
		"broken.svg":   `<svg><g>`,
		"sub/Good.svg": `<svg><g/></svg>`,
		"a-b.svg":      `<svg/>`,
		"a_b.svg":      `<svg/>`,
	})
	_, err := Run(cfg, DryRun)
	if err == nil {
		t.Fatalf("Bad assets did not cause an error")
	}
	if !errors.Is(err, ErrNotSVG) {
		t.Fatalf("Non SVG asset not reported: %s", err)
	}
	var ae *AssetError
	if !errors.As(err, &ae) {
		t.Fatalf("Error is not an AssetError: %#v", err)
	}
	for _, q := range []string{
		"page.svg: " + ErrNotSVG.Error(),
		"broken.svg: unclosed element",
		`sub/Good.svg: icon name "good" is already used by good.svg`,
		"a_b.svg: component name AB is already used by a-b.svg",
	} {
		if !strings.Contains(err.Error(), q) {
			t.Fatalf("%#v not in error: %s", q, err)
		}
	}
	if _, err = os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Fatalf("Failed run wrote the output file")
	}
}
