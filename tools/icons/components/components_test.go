// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package components

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/kovidgoyal/fileicons/tools/icons"
	"github.com/kovidgoyal/fileicons/tools/iconsgen"
)

var _ = fmt.Print

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestGeneratedComponentsAreCurrent(t *testing.T) {
	cfg, err := iconsgen.Load("iconsgen.yaml")
	if err != nil {
		t.Fatal(err)
	}
	res, err := iconsgen.Run(cfg, iconsgen.Check)
	if err != nil {
		t.Fatalf("%s, run go generate to update it", err)
	}
	if len(res.Assets) != len(ByName) {
		t.Fatalf("%d assets but %d registered components", len(res.Assets), len(ByName))
	}
}

func TestForIcon(t *testing.T) {
	for name := range ByName {
		icon := icons.Icon(name)
		if icon != icons.DefaultIcon && icon.Glyph() == icons.DefaultIcon.Glyph() {
			t.Fatalf("The asset %s is not named after a known icon", name)
		}
		if !Has(icon) {
			t.Fatalf("Has(%s) is false", name)
		}
	}
	if actual := render(t, ForIcon(icons.LANG_GO)); actual != langGoSVG {
		t.Fatalf("Wrong markup for %s: %s", icons.LANG_GO, actual)
	}
	if actual := render(t, ForIcon(icons.Icon("no such icon"))); actual != fileSVG {
		t.Fatalf("Unknown icon did not fall back to the default: %s", actual)
	}
	if Has(icons.Icon("no such icon")) {
		t.Fatalf("Has() true for unknown icon")
	}
	if render(t, Readme()) != render(t, Markdown()) {
		t.Fatalf("Identical assets render differently")
	}
	for path, expected := range map[string]string{
		"main.go":            langGoSVG,
		"/src/index.d.ts":    langTypescriptDefSVG,
		"app.spec.ts":        testSVG,
		"a/package.json":     npmSVG,
		"dist.tar.gz":        compressedSVG,
		"C:\\x\\config.yaml": yamlSVG,
		"notes.unknown":      fileSVG,
	} {
		if actual := render(t, ForPath(path)); actual != expected {
			t.Fatalf("Wrong markup for %s: %s", path, actual)
		}
	}
	actual := render(t, ForIcon(icons.FOLDER, templ.Attributes{"class": "icon", "width": 24}))
	if !strings.HasPrefix(actual, `<svg class="icon" width="24" xmlns=`) {
		t.Fatalf("Attributes not added to the root element: %s", actual)
	}
}
