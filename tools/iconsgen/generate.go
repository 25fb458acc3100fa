// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

// Package iconsgen turns a directory of SVG icons into a Go source file
// with one templ component per icon.
package iconsgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"text/template"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zeebo/xxh3"
	"golang.org/x/tools/imports"

	"github.com/kovidgoyal/fileicons/tools/utils"
)

var _ = fmt.Print

var (
	ErrNoAssets = errors.New("no SVG assets found")
	ErrStale    = errors.New("generated file is out of date")
)

// AssetError is a failure to convert a single asset.
type AssetError struct {
	Path string
	Err  error
}

func (self *AssetError) Error() string { return self.Path + ": " + self.Err.Error() }
func (self *AssetError) Unwrap() error { return self.Err }

type Asset struct {
	// Slash separated path relative to the source directory
	Path      string
	Name      string
	Component string
	Markup    string
	// Component of an earlier asset with identical markup, if any
	AliasOf string
	Digest  uint64
}

func (self *Asset) Words() string       { return words(self.Component) }
func (self *Asset) MarkupConst() string { return markup_const(self.Component) }

type Mode int

const (
	Write Mode = iota
	// Check compares the output file with what would be generated
	Check
	// DryRun only generates the source
	DryRun
)

type Result struct {
	Assets  []*Asset
	Source  []byte
	Changed bool
	Elapsed time.Duration
}

func (self *Result) Aliases() (ans int) {
	for _, a := range self.Assets {
		if a.AliasOf != "" {
			ans++
		}
	}
	return
}

func (self *Config) asset_paths() ([]string, error) {
	fsys := os.DirFS(self.Source)
	seen := make(map[string]bool)
	var ans []string
	for _, pat := range self.Include {
		matches, err := doublestar.Glob(fsys, pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to glob %#v in %s: %w", pat, self.Source, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			excluded := false
			for _, x := range self.Exclude {
				if matched, _ := doublestar.Match(x, m); matched {
					excluded = true
					break
				}
			}
			if !excluded {
				ans = append(ans, m)
			}
		}
	}
	slices.Sort(ans)
	return ans, nil
}

// Collect reads and transforms every asset in the source directory. Assets
// that fail are reported together as joined *AssetError values.
func Collect(cfg *Config) ([]*Asset, error) {
	if st, err := os.Stat(cfg.Source); err != nil {
		return nil, err
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", cfg.Source)
	}
	paths, err := cfg.asset_paths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAssets, cfg.Source)
	}
	log := cfg.logger()
	opts := cfg.TransformOptions()
	ans := make([]*Asset, 0, len(paths))
	var errs []error
	by_name := make(map[string]string, len(paths))
	by_component := make(map[string]string, len(paths))
	by_digest := make(map[uint64]*Asset, len(paths))
	for _, rel := range paths {
		fail := func(err error) { errs = append(errs, &AssetError{Path: rel, Err: err}) }
		src, err := os.ReadFile(filepath.Join(cfg.Source, filepath.FromSlash(rel)))
		if err != nil {
			fail(err)
			continue
		}
		a := &Asset{Path: rel, Name: IconName(rel)}
		if prev, found := by_name[a.Name]; found {
			fail(fmt.Errorf("icon name %#v is already used by %s", a.Name, prev))
			continue
		}
		if a.Component, err = ComponentName(a.Name, cfg.Prefix, cfg.Suffix); err != nil {
			fail(err)
			continue
		}
		if prev, found := by_component[a.Component]; found {
			fail(fmt.Errorf("component name %s is already used by %s", a.Component, prev))
			continue
		}
		if a.Markup, err = Transform(src, opts); err != nil {
			fail(err)
			continue
		}
		a.Digest = xxh3.HashString(a.Markup)
		if prev := by_digest[a.Digest]; prev != nil && prev.Markup == a.Markup {
			a.AliasOf = prev.Component
			log.Debug("duplicate icon", "path", rel, "same_as", prev.Path)
		} else {
			by_digest[a.Digest] = a
		}
		by_name[a.Name] = rel
		by_component[a.Component] = rel
		log.Debug("converted icon", "path", rel, "component", a.Component, "bytes", len(a.Markup))
		ans = append(ans, a)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ans, nil
}

func go_literal(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

var source_template = template.Must(template.New("components").Funcs(template.FuncMap{"literal": go_literal}).Parse(
	`// Code generated by fileicons generate; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/a-h/templ"
	svgicon "{{.Runtime}}"
)
{{range .Assets}}
{{- if .AliasOf}}
// {{.Component}} renders the same icon as [{{.AliasOf}}].
func {{.Component}}(attrs ...templ.Attributes) templ.Component {
	return {{.AliasOf}}(attrs...)
}
{{else}}
// {{.Component}} renders the {{.Words}} icon.
func {{.Component}}(attrs ...templ.Attributes) templ.Component {
	return svgicon.New({{.MarkupConst}}, attrs...)
}
{{end}}
{{- end}}
// ByName maps icon names to their components.
var ByName = map[string]func(...templ.Attributes) templ.Component{
{{- range .Assets}}
	{{printf "%q" .Name}}: {{.Component}},
{{- end}}
}

const (
{{- range .Assets}}{{if not .AliasOf}}
	{{.MarkupConst}} = {{literal .Markup}}
{{- end}}{{end}}
)
`))

// Render returns the formatted Go source for assets.
func Render(cfg *Config, assets []*Asset) ([]byte, error) {
	var b bytes.Buffer
	err := source_template.Execute(&b, map[string]any{
		"Package": cfg.Package, "Runtime": cfg.Runtime, "Assets": assets,
	})
	if err != nil {
		return nil, err
	}
	ans, err := imports.Process(cfg.Output, b.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return ans, nil
}

// Run generates the source for cfg and, depending on mode, writes it to
// the output file, compares it with the output file or does neither.
func Run(cfg *Config, mode Mode) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	assets, err := Collect(cfg)
	if err != nil {
		return nil, err
	}
	ans := &Result{Assets: assets}
	if ans.Source, err = Render(cfg, assets); err != nil {
		return nil, err
	}
	switch mode {
	case Write:
		if err = os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return nil, err
		}
		if ans.Changed, err = utils.WriteFileIfChanged(cfg.Output, ans.Source, 0o644); err != nil {
			return nil, err
		}
	case Check:
		existing, err := os.ReadFile(cfg.Output)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if !bytes.Equal(existing, ans.Source) {
			ans.Changed = true
			ans.Elapsed = time.Since(start)
			return ans, fmt.Errorf("%s: %w", cfg.Output, ErrStale)
		}
	}
	ans.Elapsed = time.Since(start)
	cfg.logger().Debug("generated icon components", "output", cfg.Output, "icons", len(assets), "changed", ans.Changed)
	return ans, nil
}
