// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

// Package svgicon renders the inline SVG markup of generated icon
// components.
package svgicon

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var _ = fmt.Print

func valid_attribute_name(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}

// Merge combines attrs into a single map, later maps overriding earlier
// ones. A nil value removes the attribute and invalid names are skipped.
func Merge(attrs ...templ.Attributes) templ.Attributes {
	ans := make(templ.Attributes)
	for _, a := range attrs {
		for k, v := range a {
			switch {
			case !valid_attribute_name(k):
			case v == nil:
				delete(ans, k)
			default:
				ans[k] = v
			}
		}
	}
	return ans
}

// WriteAttributes writes the merged attrs with templ.RenderAttributes, so
// every value type templ supports in spread attributes works here too.
func WriteAttributes(ctx context.Context, w io.Writer, attrs ...templ.Attributes) error {
	return templ.RenderAttributes(ctx, w, Merge(attrs...))
}

var root_attribute_pat = regexp.MustCompile(`^\s+([^\s=/>]+)(="[^"]*")?`)

// without_attributes returns the attributes part of the root tag in rest
// with the attributes named in skip removed, followed by the remaining
// markup.
func without_attributes(rest string, skip templ.Attributes) string {
	var b strings.Builder
	for {
		m := root_attribute_pat.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}
		if _, found := skip[rest[m[2]:m[3]]]; !found {
			b.WriteString(rest[:m[1]])
		}
		rest = rest[m[1]:]
	}
	b.WriteString(rest)
	return b.String()
}

// New returns a component that writes markup, which must be an <svg>
// element, with attrs added to the root element. An attribute in attrs
// replaces the one of the same name already in markup, a false value
// removes it.
func New(markup string, attrs ...templ.Attributes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) (err error) {
		rest, found := strings.CutPrefix(markup, "<svg")
		if !found || len(attrs) == 0 {
			_, err = io.WriteString(w, markup)
			return
		}
		merged := Merge(attrs...)
		if _, err = io.WriteString(w, "<svg"); err == nil {
			if err = templ.RenderAttributes(ctx, w, merged); err == nil {
				_, err = io.WriteString(w, without_attributes(rest, merged))
			}
		}
		return
	})
}
