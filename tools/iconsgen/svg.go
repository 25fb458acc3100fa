// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var _ = fmt.Print

var ErrNotSVG = errors.New("document has no <svg> root element")

// TransformOptions control how SVG markup is rewritten.
type TransformOptions struct {
	// Attribute renames applied to every element, an empty value removes
	// the attribute
	Rename map[string]string
	// Attributes removed from the root element
	Drop []string
}

func (self *Config) TransformOptions() TransformOptions {
	return TransformOptions{Rename: self.Rename, Drop: self.Drop}
}

func unquote(val []byte) string {
	if n := len(val); n > 1 && (val[0] == '"' || val[0] == '\'') && val[n-1] == val[0] {
		val = val[1 : n-1]
	}
	return string(val)
}

func tag_name(data []byte, prefix string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(string(data), prefix), ">"))
}

// Transform returns the <svg> element of src as compact markup: the XML
// declaration, doctype, comments and whitespace between tags are removed,
// attributes are renamed and dropped as per opts and every attribute value
// is written in double quotes.
func Transform(src []byte, opts TransformOptions) (string, error) {
	drop := make(map[string]bool, len(opts.Drop))
	for _, x := range opts.Drop {
		drop[x] = true
	}
	var b strings.Builder
	l := xml.NewLexer(parse.NewInputBytes(src))
	depth := 0
	started, done, in_pi, in_root_tag := false, false, false, false
	for {
		tt, data := l.Next()
		emitting := started && !done && !in_pi
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return "", err
			}
			if !started {
				return "", ErrNotSVG
			}
			if !done {
				return "", fmt.Errorf("unclosed element at depth %d", depth)
			}
			return b.String(), nil
		case xml.StartTagPIToken:
			in_pi = true
		case xml.StartTagClosePIToken:
			in_pi = false
		case xml.StartTagToken:
			if done {
				continue
			}
			name := tag_name(data, "<")
			if !started {
				if name != "svg" {
					return "", ErrNotSVG
				}
				started, in_root_tag = true, true
			} else {
				in_root_tag = false
			}
			b.WriteString("<" + name)
		case xml.AttributeToken:
			if !emitting {
				continue
			}
			name := string(l.Text())
			if in_root_tag && drop[name] {
				continue
			}
			if q, found := opts.Rename[name]; found {
				if q == "" {
					continue
				}
				name = q
			}
			val := strings.ReplaceAll(unquote(l.AttrVal()), `"`, "&quot;")
			fmt.Fprintf(&b, ` %s="%s"`, name, val)
		case xml.StartTagCloseToken:
			if emitting {
				b.WriteString(">")
				depth++
			}
		case xml.StartTagCloseVoidToken:
			if emitting {
				b.WriteString("/>")
				if depth == 0 {
					done = true
				}
			}
		case xml.EndTagToken:
			if emitting {
				fmt.Fprintf(&b, "</%s>", tag_name(data, "</"))
				if depth--; depth == 0 {
					done = true
				}
			}
		case xml.TextToken, xml.CDATAToken:
			if emitting && depth > 0 && strings.TrimSpace(string(data)) != "" {
				b.Write(data)
			}
		}
	}
}
