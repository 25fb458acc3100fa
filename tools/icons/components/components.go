// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

// Package components holds templ components for the built-in file icons,
// generated from the SVG files in the svg directory.
package components

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/kovidgoyal/fileicons/tools/icons"
)

var _ = fmt.Print

//go:generate go run github.com/kovidgoyal/fileicons/tools/cmd/fileicons generate --config iconsgen.yaml

// ForIcon returns the component for icon, or the one for the default icon
// when icon has no artwork of its own.
func ForIcon(icon icons.Icon, attrs ...templ.Attributes) templ.Component {
	if c := ByName[string(icon)]; c != nil {
		return c(attrs...)
	}
	return ByName[string(icons.DefaultIcon)](attrs...)
}

// ForPath returns the component for the icon that path resolves to.
func ForPath(path string, attrs ...templ.Attributes) templ.Component {
	return ForIcon(icons.IconForPath(path), attrs...)
}

// Has returns true if icon has its own artwork.
func Has(icon icons.Icon) bool {
	_, found := ByName[string(icon)]
	return found
}
