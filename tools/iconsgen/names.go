// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package iconsgen

import (
	"fmt"
	"go/token"
	"path"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/iancoleman/strcase"
)

var _ = fmt.Print

// IconName returns the registry key for the asset at rel, its lowercased
// base name without the extension.
func IconName(rel string) string {
	base := path.Base(rel)
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

func identifier_chars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// ComponentName converts an icon name such as "lang_typescript" into an
// exported Go identifier such as "LangTypescript", wrapped by prefix and
// suffix.
func ComponentName(icon_name, prefix, suffix string) (string, error) {
	parts := make([]string, 0, 3)
	for _, x := range []string{prefix, icon_name, suffix} {
		if x != "" {
			parts = append(parts, identifier_chars(strcase.ToCamel(x)))
		}
	}
	ans := strings.Join(parts, "")
	if ans == "" {
		return "", fmt.Errorf("cannot make a Go identifier from the icon name: %#v", icon_name)
	}
	if first := []rune(ans)[0]; !unicode.IsUpper(first) {
		if unicode.IsLetter(first) {
			ans = strcase.ToCamel(ans)
		} else {
			ans = "Icon" + ans
		}
	}
	if !token.IsIdentifier(ans) || !token.IsExported(ans) {
		return "", fmt.Errorf("cannot make an exported Go identifier from the icon name: %#v", icon_name)
	}
	return ans, nil
}

// markup_const returns the name of the unexported constant holding the
// markup of a component.
func markup_const(component string) string {
	return strcase.ToLowerCamel(component) + "SVG"
}

// words returns the component name as lowercase words for doc comments.
func words(component string) string {
	parts := camelcase.Split(component)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, " ")
}
