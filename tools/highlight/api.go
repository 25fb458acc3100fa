// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var _ = fmt.Print

var ErrNoLexer = errors.New("No lexer available for this format")

const DefaultStyle = "monokai"

type SanitizeControlCodes struct {
	r *strings.Replacer
}

func (s SanitizeControlCodes) Sanitize(x string) string { return s.r.Replace(x) }

// NewSanitizeControlCodes replaces C0 control codes other than newline
// with their visible Unicode control pictures and tabs with replace_tab_by.
func NewSanitizeControlCodes(replace_tab_by string) *SanitizeControlCodes {
	repls := make([]string, 0, 2*(0x1f+2))
	for i := range 0x1f + 1 {
		var repl string
		switch i {
		case '\n':
			repl = string(rune(i))
		case '\t':
			repl = replace_tab_by
		default:
			repl = string(rune(0x2400 + i))
		}
		repls = append(repls, string(rune(i)), repl)
	}
	repls = append(repls, "\x7f", "␡")
	return &SanitizeControlCodes{r: strings.NewReplacer(repls...)}
}

// Highlight writes text, which is source code in language, to w with
// terminal escape codes for syntax highlighting in the named style.
func Highlight(w io.Writer, text, language, style string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		return fmt.Errorf("%w: %s", ErrNoLexer, language)
	}
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	text = NewSanitizeControlCodes("\t").Sanitize(text)
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return err
	}
	return formatter.Format(w, s, iterator)
}
