package web

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"gopkg.in/yaml.v3"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/theme"
)

// highlightStyles maps page themes to chroma styles.
var highlightStyles = map[enum.Theme]string{
	enum.ThemeLight: "github",
	enum.ThemeDark:  "monokai",
}

// Highlighter renders palette sources with syntax highlighting matching the page theme.
type Highlighter struct{}

// NewHighlighter creates a new Highlighter instance.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Palette renders palette as highlighted yaml.
func (h *Highlighter) Palette(p theme.Palette, th enum.Theme) template.HTML {
	data, err := yaml.Marshal(p)
	if err != nil {
		return template.HTML("<pre>" + html.EscapeString(err.Error()) + "</pre>") //nolint:gosec // escaped
	}
	return h.Code(string(data), "yaml", th)
}

// Code applies syntax highlighting to code based on format.
// returns HTML-safe highlighted code or plain escaped text if format is "text" or highlighting fails.
func (h *Highlighter) Code(code, format string, th enum.Theme) template.HTML {
	plain := template.HTML("<pre>" + html.EscapeString(code) + "</pre>") //nolint:gosec // escaped
	if format == "" || format == "text" {
		return plain
	}

	lexer := lexers.Get(strings.ToUpper(format))
	if lexer == nil {
		return plain
	}
	lexer = chroma.Coalesce(lexer)

	// inline styles, page css stays untouched
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(false),
		chromahtml.WithLineNumbers(false),
	)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain
	}

	style := styles.Get(highlightStyles[th])
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return plain
	}
	return template.HTML(buf.String()) //nolint:gosec // chroma output is safe
}
