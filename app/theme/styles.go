package theme

import (
	"html/template"
	"slices"
	"strings"
)

// varPrefix is the prefix of css custom properties injected into pages.
const varPrefix = "--delta-"

// GlobalStyles renders the palette as css custom properties on :root plus the body rules using them.
// Values able to break out of a declaration are dropped, extra names are reduced to [a-z0-9-].
func GlobalStyles(p Palette) template.CSS {
	var b strings.Builder
	b.WriteString(":root {\n")
	writeVar(&b, "body", p.Body)
	writeVar(&b, "text", p.Text)
	writeVar(&b, "toggle-border", p.ToggleBorder)
	writeVar(&b, "background", p.Background)
	writeVar(&b, "link", p.Link)

	names := make([]string, 0, len(p.Extra))
	for name := range p.Extra {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		writeVar(&b, sanitizeName(name), p.Extra[name])
	}
	b.WriteString("}\n")

	b.WriteString("body {\n")
	b.WriteString("  background: var(--delta-body);\n")
	b.WriteString("  color: var(--delta-text);\n")
	b.WriteString("  transition: all 0.50s linear;\n")
	b.WriteString("}\n")
	b.WriteString("a { color: var(--delta-link); }\n")
	return template.CSS(b.String()) //nolint:gosec // values are filtered by safeValue
}

func writeVar(b *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if name == "" || value == "" || !safeValue(value) {
		return
	}
	b.WriteString("  ")
	b.WriteString(varPrefix)
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(";\n")
}

// safeValue rejects characters that end a declaration, a block or the style element.
func safeValue(v string) bool {
	return !strings.ContainsAny(v, ";{}<>\"'\\\n\r")
}

// sanitizeName lowercases the name and drops everything outside [a-z0-9-].
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
