package theme

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// propNameRe limits names of extra css custom properties.
var propNameRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// knownKeys are palette keys with dedicated fields, everything else in ini goes to extra.
var knownKeys = map[string]bool{"body": true, "text": true, "toggle_border": true, "background": true, "link": true}

// hclFile is the hcl layout of a theme file, one labeled block per theme:
//
//	palette "dark" {
//	  body = "#363537"
//	  text = "#FAFAFA"
//	}
type hclFile struct {
	Palettes []hclPalette `hcl:"palette,block"`
}

type hclPalette struct {
	Name         string            `hcl:"name,label"`
	Body         string            `hcl:"body"`
	Text         string            `hcl:"text"`
	ToggleBorder string            `hcl:"toggle_border,optional"`
	Background   string            `hcl:"background,optional"`
	Link         string            `hcl:"link,optional"`
	Extra        map[string]string `hcl:"extra,optional"`
}

// decodeFile turns file content into a generic document, verifies it against the schema
// and decodes the result into FileConfig. All formats go through the same schema.
func decodeFile(format string, data []byte) (FileConfig, error) {
	doc, err := toDocument(format, data)
	if err != nil {
		return FileConfig{}, err
	}
	if err := VerifyTable(doc); err != nil {
		return FileConfig{}, err
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to encode theme document: %w", err)
	}
	var cfg FileConfig
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode theme document: %w", err)
	}
	return cfg, nil
}

// toDocument parses data into a map[string]any tree.
func toDocument(format string, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case "ini":
		return iniDocument(data)
	case "hcl":
		return hclDocument(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return doc, nil
}

// iniDocument maps each ini section to a palette, unknown keys become extra properties.
func iniDocument(data []byte) (map[string]any, error) {
	// colors start with '#', treat it as a comment only after a space
	f, err := ini.LoadSources(ini.LoadOptions{SpaceBeforeInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini: %w", err)
	}
	doc := map[string]any{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		palette := map[string]any{}
		extra := map[string]any{}
		for _, k := range sec.Keys() {
			name := strings.ToLower(k.Name())
			if knownKeys[name] {
				palette[name] = k.Value()
				continue
			}
			extra[strings.TrimPrefix(name, "extra.")] = k.Value()
		}
		if len(extra) > 0 {
			palette["extra"] = extra
		}
		doc[strings.ToLower(sec.Name())] = palette
	}
	return doc, nil
}

// hclDocument maps labeled palette blocks to palettes.
func hclDocument(data []byte) (map[string]any, error) {
	var f hclFile
	if err := hclsimple.Decode("theme.hcl", data, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to parse hcl: %w", err)
	}
	doc := map[string]any{}
	for _, p := range f.Palettes {
		if _, dup := doc[p.Name]; dup {
			return nil, fmt.Errorf("duplicate palette %q", p.Name)
		}
		palette := map[string]any{"body": p.Body, "text": p.Text}
		for k, v := range map[string]string{"toggle_border": p.ToggleBorder, "background": p.Background, "link": p.Link} {
			if v != "" {
				palette[k] = v
			}
		}
		if len(p.Extra) > 0 {
			extra := make(map[string]any, len(p.Extra))
			for k, v := range p.Extra {
				extra[k] = v
			}
			palette["extra"] = extra
		}
		doc[p.Name] = palette
	}
	return doc, nil
}
