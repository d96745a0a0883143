// Package validator checks theme table files and the color values they carry.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// supportedFormats lists all supported theme file formats.
var supportedFormats = []string{"yaml", "json", "toml", "ini", "hcl"}

// extFormats maps file extensions to formats.
var extFormats = map[string]string{
	".yml":  "yaml",
	".yaml": "yaml",
	".json": "json",
	".toml": "toml",
	".ini":  "ini",
	".hcl":  "hcl",
}

var (
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorRe  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\(\s*[0-9.%+\-a-z]+(?:\s*[,/ ]\s*[0-9.%+\-a-z]+){2,3}\s*\)$`)
	namedColorRe = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// maxColorLen caps a single color value, css functions included.
const maxColorLen = 64

// Service provides validation for theme files.
type Service struct{}

// NewService creates a new validation service.
func NewService() *Service {
	return &Service{}
}

// SupportedFormats returns the list of supported formats.
func (s *Service) SupportedFormats() []string {
	return supportedFormats
}

// IsValidFormat checks if format is in the list of supported formats.
func (s *Service) IsValidFormat(format string) bool {
	return slices.Contains(supportedFormats, format)
}

// FormatFromPath detects file format by extension, case-insensitive.
func (s *Service) FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported theme file extension %q, expected one of %v", ext, supportedFormats)
}

// Validate checks that data is syntactically valid for the given format.
func (s *Service) Validate(format string, data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return fmt.Errorf("invalid %s: empty content", format)
	}
	switch format {
	case "json":
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid json: %w", err)
		}
	case "yaml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid yaml: %w", err)
		}
	case "toml":
		var v any
		if err := toml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid toml: %w", err)
		}
	case "ini":
		if _, err := ini.Load(data); err != nil {
			return fmt.Errorf("invalid ini: %w", err)
		}
	case "hcl":
		parser := hclparse.NewParser()
		if _, diags := parser.ParseHCL(data, "theme.hcl"); diags.HasErrors() {
			return fmt.Errorf("invalid hcl: %s", diags.Error())
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// ValidateColor checks a css color value: hex, rgb/rgba/hsl/hsla functions or a named color.
func (s *Service) ValidateColor(value string) error {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return errors.New("empty color")
	case len(v) > maxColorLen:
		return fmt.Errorf("color %.16q... is too long", v)
	case strings.HasPrefix(v, "#"):
		if !hexColorRe.MatchString(v) {
			return fmt.Errorf("invalid hex color %q", v)
		}
	case strings.Contains(v, "("):
		if !funcColorRe.MatchString(strings.ToLower(v)) {
			return fmt.Errorf("invalid color function %q", v)
		}
	default:
		if !namedColorRe.MatchString(v) {
			return fmt.Errorf("invalid color name %q", v)
		}
	}
	return nil
}
