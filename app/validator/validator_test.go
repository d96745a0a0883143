package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Validate(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name    string
		format  string
		value   []byte
		wantErr bool
	}{
		{name: "valid json", format: "json", value: []byte(`{"light": {"body": "#fff"}}`)},
		{name: "invalid json trailing comma", format: "json", value: []byte(`{"light": {},}`), wantErr: true},
		{name: "invalid json unclosed brace", format: "json", value: []byte(`{"light": {}`), wantErr: true},

		{name: "valid yaml", format: "yaml", value: []byte("light:\n  body: \"#fff\"")},
		{name: "invalid yaml tab indent", format: "yaml", value: []byte("light:\n\tbody: x"), wantErr: true},

		{name: "valid toml", format: "toml", value: []byte("[light]\nbody = \"#fff\"")},
		{name: "invalid toml bad string", format: "toml", value: []byte(`body = "unclosed`), wantErr: true},

		{name: "valid ini", format: "ini", value: []byte("[light]\nbody = #fff")},
		{name: "invalid ini no equals", format: "ini", value: []byte("[light]\nbadline"), wantErr: true},

		{name: "valid hcl", format: "hcl", value: []byte("palette \"light\" {\n  body = \"#fff\"\n}")},
		{name: "invalid hcl unclosed brace", format: "hcl", value: []byte("palette \"light\" {\n  body = \"#fff\""), wantErr: true},

		{name: "empty content", format: "yaml", value: []byte{}, wantErr: true},
		{name: "whitespace only", format: "json", value: []byte("  \n "), wantErr: true},
		{name: "unknown format", format: "xml", value: []byte("<a/>"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.format, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Validate_ErrorMessages(t *testing.T) {
	svc := NewService()
	tests := []struct {
		format string
		value  []byte
	}{
		{format: "json", value: []byte(`{bad`)},
		{format: "yaml", value: []byte(":\n\tbad")},
		{format: "toml", value: []byte(`bad`)},
		{format: "ini", value: []byte("[section]\nbad")},
		{format: "hcl", value: []byte("bad {")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := svc.Validate(tt.format, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.format)
		})
	}
}

func TestService_FormatFromPath(t *testing.T) {
	svc := NewService()

	tests := []struct {
		path    string
		format  string
		wantErr bool
	}{
		{path: "theme.yml", format: "yaml"},
		{path: "/etc/delta/theme.YAML", format: "yaml"},
		{path: "theme.json", format: "json"},
		{path: "theme.toml", format: "toml"},
		{path: "conf/theme.ini", format: "ini"},
		{path: "theme.hcl", format: "hcl"},
		{path: "theme.xml", wantErr: true},
		{path: "theme", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			format, err := svc.FormatFromPath(tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
			assert.True(t, svc.IsValidFormat(format))
		})
	}
}

func TestService_IsValidFormat(t *testing.T) {
	svc := NewService()
	assert.Equal(t, []string{"yaml", "json", "toml", "ini", "hcl"}, svc.SupportedFormats())
	assert.True(t, svc.IsValidFormat("hcl"))
	assert.False(t, svc.IsValidFormat("YAML")) // case-sensitive
	assert.False(t, svc.IsValidFormat(""))
	assert.False(t, svc.IsValidFormat("text"))
}

func TestService_ValidateColor(t *testing.T) {
	svc := NewService()

	valid := []string{
		"#fff", "#FFFF", "#363537", "#FAFAFA80", "white", "transparent", "RebeccaPurple",
		"rgb(255, 0, 0)", "rgba(0,0,0,0.5)", "hsl(120deg 50% 50%)", "hsla(120, 50%, 50%, 0.3)",
		" #61dafb ",
	}
	for _, c := range valid {
		assert.NoError(t, svc.ValidateColor(c), "color %q", c)
	}

	invalid := []string{
		"", "#ff", "#12345", "#ggg", "red;}", "rgb(255)", "url(http://x)", "expression(alert(1))",
		"light blue", "#fff;background:red", "rgb(1,2,3" + string(make([]byte, 80)) + ")",
	}
	for _, c := range invalid {
		assert.Error(t, svc.ValidateColor(c), "color %q", c)
	}
}
