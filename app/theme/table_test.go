package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pkgz/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/validator"
)

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()
	assert.Equal(t, "#FFFFFF", tbl.Resolve(enum.ThemeLight).Body)
	assert.Equal(t, "#363537", tbl.Resolve(enum.ThemeDark).Body)
	assert.Equal(t, tbl.Resolve(enum.ThemeLight), tbl.Resolve(enum.Theme{}), "unset theme resolves as light")
	assert.Empty(t, tbl.Path())
	assert.Error(t, tbl.Reload())

	palettes := tbl.Palettes()
	require.Len(t, palettes, 2)
	assert.Equal(t, "#FAFAFA", palettes["dark"].Text)
}

func TestLoadTable_Formats(t *testing.T) {
	files := map[string]string{
		"theme.yml": `
light:
  body: "#FAFAFA"
  text: "#111111"
  extra:
    accent: "#FF5500"
dark:
  body: "#000000"
  text: "white"
  link: "rgb(97, 218, 251)"
`,
		"theme.json": `{
  "light": {"body": "#FAFAFA", "text": "#111111", "extra": {"accent": "#FF5500"}},
  "dark": {"body": "#000000", "text": "white", "link": "rgb(97, 218, 251)"}
}`,
		"theme.toml": `
[light]
body = "#FAFAFA"
text = "#111111"

[light.extra]
accent = "#FF5500"

[dark]
body = "#000000"
text = "white"
link = "rgb(97, 218, 251)"
`,
		"theme.ini": `
[light]
body = #FAFAFA
text = #111111 ; inline comment
accent = #FF5500

[dark]
body = #000000
text = white
link = rgb(97, 218, 251)
`,
		"theme.hcl": `
palette "light" {
  body  = "#FAFAFA"
  text  = "#111111"
  extra = { accent = "#FF5500" }
}

palette "dark" {
  body = "#000000"
  text = "white"
  link = "rgb(97, 218, 251)"
}
`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			tbl, err := LoadTable(path, validator.NewService())
			require.NoError(t, err)
			assert.Equal(t, path, tbl.Path())

			light := tbl.Resolve(enum.ThemeLight)
			assert.Equal(t, "#FAFAFA", light.Body)
			assert.Equal(t, "#111111", light.Text)
			assert.Equal(t, map[string]string{"accent": "#FF5500"}, light.Extra)
			assert.Equal(t, DefaultPalettes()[enum.ThemeLight].Link, light.Link, "unset value filled from defaults")

			dark := tbl.Resolve(enum.ThemeDark)
			assert.Equal(t, "#000000", dark.Body)
			assert.Equal(t, "white", dark.Text)
			assert.Equal(t, "rgb(97, 218, 251)", dark.Link)
			assert.Equal(t, DefaultPalettes()[enum.ThemeDark].ToggleBorder, dark.ToggleBorder)
			assert.Empty(t, dark.Extra)
		})
	}
}

func TestLoadTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{name: "missing dark", file: "t.yml", content: "light:\n  body: '#fff'\n  text: '#000'\n", errMsg: "validation failed"},
		{name: "unknown theme", file: "t.yml",
			content: "light: {body: '#fff', text: '#000'}\ndark: {body: '#000', text: '#fff'}\nsepia: {body: '#000', text: '#fff'}\n",
			errMsg:  "validation failed"},
		{name: "unknown key", file: "t.json",
			content: `{"light": {"body": "#fff", "text": "#000", "font": "x"}, "dark": {"body": "#000", "text": "#fff"}}`,
			errMsg:  "validation failed"},
		{name: "missing text", file: "t.toml", content: "[light]\nbody = '#fff'\n[dark]\nbody = '#000'\ntext = '#fff'\n",
			errMsg: "validation failed"},
		{name: "bad color", file: "t.yml", content: "light: {body: 'red;}', text: '#000'}\ndark: {body: '#000', text: '#fff'}\n",
			errMsg: "body"},
		{name: "bad extra name", file: "t.yml",
			content: "light: {body: '#fff', text: '#000', extra: {'Bad Name': '#fff'}}\ndark: {body: '#000', text: '#fff'}\n",
			errMsg:  "extra property name"},
		{name: "ini stray section", file: "t.ini", content: "[light]\nbody=#fff\ntext=#000\n[dark]\nbody=#000\ntext=#fff\n[other]\nbody=#fff\ntext=#000\n",
			errMsg: "validation failed"},
		{name: "hcl duplicate", file: "t.hcl",
			content: "palette \"light\" {\n body = \"#fff\"\n text = \"#000\"\n}\npalette \"light\" {\n body = \"#fff\"\n text = \"#000\"\n}\n",
			errMsg:  "duplicate"},
		{name: "broken syntax", file: "t.json", content: `{"light": `, errMsg: "invalid json"},
		{name: "empty file", file: "t.yml", content: "", errMsg: "empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))
			_, err := LoadTable(path, validator.NewService())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	t.Run("no extension", func(t *testing.T) {
		path := testutils.WriteTestFile(t, "light: {}")
		_, err := LoadTable(path, validator.NewService())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported theme file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yml"), validator.NewService())
		assert.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadTable("", validator.NewService())
		assert.Error(t, err)
	})

	t.Run("nil validator", func(t *testing.T) {
		_, err := LoadTable("theme.yml", nil)
		assert.Error(t, err)
	})
}

const testThemeYAML = "light: {body: '#FFFFFF', text: '#000000'}\ndark: {body: '#000000', text: '#FFFFFF'}\n"

func TestTable_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte(testThemeYAML), 0o600))

	tbl, err := LoadTable(path, validator.NewService())
	require.NoError(t, err)
	assert.Equal(t, "#000000", tbl.Resolve(enum.ThemeDark).Body)

	updated := "light: {body: '#FFFFFF', text: '#000000'}\ndark: {body: '#222222', text: '#FFFFFF'}\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
	require.NoError(t, tbl.Reload())
	assert.Equal(t, "#222222", tbl.Resolve(enum.ThemeDark).Body)

	// broken file keeps the last good palettes
	require.NoError(t, os.WriteFile(path, []byte("dark: {body: '#333333'"), 0o600))
	require.Error(t, tbl.Reload())
	assert.Equal(t, "#222222", tbl.Resolve(enum.ThemeDark).Body)
}

func TestTable_StartWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte(testThemeYAML), 0o600))

	tbl, err := LoadTable(path, validator.NewService())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, tbl.StartWatcher(ctx))

	updated := "light: {body: '#EEEEEE', text: '#000000'}\ndark: {body: '#000000', text: '#FFFFFF'}\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	assert.Eventually(t, func() bool {
		return tbl.Resolve(enum.ThemeLight).Body == "#EEEEEE"
	}, 2*time.Second, 20*time.Millisecond)

	t.Run("built-in table can't be watched", func(t *testing.T) {
		assert.Error(t, DefaultTable().StartWatcher(ctx))
	})
}

func TestTable_ReloadAfterWatcherStopped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	require.NoError(t, os.WriteFile(path, []byte(testThemeYAML), 0o600))

	tbl, err := LoadTable(path, validator.NewService())
	require.NoError(t, err)
	before := tbl.Resolve(enum.ThemeLight).Body

	updated := "light: {body: '#DDDDDD', text: '#000000'}\ndark: {body: '#000000', text: '#FFFFFF'}\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	// debounced reload firing after cancel leaves the table alone
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tbl.reloadActive(ctx)
	assert.Equal(t, before, tbl.Resolve(enum.ThemeLight).Body)

	tbl.reloadActive(context.Background())
	assert.Equal(t, "#DDDDDD", tbl.Resolve(enum.ThemeLight).Body)
}

func TestTable_PalettesIsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yml")
	content := "light: {body: '#fff', text: '#000', extra: {accent: '#f00'}}\ndark: {body: '#000', text: '#fff'}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	tbl, err := LoadTable(path, validator.NewService())
	require.NoError(t, err)

	palettes := tbl.Palettes()
	palettes["light"].Extra["accent"] = "#0f0"
	assert.Equal(t, "#f00", tbl.Resolve(enum.ThemeLight).Extra["accent"])
}
