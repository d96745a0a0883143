// Package theme holds the per-surface theme controller, the theme table mapping theme
// identifiers to palettes, and the global styles injected into rendered pages.
package theme

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/delta/app/enum"
)

//go:generate go run ./internal/schema schema.json

// Palette is the set of named style values for one theme.
type Palette struct {
	Body         string            `yaml:"body" json:"body" toml:"body" jsonschema:"description=page background color"`
	Text         string            `yaml:"text" json:"text" toml:"text" jsonschema:"description=page text color"`
	ToggleBorder string            `yaml:"toggle_border,omitempty" json:"toggle_border,omitempty" toml:"toggle_border,omitempty" jsonschema:"description=switch button border color"`
	Background   string            `yaml:"background,omitempty" json:"background,omitempty" toml:"background,omitempty" jsonschema:"description=header background color"`
	Link         string            `yaml:"link,omitempty" json:"link,omitempty" toml:"link,omitempty" jsonschema:"description=link color"`
	Extra        map[string]string `yaml:"extra,omitempty" json:"extra,omitempty" toml:"extra,omitempty" jsonschema:"description=additional css custom properties"`
}

// FileConfig is the structure of a theme table file. Both themes are required.
type FileConfig struct {
	Light Palette `yaml:"light" json:"light" toml:"light" jsonschema:"description=light theme palette"`
	Dark  Palette `yaml:"dark" json:"dark" toml:"dark" jsonschema:"description=dark theme palette"`
}

// Validator checks theme file syntax and color values.
type Validator interface {
	FormatFromPath(path string) (string, error)
	Validate(format string, data []byte) error
	ValidateColor(value string) error
}

// Table maps theme identifiers to palettes. Safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	palettes map[enum.Theme]Palette
	path     string // source file, empty for built-in table
	val      Validator
}

// DefaultPalettes returns built-in palettes for all themes.
func DefaultPalettes() map[enum.Theme]Palette {
	return map[enum.Theme]Palette{
		enum.ThemeLight: {Body: "#FFFFFF", Text: "#363537", ToggleBorder: "#FFFFFF", Background: "#363537", Link: "#1A73E8"},
		enum.ThemeDark:  {Body: "#363537", Text: "#FAFAFA", ToggleBorder: "#6B8096", Background: "#999999", Link: "#61DAFB"},
	}
}

// DefaultTable returns a table with built-in palettes.
func DefaultTable() *Table {
	return &Table{palettes: DefaultPalettes()}
}

// LoadTable reads the theme table from file. Format is detected by extension.
func LoadTable(path string, val Validator) (*Table, error) {
	if path == "" {
		return nil, errors.New("theme file path not set")
	}
	if val == nil {
		return nil, errors.New("validator is required")
	}
	t := &Table{path: path, val: val}
	palettes, err := t.load()
	if err != nil {
		return nil, err
	}
	t.palettes = palettes
	return t, nil
}

// Resolve returns palette for the theme. Unset theme resolves as light.
func (t *Table) Resolve(th enum.Theme) Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if p, ok := t.palettes[th]; ok {
		return p
	}
	return t.palettes[enum.ThemeLight]
}

// Palettes returns a copy of all palettes keyed by theme name.
func (t *Table) Palettes() map[string]Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make(map[string]Palette, len(t.palettes))
	for th, p := range t.palettes {
		p.Extra = maps.Clone(p.Extra)
		res[th.String()] = p
	}
	return res
}

// Path returns the source file of the table, empty for built-in one.
func (t *Table) Path() string {
	return t.path
}

// Reload re-reads the table file and swaps palettes. On error the current palettes are kept.
func (t *Table) Reload() error {
	if t.path == "" {
		return errors.New("built-in theme table can't be reloaded")
	}
	palettes, err := t.load()
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.palettes = palettes
	t.mu.Unlock()
	log.Printf("[INFO] theme table reloaded from %s", t.path)
	return nil
}

// StartWatcher watches the table file and reloads it on change until ctx is canceled.
func (t *Table) StartWatcher(ctx context.Context) error {
	if t.path == "" {
		return errors.New("theme file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory, editors replace files with atomic renames
	dir := filepath.Dir(t.path)
	filename := filepath.Base(t.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching theme file %s for changes", t.path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] theme file watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() { t.reloadActive(ctx) })

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] theme file watcher error: %v", err)
			}
		}
	}()

	return nil
}

// reloadActive reloads the table unless the watcher's ctx is already canceled.
func (t *Table) reloadActive(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := t.Reload(); err != nil {
		log.Printf("[WARN] failed to reload theme file: %v", err)
	}
}

// load reads, validates and decodes the table file, filling unset values from defaults.
func (t *Table) load() (map[enum.Theme]Palette, error) {
	data, err := os.ReadFile(t.path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	format, err := t.val.FormatFromPath(t.path)
	if err != nil {
		return nil, err //nolint:wrapcheck // message already names the problem
	}
	if err := t.val.Validate(format, data); err != nil {
		return nil, fmt.Errorf("theme file %s: %w", t.path, err)
	}
	cfg, err := decodeFile(format, data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", t.path, err)
	}

	defaults := DefaultPalettes()
	res := map[enum.Theme]Palette{
		enum.ThemeLight: mergePalette(defaults[enum.ThemeLight], cfg.Light),
		enum.ThemeDark:  mergePalette(defaults[enum.ThemeDark], cfg.Dark),
	}
	for th, p := range res {
		if err := t.checkPalette(p); err != nil {
			return nil, fmt.Errorf("theme file %s, %s palette: %w", t.path, th, err)
		}
	}
	return res, nil
}

// checkPalette validates all colors and extra property names.
func (t *Table) checkPalette(p Palette) error {
	colors := map[string]string{"body": p.Body, "text": p.Text, "toggle_border": p.ToggleBorder,
		"background": p.Background, "link": p.Link}
	for name, c := range colors {
		if err := t.val.ValidateColor(c); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for name, c := range p.Extra {
		if !propNameRe.MatchString(name) {
			return fmt.Errorf("invalid extra property name %q", name)
		}
		if err := t.val.ValidateColor(c); err != nil {
			return fmt.Errorf("extra %s: %w", name, err)
		}
	}
	return nil
}

// mergePalette overrides base with values set in p.
func mergePalette(base, p Palette) Palette {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Body, p.Body)
	set(&base.Text, p.Text)
	set(&base.ToggleBorder, p.ToggleBorder)
	set(&base.Background, p.Background)
	set(&base.Link, p.Link)
	if len(p.Extra) > 0 {
		base.Extra = maps.Clone(p.Extra)
	}
	return base
}
