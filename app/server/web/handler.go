// Package web provides HTTP handlers for the page shell.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/server/internal"
	"github.com/umputun/delta/app/theme"
)

//go:generate moq -out mocks/sessionstore.go -pkg mocks -skip-ensure -fmt goimports . SessionStore
//go:generate moq -out mocks/paletteresolver.go -pkg mocks -skip-ensure -fmt goimports . PaletteResolver

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// SessionStore defines the interface for per-visitor theme controllers.
type SessionStore interface {
	Controller(id string) (*theme.Controller, error)
	Peek(id string) (*theme.Controller, error)
	TTL() time.Duration
}

// PaletteResolver resolves a theme to its palette.
type PaletteResolver interface {
	Resolve(th enum.Theme) theme.Palette
}

// Config holds web handler configuration.
type Config struct {
	BaseURL      string
	Title        string // page title
	LinkURL      string // header link target
	LinkText     string // header link text
	TemplatesDir string // load templates from this directory on each request, empty for embedded
}

// Handler handles web UI requests.
type Handler struct {
	sessions SessionStore
	palettes PaletteResolver
	hl       *Highlighter
	tmpl     *template.Template
	cfg      Config
}

// New creates a new web handler.
func New(ss SessionStore, pr PaletteResolver, cfg Config) (*Handler, error) {
	if cfg.Title == "" {
		cfg.Title = "Delta"
	}
	if cfg.LinkURL == "" {
		cfg.LinkURL = "https://go.dev"
	}
	if cfg.LinkText == "" {
		cfg.LinkText = "Learn Go"
	}

	h := &Handler{sessions: ss, palettes: pr, hl: NewHighlighter(), cfg: cfg}
	if cfg.TemplatesDir != "" {
		// fail early on broken templates, reparsed on every request later
		if _, err := parseTemplates(os.DirFS(cfg.TemplatesDir)); err != nil {
			return nil, fmt.Errorf("failed to parse templates from %s: %w", cfg.TemplatesDir, err)
		}
		return h, nil
	}

	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to get templates sub-filesystem: %w", err)
	}
	if h.tmpl, err = parseTemplates(sub); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// templateData holds data passed to templates.
type templateData struct {
	Title     string
	BaseURL   string
	Theme     string // active theme name
	NextTheme string // theme the switch button leads to
	Palette   theme.Palette
	Styles    template.CSS  // global styles for the active palette
	Source    template.HTML // highlighted palette source
	LinkURL   string
	LinkText  string
	EditHint  string // file to edit for changing the page
}

// parseTemplates parses page templates from the given filesystem.
func parseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl := template.New("")
	for _, name := range []string{"base.html", "index.html"} {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return tmpl, nil
}

// templates returns parsed templates, reloading them from disk in dev mode.
func (h *Handler) templates() (*template.Template, error) {
	if h.cfg.TemplatesDir == "" {
		return h.tmpl, nil
	}
	return parseTemplates(os.DirFS(h.cfg.TemplatesDir))
}

// editHint returns the path of the page template shown on the page.
func (h *Handler) editHint() string {
	if h.cfg.TemplatesDir == "" {
		return "app/server/web/templates/index.html"
	}
	return filepath.Join(h.cfg.TemplatesDir, "index.html")
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.cfg.BaseURL + path
}

// controller returns the theme controller of the requesting visitor.
func (h *Handler) controller(w http.ResponseWriter, r *http.Request) (*theme.Controller, error) {
	c, err := internal.SessionController(w, r, h.sessions, internal.CookiePath(h.cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return c, nil
}
