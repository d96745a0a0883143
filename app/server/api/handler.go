// Package api provides JSON handlers for the visitor theme API.
package api

import (
	"errors"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/server/internal"
	"github.com/umputun/delta/app/store"
	"github.com/umputun/delta/app/theme"
)

//go:generate moq -out mocks/sessionstore.go -pkg mocks -skip-ensure -fmt goimports . SessionStore
//go:generate moq -out mocks/palettes.go -pkg mocks -skip-ensure -fmt goimports . Palettes

// SessionStore defines the interface for per-visitor theme controllers.
type SessionStore interface {
	Controller(id string) (*theme.Controller, error)
	Peek(id string) (*theme.Controller, error)
	Delete(id string)
	TTL() time.Duration
}

// Palettes defines the interface for theme table access.
type Palettes interface {
	Resolve(th enum.Theme) theme.Palette
	Palettes() map[string]theme.Palette
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	sessions SessionStore
	palettes Palettes
	baseURL  string
}

// themeResponse is the state of the caller's theme controller.
type themeResponse struct {
	Theme   enum.Theme    `json:"theme"`
	Palette theme.Palette `json:"palette"`
}

// New creates a new API handler.
func New(ss SessionStore, p Palettes, baseURL string) *Handler {
	return &Handler{sessions: ss, palettes: p, baseURL: baseURL}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGetTheme)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("GET /palettes", h.handlePalettes)
	r.HandleFunc("DELETE /session", h.handleDeleteSession)
}

// handleGetTheme returns the caller's current theme and its palette.
// GET /api/v1/theme
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	c, err := internal.SessionController(w, r, h.sessions, internal.CookiePath(h.baseURL))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get session")
		return
	}
	rest.RenderJSON(w, h.response(c.Current()))
}

// handleToggle flips the caller's theme and returns the new state.
// POST /api/v1/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	c, err := internal.SessionController(w, r, h.sessions, internal.CookiePath(h.baseURL))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get session")
		return
	}
	c.Toggle()
	current := c.Current()
	log.Printf("[DEBUG] api theme switched to %s", current)
	rest.RenderJSON(w, h.response(current))
}

// handlePalettes returns all palettes keyed by theme name.
// GET /api/v1/palettes
func (h *Handler) handlePalettes(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.palettes.Palettes())
}

// handleDeleteSession drops the caller's theme controller and expires the cookie.
// DELETE /api/v1/session
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := internal.SessionID(r)
	if id == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, nil, "session not found")
		return
	}
	if _, err := h.sessions.Peek(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "session not found")
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get session")
		return
	}

	h.sessions.Delete(id)
	internal.ClearSessionCookie(w, internal.CookiePath(h.baseURL))
	log.Printf("[INFO] session %s closed", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) response(th enum.Theme) themeResponse {
	return themeResponse{Theme: th, Palette: h.palettes.Resolve(th)}
}
