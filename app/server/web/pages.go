package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/delta/app/theme"
)

// handleIndex renders the page shell in the visitor's current theme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	c, err := h.controller(w, r)
	if err != nil {
		log.Printf("[ERROR] failed to get theme controller: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tmpl, err := h.templates()
	if err != nil {
		log.Printf("[ERROR] failed to load templates: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	current := c.Current()
	palette := h.palettes.Resolve(current)
	data := templateData{
		Title:     h.cfg.Title,
		BaseURL:   h.cfg.BaseURL,
		Theme:     current.String(),
		NextTheme: current.Toggle().String(),
		Palette:   palette,
		Styles:    theme.GlobalStyles(palette),
		Source:    h.hl.Palette(palette, current),
		LinkURL:   h.cfg.LinkURL,
		LinkText:  h.cfg.LinkText,
		EditHint:  h.editHint(),
	}

	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle flips the visitor's theme and asks the page to render again.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	c, err := h.controller(w, r)
	if err != nil {
		log.Printf("[ERROR] failed to get theme controller: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	c.Toggle()
	log.Printf("[DEBUG] theme switched to %s", c.Current())

	if r.Header.Get("HX-Request") == "true" {
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}
