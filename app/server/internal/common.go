// Package internal provides shared utilities for server subpackages.
package internal

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/delta/app/store"
	"github.com/umputun/delta/app/theme"
)

// SessionCookieName is the name of the visitor session cookie.
const SessionCookieName = "delta-session"

// Sessions is the part of the session registry shared by web and api handlers.
type Sessions interface {
	Controller(id string) (*theme.Controller, error)
	Peek(id string) (*theme.Controller, error)
	TTL() time.Duration
}

// SessionID returns visitor session id from cookie, empty if missing or malformed.
func SessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}

// SessionController returns theme controller of the visitor, starting a session if needed.
// The cookie is (re)issued whenever the session is new to the registry.
func SessionController(w http.ResponseWriter, r *http.Request, ss Sessions, cookiePath string) (*theme.Controller, error) {
	id, isNew := SessionID(r), false
	if id == "" {
		id, isNew = store.NewSessionID(), true
	}
	if _, err := ss.Peek(id); errors.Is(err, store.ErrNotFound) {
		isNew = true
	}

	c, err := ss.Controller(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session controller: %w", err)
	}
	if isNew {
		SetSessionCookie(w, id, cookiePath, ss.TTL())
	}
	return c, nil
}

// SetSessionCookie sets visitor session cookie.
func SetSessionCookie(w http.ResponseWriter, id, path string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     path,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires visitor session cookie.
func ClearSessionCookie(w http.ResponseWriter, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CookiePath returns the path for cookies (base URL with trailing slash or "/").
func CookiePath(baseURL string) string {
	if baseURL == "" {
		return "/"
	}
	return baseURL + "/"
}
