package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/store"
)

func TestSessionID(t *testing.T) {
	id := store.NewSessionID()
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{name: "no cookie"},
		{name: "valid", cookie: &http.Cookie{Name: SessionCookieName, Value: id}, want: id},
		{name: "malformed", cookie: &http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"}},
		{name: "other cookie", cookie: &http.Cookie{Name: "theme", Value: id}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			assert.Equal(t, tc.want, SessionID(req))
		})
	}
}

func TestSessionController(t *testing.T) {
	ss, err := store.NewSessions(10, time.Hour)
	require.NoError(t, err)
	defer ss.Close()

	// first contact issues a cookie
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	c, err := SessionController(rec, req, ss, "/")
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, c.Current())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	c.Toggle()

	// known session, no new cookie, same controller
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(cookies[0])
	c2, err := SessionController(rec, req, ss, "/")
	require.NoError(t, err)
	assert.Same(t, c, c2)
	assert.Empty(t, rec.Result().Cookies())

	// torn down session gets a fresh controller and the cookie re-issued
	ss.Delete(cookies[0].Value)
	rec = httptest.NewRecorder()
	c3, err := SessionController(rec, req, ss, "/")
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, c3.Current())
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, cookies[0].Value, rec.Result().Cookies()[0].Value)
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec, "/delta/")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, "/delta/", cookies[0].Path)
}

func TestCookiePath(t *testing.T) {
	assert.Equal(t, "/", CookiePath(""))
	assert.Equal(t, "/delta/", CookiePath("/delta"))
}
