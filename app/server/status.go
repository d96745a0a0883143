package server

import (
	"net/http"

	"github.com/go-pkgz/rest"
)

// statusResponse reports server state for operators.
type statusResponse struct {
	Version   string  `json:"version"`
	Sessions  int     `json:"sessions"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	HitRatio  float64 `json:"hit_ratio"`
	ThemeFile string  `json:"theme_file,omitempty"`
	TTL       string  `json:"session_ttl"`
}

// handleStatus returns live session count, registry stats and the theme source.
// GET /api/v1/status
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	stats := s.sessions.Stats()
	resp := statusResponse{
		Version:   s.version,
		Sessions:  s.sessions.Len(),
		Hits:      stats.Hits,
		Misses:    stats.Misses,
		ThemeFile: s.table.Path(),
		TTL:       s.sessions.TTL().String(),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		resp.HitRatio = float64(stats.Hits) / float64(total)
	}
	rest.RenderJSON(w, resp)
}
