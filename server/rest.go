package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/playsort/pkg/categorizer"
	"github.com/umputun/playsort/pkg/domain"
	"github.com/umputun/playsort/pkg/metrics"
	"github.com/umputun/playsort/pkg/source"
)

// maxVideosLimit caps max_results of the videos endpoint
const maxVideosLimit = 200

// overrideRequest is the body of the category override endpoint
type overrideRequest struct {
	Category string `json:"category"`
}

// overrideResponse confirms an accepted override
type overrideResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	PlaylistID  string `json:"playlist_id"`
	NewCategory string `json:"new_category"`
}

// statusHandler returns server status with the last sync run
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	run, err := s.db.LastRun(r.Context())
	switch {
	case err == nil:
		status["last_sync"] = run
	case errors.Is(err, domain.ErrNotFound):
		status["last_sync"] = nil
	default:
		log.Printf("[WARN] failed to get last sync run: %v", err)
		renderError(w, r, fmt.Errorf("can't get sync status"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}

// infoHandler describes the service
func (s *Server) infoHandler(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"name":        "playsort",
		"version":     s.version,
		"description": "keyword based categorization of YouTube playlists",
		"source":      s.config.GetSourceConfig().Type,
		"features": []string{
			"rule based categorization",
			"category summary",
			"review suggestions",
			"manual category override",
		},
		"categories": domain.CategoryLabels(),
	}
	renderJSON(w, r, http.StatusOK, info)
}

// categoriesHandler returns the category vocabulary in its fixed order
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"categories": domain.CategoryLabels()})
}

// playlistsHandler returns categorized playlists with the summary over all of them.
// Optional category query parameter filters the list but not the summary.
func (s *Server) playlistsHandler(w http.ResponseWriter, r *http.Request) {
	var filter *domain.Category
	if label := r.URL.Query().Get("category"); label != "" {
		cat, err := domain.ParseCategory(label)
		if err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		filter = &cat
	}

	playlists, err := s.db.GetPlaylists(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get playlists: %v", err)
		renderError(w, r, fmt.Errorf("can't get playlists"), http.StatusInternalServerError)
		return
	}

	categorized := s.categorizer.CategorizeAll(playlists)
	if filter != nil {
		filtered := make([]domain.CategorizedPlaylist, 0, len(categorized))
		for _, cp := range categorized {
			if cp.Category == *filter {
				filtered = append(filtered, cp)
			}
		}
		categorized = filtered
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"playlists":        categorized,
		"total":            len(categorized),
		"category_summary": s.categorizer.Summarize(playlists),
	})
}

// playlistHandler returns a single categorized playlist
func (s *Server) playlistHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := s.db.GetPlaylist(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, fmt.Errorf("playlist %s not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get playlist %s: %v", id, err)
		renderError(w, r, fmt.Errorf("can't get playlist"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.categorizer.Categorize(p))
}

// videosHandler returns videos of a playlist straight from the source
func (s *Server) videosHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	limit := s.config.GetSourceConfig().MaxVideos
	if v := r.URL.Query().Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("invalid max_results %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}
	limit = min(limit, maxVideosLimit)

	videos, err := s.videos.Videos(r.Context(), id, limit)
	if errors.Is(err, source.ErrInvalidPlaylistRef) {
		renderError(w, r, fmt.Errorf("invalid playlist id %q", id), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[WARN] failed to get videos for %s: %v", id, err)
		renderError(w, r, fmt.Errorf("can't get videos for playlist %s", id), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"playlist_id": id, "videos": videos, "total": len(videos)})
}

// overrideHandler adds a high weight rule keyed on the playlist id
func (s *Server) overrideHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.Overrides.WithLabelValues(metrics.OverrideRejected).Inc()
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		metrics.Overrides.WithLabelValues(metrics.OverrideRejected).Inc()
		renderError(w, r, fmt.Errorf("category is required"), http.StatusBadRequest)
		return
	}

	cat, err := s.categorizer.Override(id, req.Category)
	if err != nil {
		metrics.Overrides.WithLabelValues(metrics.OverrideRejected).Inc()
		if errors.Is(err, domain.ErrInvalidCategory) {
			renderError(w, r, fmt.Errorf("invalid category: %s", req.Category), http.StatusBadRequest)
			return
		}
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	metrics.Overrides.WithLabelValues(metrics.OverrideAccepted).Inc()
	renderJSON(w, r, http.StatusOK, overrideResponse{
		Success:     true,
		Message:     "Playlist category updated to " + cat.String(),
		PlaylistID:  id,
		NewCategory: cat.String(),
	})
}

// summaryHandler returns per-category stats for all cached playlists
func (s *Server) summaryHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.db.GetPlaylists(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get playlists: %v", err)
		renderError(w, r, fmt.Errorf("can't get playlists"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"category_summary": s.categorizer.Summarize(playlists)})
}

// reviewHandler returns playlists which likely need a manual category
func (s *Server) reviewHandler(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.db.GetPlaylists(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get playlists: %v", err)
		renderError(w, r, fmt.Errorf("can't get playlists"), http.StatusInternalServerError)
		return
	}
	review := s.categorizer.SuggestReview(playlists)
	renderJSON(w, r, http.StatusOK, map[string]any{
		"playlists": review,
		"total":     len(review),
		"threshold": categorizer.ReviewThreshold,
	})
}

// syncHandler schedules an immediate playlist sync
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.TriggerSync()
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "sync scheduled"})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
