package server

import (
	"net/http"

	"github.com/bobmcallan/myxview/internal/models"
)

const defaultWatchlistName = "default"

// watchlistName resolves the target watchlist from the list query
// parameter, defaulting when absent.
func watchlistName(r *http.Request) string {
	if name := r.URL.Query().Get("list"); name != "" {
		return name
	}
	return defaultWatchlistName
}

// handleWatchlist serves GET (read), POST (add item) and DELETE (clear)
// on /api/watchlist.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	name := watchlistName(r)
	switch r.Method {
	case http.MethodGet:
		wl, err := s.app.WatchlistService.GetWatchlist(r.Context(), name)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, wl)
	case http.MethodPost:
		var item models.WatchlistItem
		if !DecodeJSON(w, r, &item) {
			return
		}
		wl, err := s.app.WatchlistService.AddItem(r.Context(), name, &item)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, wl)
	case http.MethodDelete:
		if err := s.app.WatchlistService.ClearWatchlist(r.Context(), name); err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared", "watchlist": name})
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

// handleWatchlistItem serves DELETE /api/watchlist/{ticker}.
func (s *Server) handleWatchlistItem(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	ticker := PathParam(r, "/api/watchlist/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}
	wl, err := s.app.WatchlistService.RemoveItem(r.Context(), watchlistName(r), ticker)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, wl)
}
