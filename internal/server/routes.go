package server

import "net/http"

// routes builds the ServeMux with all API endpoints.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	mux.HandleFunc("/api/market/universe", s.handleUniverse)
	mux.HandleFunc("/api/market/sectors", s.handleSectors)
	mux.HandleFunc("/api/market/industries", s.handleIndustries)
	mux.HandleFunc("/api/market/dates", s.handleDates)
	mux.HandleFunc("/api/market/stocks/", s.routeStocks)

	mux.HandleFunc("/api/watchlist", s.handleWatchlist)
	mux.HandleFunc("/api/watchlist/", s.handleWatchlistItem)

	mux.HandleFunc("/api/predict/", s.handlePredict)

	return mux
}
