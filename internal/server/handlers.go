package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/myxview/internal/common"
	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
	"github.com/bobmcallan/myxview/internal/services/chart"
	"github.com/bobmcallan/myxview/internal/services/market"
)

// windowMonths maps the supported history window shorthands to calendar
// month counts.
var windowMonths = map[string]int{
	"1m": 1,
	"2m": 2,
	"3m": 3,
	"6m": 6,
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"uptime":  time.Since(s.app.StartupTime).String(),
		"version": common.GetVersion(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleUniverse returns the latest snapshot's tradable records, optionally
// narrowed by name, sector and industry query parameters.
func (s *Server) handleUniverse(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	universe, err := s.app.MarketService.GetUniverse(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	opts := interfaces.FilterOptions{
		Name:     r.URL.Query().Get("name"),
		Sector:   r.URL.Query().Get("sector"),
		Industry: r.URL.Query().Get("industry"),
	}
	filtered := market.FilterUniverse(universe, opts)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(filtered),
		"stocks": filtered,
	})
}

func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	universe, err := s.app.MarketService.GetUniverse(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sectors": market.DistinctSectors(universe),
	})
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	universe, err := s.app.MarketService.GetUniverse(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"industries": market.DistinctIndustries(universe),
	})
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	dates, err := s.app.MarketService.ListDates(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(dates),
		"dates": dates,
	})
}

// routeStocks dispatches /api/market/stocks/{ticker}[/history|/chart].
func (s *Server) routeStocks(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/market/stocks/")
	rest = strings.TrimSuffix(rest, "/")
	parts := strings.Split(rest, "/")
	if parts[0] == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}
	ticker := strings.ToUpper(parts[0])

	switch {
	case len(parts) == 1:
		s.handleStockDetail(w, r, ticker)
	case len(parts) == 2 && parts[1] == "history":
		s.handleStockHistory(w, r, ticker)
	case len(parts) == 2 && parts[1] == "chart":
		s.handleStockChart(w, r, ticker)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

func (s *Server) handleStockDetail(w http.ResponseWriter, r *http.Request, ticker string) {
	detail, err := s.app.MarketService.GetDetail(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// historyPoints resolves the history query parameters for a ticker. A
// window shorthand wins over explicit bounds; with neither, the full
// available range is returned.
func (s *Server) historyPoints(w http.ResponseWriter, r *http.Request, ticker string) ([]models.HistoricalPoint, bool) {
	q := r.URL.Query()
	ctx := r.Context()

	if window := q.Get("window"); window != "" {
		months, known := windowMonths[strings.ToLower(window)]
		if !known {
			WriteError(w, http.StatusBadRequest, "Unknown window: "+window)
			return nil, false
		}
		pts, err := s.app.MarketService.GetRangeWindow(ctx, ticker, months)
		if err != nil {
			WriteServiceError(w, err)
			return nil, false
		}
		return pts, true
	}

	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		dates, err := s.app.MarketService.ListDates(ctx)
		if err != nil {
			WriteServiceError(w, err)
			return nil, false
		}
		if len(dates) == 0 {
			WriteError(w, http.StatusServiceUnavailable, "no data available")
			return nil, false
		}
		if from == "" {
			from = dates[0]
		}
		if to == "" {
			to = dates[len(dates)-1]
		}
	}
	pts, err := s.app.MarketService.GetRange(ctx, ticker, from, to)
	if err != nil {
		WriteServiceError(w, err)
		return nil, false
	}
	return pts, true
}

func (s *Server) handleStockHistory(w http.ResponseWriter, r *http.Request, ticker string) {
	pts, ok := s.historyPoints(w, r, ticker)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":  ticker,
		"history": pts,
	})
}

func (s *Server) handleStockChart(w http.ResponseWriter, r *http.Request, ticker string) {
	pts, ok := s.historyPoints(w, r, ticker)
	if !ok {
		return
	}
	png, err := chart.RenderHistory(ticker, pts)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Keep the latest rendered chart on disk alongside the data.
	key := ticker + ".png"
	if window := r.URL.Query().Get("window"); window != "" {
		key = ticker + "-" + strings.ToLower(window) + ".png"
	}
	if err := s.app.Storage.WriteRaw("charts", key, png); err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Failed to persist chart")
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
