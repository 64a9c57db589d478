package server

import (
	"net/http"
	"strings"
)

// handlePredict proxies GET /api/predict/{ticker} to the prediction
// service. Upstream failures read as an empty prediction set.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ticker := PathParam(r, "/api/predict/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "Ticker is required")
		return
	}
	predictions, err := s.app.PredictClient.GetPredictions(r.Context(), strings.ToUpper(ticker))
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":      strings.ToUpper(ticker),
		"predictions": predictions,
	})
}
