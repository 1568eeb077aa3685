package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/edaq/internal/api/handlers"
	"github.com/wonny/edaq/internal/api/middleware"
	"github.com/wonny/edaq/pkg/config"
	"github.com/wonny/edaq/pkg/logger"
)

// ServiceName is reported by the health check
const ServiceName = "edaq-api"

// Version is set at build time with -ldflags "-X github.com/wonny/edaq/internal/api.Version=..."
var Version = "0.1.0"

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(analysisHandler *handlers.AnalysisHandler, httpCfg config.HTTPConfig, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Analysis endpoints
	r.HandleFunc("/quality", analysisHandler.Quality).Methods("POST")
	r.HandleFunc("/quality-from-csv", analysisHandler.QualityFromCSV).Methods("POST")
	r.HandleFunc("/quality-flags-from-csv", analysisHandler.QualityFlagsFromCSV).Methods("POST")
	r.HandleFunc("/summary-from-csv", analysisHandler.SummaryFromCSV).Methods("POST")

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: httpCfg.RateLimitRPS,
		Burst:             httpCfg.RateLimitBurst,
	}))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": ServiceName,
		"version": Version,
	})
}
