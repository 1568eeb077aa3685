package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wonny/edaq/internal/analysisconfig"
	"github.com/wonny/edaq/internal/api/middleware"
	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/pipeline"
	"github.com/wonny/edaq/internal/quality"
	"github.com/wonny/edaq/pkg/logger"
)

// AnalysisHandler serves the dataset analysis endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalysisHandler struct {
	config         *analysisconfig.Config
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(cfg *analysisconfig.Config, maxUploadBytes int64, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		config:         cfg,
		maxUploadBytes: maxUploadBytes,
		logger:         log,
	}
}

// QualityRequest describes a dataset by its counts
type QualityRequest struct {
	NRows           int     `json:"n_rows"`
	NCols           int     `json:"n_cols"`
	MaxMissingShare float64 `json:"max_missing_share"`
	MinMissingShare float64 `json:"min_missing_share"`
}

// EstimateResponse is the response of POST /quality
type EstimateResponse struct {
	OKForModel   bool               `json:"ok_for_model"`
	QualityScore float64            `json:"quality_score"`
	LatencyMS    float64            `json:"latency_ms"`
	Flags        quality.Assessment `json:"flags"`
}

// QualityResponse is the response of the CSV quality endpoints
type QualityResponse struct {
	RequestID    string                 `json:"request_id"`
	NRows        int                    `json:"n_rows"`
	NCols        int                    `json:"n_cols"`
	OKForModel   bool                   `json:"ok_for_model"`
	QualityScore float64                `json:"quality_score"`
	Flags        contracts.QualityFlags `json:"flags"`
	LatencyMS    float64                `json:"latency_ms"`
}

// SummaryResponse is the response of POST /summary-from-csv
type SummaryResponse struct {
	RequestID     string                       `json:"request_id"`
	Summary       contracts.DatasetProfile     `json:"summary"`
	Missing       contracts.MissingnessTable   `json:"missing"`
	TopCategories []contracts.CategoryTable    `json:"top_categories"`
	Correlation   *contracts.CorrelationMatrix `json:"correlation"`
	LatencyMS     float64                      `json:"latency_ms"`
}

// Quality estimates quality from counts only
// POST /quality
func (h *AnalysisHandler) Quality(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := QualityRequest{MinMissingShare: h.config.Quality.MinMissingShare}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NRows < 0 || req.NCols < 0 {
		respondError(w, http.StatusBadRequest, "n_rows and n_cols must be >= 0")
		return
	}
	if req.MaxMissingShare < 0 || req.MaxMissingShare > 1 {
		respondError(w, http.StatusBadRequest, "max_missing_share must be in [0, 1]")
		return
	}

	est := quality.Estimate(quality.Counts{
		Rows:            req.NRows,
		Columns:         req.NCols,
		MaxMissingShare: req.MaxMissingShare,
	})

	respondJSON(w, http.StatusOK, EstimateResponse{
		OKForModel:   est.QualityScore >= contracts.OKForModelThreshold,
		QualityScore: est.QualityScore,
		LatencyMS:    latencyMS(start),
		Flags:        est,
	})
}

// QualityFromCSV scores an uploaded CSV
// POST /quality-from-csv?min_missing_share=0.1
func (h *AnalysisHandler) QualityFromCSV(w http.ResponseWriter, r *http.Request) {
	h.qualityFromCSV(w, r)
}

// QualityFlagsFromCSV returns the full flag set of an uploaded CSV
// POST /quality-flags-from-csv?min_missing_share=0.1
func (h *AnalysisHandler) QualityFlagsFromCSV(w http.ResponseWriter, r *http.Request) {
	h.qualityFromCSV(w, r)
}

func (h *AnalysisHandler) qualityFromCSV(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.RequestIDFromContext(r.Context())
	log := logger.FromContext(r.Context(), h.logger)

	minShare, err := h.minMissingShare(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	up, ok := h.upload(w, r, log)
	if !ok {
		return
	}

	opts := h.config.PipelineOptions(false)
	opts.MinMissingShare = minShare

	res, err := pipeline.Run(r.Context(), up.ds, opts)
	if err != nil {
		log.WithError(err).Warn("Analysis aborted")
		respondError(w, http.StatusInternalServerError, "Analysis aborted")
		return
	}

	log.WithFields(map[string]interface{}{
		"quality_score": res.Flags.QualityScore,
		"problematic":   res.Flags.ProblematicMissingCount,
	}).Debug("Quality computed")

	respondJSON(w, http.StatusOK, QualityResponse{
		RequestID:    requestID,
		NRows:        res.Profile.RowCount,
		NCols:        res.Profile.ColumnCount,
		OKForModel:   res.Flags.OKForModel(),
		QualityScore: res.Flags.QualityScore,
		Flags:        res.Flags,
		LatencyMS:    latencyMS(start),
	})
}

// SummaryFromCSV returns the column profile, missingness and exploratory views
// POST /summary-from-csv
func (h *AnalysisHandler) SummaryFromCSV(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.RequestIDFromContext(r.Context())
	log := logger.FromContext(r.Context(), h.logger)

	up, ok := h.upload(w, r, log)
	if !ok {
		return
	}

	res, err := pipeline.Run(r.Context(), up.ds, h.config.PipelineOptions(true))
	if err != nil {
		log.WithError(err).Warn("Analysis aborted")
		respondError(w, http.StatusInternalServerError, "Analysis aborted")
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		RequestID:     requestID,
		Summary:       res.Profile,
		Missing:       res.Missing,
		TopCategories: res.TopCategories,
		Correlation:   res.Correlation,
		LatencyMS:     latencyMS(start),
	})
}

// upload reads the CSV part and writes the error response itself on failure
func (h *AnalysisHandler) upload(w http.ResponseWriter, r *http.Request, log *logger.Logger) (*csvUpload, bool) {
	up, err := h.readUpload(w, r)
	if err != nil {
		status := uploadStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to read upload")
			respondError(w, status, "Failed to read upload")
			return nil, false
		}
		log.WithError(err).Warn("Rejected upload")
		respondError(w, status, err.Error())
		return nil, false
	}

	log.WithFields(map[string]interface{}{
		"file": up.filename,
		"size": humanize.Bytes(uint64(up.size)),
		"rows": up.ds.NumRows(),
		"cols": up.ds.NumCols(),
	}).Info("CSV upload parsed")

	return up, true
}
