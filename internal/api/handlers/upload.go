package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/wonny/edaq/internal/dataset"
)

// UploadField is the multipart field holding the CSV file
const UploadField = "file"

var (
	// ErrEmptyDataset is returned for uploads without data rows
	ErrEmptyDataset = errors.New("csv has no data rows")

	ErrMissingFile    = errors.New("missing csv file part")
	ErrUploadTooLarge = errors.New("upload too large")
	ErrInvalidShare   = errors.New("min_missing_share must be a number in [0, 1]")
)

// csvUpload is a parsed CSV upload
type csvUpload struct {
	filename string
	size     int
	ds       *dataset.Dataset
}

// readUpload reads at most maxBytes of body and parses the "file" part
func (h *AnalysisHandler) readUpload(w http.ResponseWriter, r *http.Request) (*csvUpload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %s", ErrUploadTooLarge, humanize.Bytes(uint64(tooLarge.Limit)))
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	file, header, err := r.FormFile(UploadField)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	defer file.Close()

	ds, err := dataset.ReadCSV(file, h.config.ReadOptions()...)
	if err != nil {
		return nil, err
	}
	if ds.NumRows() == 0 {
		return nil, ErrEmptyDataset
	}

	return &csvUpload{filename: header.Filename, size: len(body), ds: ds}, nil
}

// minMissingShare parses the min_missing_share query parameter
func (h *AnalysisHandler) minMissingShare(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("min_missing_share")
	if raw == "" {
		return h.config.Quality.MinMissingShare, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidShare, raw)
	}
	return v, nil
}

// uploadStatus maps upload errors to HTTP status codes
func uploadStatus(err error) int {
	switch {
	case errors.Is(err, ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, dataset.ErrMalformedCSV),
		errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrEmptyDataset),
		errors.Is(err, ErrInvalidShare):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
