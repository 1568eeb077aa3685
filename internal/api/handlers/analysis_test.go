package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/edaq/internal/analysisconfig"
	"github.com/wonny/edaq/internal/api/middleware"
	"github.com/wonny/edaq/pkg/logger"
)

const scenarioCSV = `user_id,const,val,maybe
1,5,0,a
1,5,0,
2,5,0,b
3,5,1,a
3,5,2,c
`

func newHandler(maxUpload int64) *AnalysisHandler {
	return NewAnalysisHandler(analysisconfig.Default(), maxUpload, logger.Nop())
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func uploadRequest(t *testing.T, target, content string) *http.Request {
	t.Helper()

	body, contentType := multipartBody(t, UploadField, "data.csv", content)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	middleware.RequestID(h).ServeHTTP(rec, req)
	return rec
}

func TestQuality(t *testing.T) {
	h := newHandler(1 << 20)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantScore  float64
		wantOK     bool
	}{
		{"healthy", `{"n_rows":1000,"n_cols":10,"max_missing_share":0.05}`, http.StatusOK, 0.95, true},
		{"small and sparse", `{"n_rows":10,"n_cols":3,"max_missing_share":0.4}`, http.StatusOK, 0.45, false},
		{"bad json", `{"n_rows":`, http.StatusBadRequest, 0, false},
		{"negative rows", `{"n_rows":-1,"n_cols":3}`, http.StatusBadRequest, 0, false},
		{"share above one", `{"n_rows":1,"n_cols":3,"max_missing_share":1.5}`, http.StatusBadRequest, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/quality", strings.NewReader(tt.body))
			rec := serve(h.Quality, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"error"`)
				return
			}

			var resp EstimateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.InDelta(t, tt.wantScore, resp.QualityScore, 1e-9)
			assert.Equal(t, tt.wantOK, resp.OKForModel)
		})
	}
}

func TestQualityFromCSV(t *testing.T) {
	h := newHandler(1 << 20)

	for _, target := range []string{"/quality-from-csv", "/quality-flags-from-csv"} {
		t.Run(target, func(t *testing.T) {
			req := uploadRequest(t, target+"?min_missing_share=0.1", scenarioCSV)
			rec := serve(h.QualityFromCSV, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp QualityResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.NotEmpty(t, resp.RequestID)
			assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), resp.RequestID)
			assert.Equal(t, 5, resp.NRows)
			assert.Equal(t, 4, resp.NCols)
			assert.Equal(t, []string{"const"}, resp.Flags.ConstantColumns)
			assert.Equal(t, []string{"user_id"}, resp.Flags.SuspiciousIDColumns)
			assert.True(t, resp.Flags.ZeroValuesComputed)
			require.Len(t, resp.Flags.ZeroValueColumns, 1)
			assert.Equal(t, "val", resp.Flags.ZeroValueColumns[0].Column)
			assert.InDelta(t, 0.39, resp.QualityScore, 1e-9)
			assert.False(t, resp.OKForModel)
		})
	}
}

func TestQualityFromCSV_MinMissingShare(t *testing.T) {
	h := newHandler(1 << 20)

	req := uploadRequest(t, "/quality-from-csv?min_missing_share=0.5", scenarioCSV)
	rec := serve(h.QualityFlagsFromCSV, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QualityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.5, resp.Flags.MinMissingShare)
	assert.Empty(t, resp.Flags.ProblematicMissingCols)
}

func TestQualityFromCSV_Errors(t *testing.T) {
	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		maxUpload  int64
		wantStatus int
	}{
		{
			name:       "bad share",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv?min_missing_share=abc", scenarioCSV) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "share out of range",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv?min_missing_share=1.2", scenarioCSV) },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "header only",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv", "a,b\n") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv", "a,b\n1,2,3\n") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty file",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv", "") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong field",
			req: func(t *testing.T) *http.Request {
				body, contentType := multipartBody(t, "upload", "data.csv", scenarioCSV)
				req := httptest.NewRequest(http.MethodPost, "/quality-from-csv", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/quality-from-csv", strings.NewReader(scenarioCSV))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "too large",
			req:        func(t *testing.T) *http.Request { return uploadRequest(t, "/quality-from-csv", scenarioCSV) },
			maxUpload:  64,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxUpload := tt.maxUpload
			if maxUpload == 0 {
				maxUpload = 1 << 20
			}
			h := newHandler(maxUpload)

			rec := serve(h.QualityFromCSV, tt.req(t))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSummaryFromCSV(t *testing.T) {
	h := newHandler(1 << 20)

	csv := "age,height,city\n10,140,A\n20,150,B\n30,160,A\n,170,\n"
	rec := serve(h.SummaryFromCSV, uploadRequest(t, "/summary-from-csv", csv))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, 4, resp.Summary.RowCount)

	age, ok := resp.Summary.Column("age")
	require.True(t, ok)
	assert.Equal(t, 1, age.MissingCount)
	assert.Equal(t, 0.25, age.MissingShare)
	require.NotNil(t, age.Mean)
	assert.Equal(t, 20.0, *age.Mean)

	require.Len(t, resp.Missing.Rows, 3)
	assert.Equal(t, "age", resp.Missing.Rows[0].Column)

	require.Len(t, resp.TopCategories, 1)
	assert.Equal(t, "city", resp.TopCategories[0].Column)

	require.NotNil(t, resp.Correlation)
	assert.Equal(t, []string{"age", "height"}, resp.Correlation.Columns)
}

func TestSummaryFromCSV_NonFinite(t *testing.T) {
	h := newHandler(1 << 20)

	rec := serve(h.SummaryFromCSV, uploadRequest(t, "/summary-from-csv", "x\n1\ninf\n2\n"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Body.String())

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	x, ok := resp.Summary.Column("x")
	require.True(t, ok)
	assert.Equal(t, "float", x.Dtype)
	require.NotNil(t, x.Min)
	assert.Equal(t, 1.0, *x.Min)
	assert.Nil(t, x.Max)
	assert.Nil(t, x.Mean)
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]float64{"mean": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to encode response"}`, rec.Body.String())
}

func TestSummaryFromCSV_Empty(t *testing.T) {
	h := newHandler(1 << 20)
	rec := serve(h.SummaryFromCSV, uploadRequest(t, "/summary-from-csv", "a,b\n"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, uploadStatus(ErrEmptyDataset))
	assert.Equal(t, http.StatusRequestEntityTooLarge, uploadStatus(ErrUploadTooLarge))
	assert.Equal(t, http.StatusInternalServerError, uploadStatus(assert.AnError))
}
