package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/wonny/edaq/internal/dataset"
	"github.com/wonny/edaq/pkg/config"
	"github.com/wonny/edaq/pkg/httputil"
	"github.com/wonny/edaq/pkg/logger"
)

// readDataset loads a CSV from a file path or an http(s) URL with the
// configured parse options. Remote files obey the upload size limit.
func readDataset(ctx context.Context, rt *appRuntime, location string) (*dataset.Dataset, error) {
	var (
		r    io.Reader
		size int64
	)

	if httputil.IsRemote(location) {
		body, err := newFetchClient(rt.cfg, rt.log).Fetch(ctx, location, rt.cfg.HTTP.MaxUploadBytes)
		if err != nil {
			return nil, fmt.Errorf("fetch dataset: %w", err)
		}
		r, size = bytes.NewReader(body), int64(len(body))
	} else {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()

		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}
		r = f
	}

	ds, err := dataset.ReadCSV(r, rt.analysis.ReadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}

	rt.log.WithFields(map[string]interface{}{
		"file": location,
		"size": humanize.Bytes(uint64(size)),
		"rows": ds.NumRows(),
		"cols": ds.NumCols(),
	}).Debug("Dataset loaded")

	return ds, nil
}

// newFetchClient applies the FETCH_* settings to the HTTP client
func newFetchClient(cfg *config.Config, log *logger.Logger) *httputil.Client {
	client := httputil.New(cfg, log)

	if cfg.FetchRetries > 0 {
		client = client.WithRetry(cfg.FetchRetries, cfg.FetchRetryDelay)
	} else {
		client = client.DisableRetry()
	}

	if cfg.FetchRPS > 0 {
		client = client.WithRateLimit(cfg.FetchRPS, 1)
	}

	return client
}
