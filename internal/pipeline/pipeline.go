// Package pipeline runs the analysis stages over one dataset.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
	"github.com/wonny/edaq/internal/explore"
	"github.com/wonny/edaq/internal/missing"
	"github.com/wonny/edaq/internal/quality"
	"github.com/wonny/edaq/internal/summary"
)

// Options configures Run. Zero values select package defaults, except
// MinMissingShare where zero is a valid threshold; use DefaultOptions.
type Options struct {
	MinMissingShare float64
	ExampleValues   int

	// Explore adds top categories and the correlation matrix
	Explore            bool
	MaxCategoryColumns int
	TopK               int
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MinMissingShare:    quality.DefaultMinMissingShare,
		ExampleValues:      summary.DefaultExampleValues,
		MaxCategoryColumns: explore.DefaultMaxColumns,
		TopK:               explore.DefaultTopK,
	}
}

// Result holds the output of every stage
type Result struct {
	Profile contracts.DatasetProfile
	Missing contracts.MissingnessTable
	Flags   contracts.QualityFlags

	// Set only with Options.Explore
	TopCategories []contracts.CategoryTable
	Correlation   *contracts.CorrelationMatrix
}

// Run summarizes ds and computes its missingness concurrently, then derives
// the quality flags from both and the raw values. It fails only when ctx is
// done.
func Run(ctx context.Context, ds *dataset.Dataset, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	res := &Result{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res.Profile = summary.Summarize(ds, summary.Options{ExampleValues: opts.ExampleValues})
		return gctx.Err()
	})
	g.Go(func() error {
		res.Missing = missing.Analyze(ds)
		return gctx.Err()
	})
	if opts.Explore {
		g.Go(func() error {
			res.TopCategories = explore.TopCategories(ds, opts.MaxCategoryColumns, opts.TopK)
			return gctx.Err()
		})
		g.Go(func() error {
			m := explore.CorrelationMatrix(ds)
			res.Correlation = &m
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	res.Flags = quality.ComputeWithDataset(res.Profile, res.Missing, opts.MinMissingShare, ds)

	return res, nil
}
