// Package summary builds per-column statistical profiles of a dataset.
package summary

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
)

// DefaultExampleValues is the number of example values kept per column
const DefaultExampleValues = 3

// Options controls summarization
type Options struct {
	// ExampleValues caps ColumnProfile.ExampleValues. Zero means DefaultExampleValues,
	// a negative value keeps none.
	ExampleValues int
}

// Summarize profiles every column of ds in one pass per column
// ⭐ SSOT: 컬럼 요약 통계는 여기서만 계산
func Summarize(ds *dataset.Dataset, opts Options) contracts.DatasetProfile {
	limit := opts.ExampleValues
	if limit == 0 {
		limit = DefaultExampleValues
	}
	if limit < 0 {
		limit = 0
	}

	profile := contracts.DatasetProfile{
		RowCount:    ds.NumRows(),
		ColumnCount: ds.NumCols(),
		Columns:     make([]contracts.ColumnProfile, 0, ds.NumCols()),
	}

	for _, col := range ds.Columns() {
		profile.Columns = append(profile.Columns, summarizeColumn(col, ds.NumRows(), limit))
	}

	return profile
}

func summarizeColumn(col dataset.Column, rows, limit int) contracts.ColumnProfile {
	p := contracts.ColumnProfile{
		Name:          col.Name,
		Dtype:         col.Kind.String(),
		IsNumeric:     col.Kind.IsNumeric(),
		ExampleValues: make([]string, 0, limit),
	}

	distinct := make(map[string]struct{})
	var values []float64
	if p.IsNumeric {
		values = make([]float64, 0, col.Len())
	}

	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		p.NonNullCount++

		if _, seen := distinct[cell.Text]; !seen {
			distinct[cell.Text] = struct{}{}
			if len(p.ExampleValues) < limit {
				p.ExampleValues = append(p.ExampleValues, cell.Text)
			}
		}

		if p.IsNumeric {
			values = append(values, cell.Num)
		}
	}

	p.MissingCount = rows - p.NonNullCount
	p.MissingShare = Share(p.MissingCount, rows)
	p.UniqueCount = len(distinct)

	if p.IsNumeric && len(values) > 0 {
		p.Min, p.Max = finite(floats.Min(values)), finite(floats.Max(values))

		if len(values) < 2 {
			p.Mean = finite(values[0])
		} else {
			mean, std := stat.MeanStdDev(values, nil)
			p.Mean, p.Std = finite(mean), finite(std)
		}
	}

	return p
}

// finite returns nil for NaN and ±Inf so profiles stay JSON encodable.
// An "inf" cell or a sum that overflows leaves the affected stat absent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Share returns part/total, or 0.0 when total is zero
func Share(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total)
}
