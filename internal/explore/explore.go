// Package explore holds the exploratory views shown next to a dataset
// profile: most frequent labels and the numeric correlation matrix.
package explore

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
)

const (
	DefaultMaxColumns = 5
	DefaultTopK       = 5
)

// TopCategories returns the topK most frequent values of the first maxColumns
// label columns. Columns without values are omitted. Non-positive arguments
// fall back to the defaults.
func TopCategories(ds *dataset.Dataset, maxColumns, topK int) []contracts.CategoryTable {
	if maxColumns <= 0 {
		maxColumns = DefaultMaxColumns
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	tables := []contracts.CategoryTable{}
	seen := 0

	for _, col := range ds.Columns() {
		if !col.Kind.IsCategory() {
			continue
		}
		if seen == maxColumns {
			break
		}
		seen++

		values := countValues(col, topK)
		if len(values) == 0 {
			continue
		}
		tables = append(tables, contracts.CategoryTable{Column: col.Name, Values: values})
	}

	return tables
}

func countValues(col dataset.Column, topK int) []contracts.CategoryCount {
	counts := make(map[string]int)
	order := []string{}

	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		if _, ok := counts[cell.Text]; !ok {
			order = append(order, cell.Text)
		}
		counts[cell.Text]++
	}

	// stable keeps first-seen order among equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topK {
		order = order[:topK]
	}

	total := 0
	for _, v := range order {
		total += counts[v]
	}

	out := make([]contracts.CategoryCount, len(order))
	for i, v := range order {
		out[i] = contracts.CategoryCount{
			Value: v,
			Count: counts[v],
			Share: float64(counts[v]) / float64(total),
		}
	}
	return out
}

// CorrelationMatrix computes Pearson coefficients between integer and float
// columns over rows where both values are present. Entries with fewer than
// two such rows or zero variance are nil.
func CorrelationMatrix(ds *dataset.Dataset) contracts.CorrelationMatrix {
	var cols []dataset.Column
	for _, col := range ds.Columns() {
		if col.Kind.IsQuantity() {
			cols = append(cols, col)
		}
	}

	m := contracts.CorrelationMatrix{
		Columns: make([]string, len(cols)),
		Values:  make([][]*float64, len(cols)),
	}
	for i, col := range cols {
		m.Columns[i] = col.Name
		m.Values[i] = make([]*float64, len(cols))
	}

	for i := range cols {
		for j := i; j < len(cols); j++ {
			r := pearson(cols[i], cols[j])
			if r != nil && i == j {
				one := 1.0
				r = &one
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}

	return m
}

func pearson(a, b dataset.Column) *float64 {
	x := make([]float64, 0, a.Len())
	y := make([]float64, 0, b.Len())
	for k := range a.Cells {
		if a.Cells[k].Valid && b.Cells[k].Valid {
			x = append(x, a.Cells[k].Num)
			y = append(y, b.Cells[k].Num)
		}
	}
	if len(x) < 2 {
		return nil
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	return &r
}
