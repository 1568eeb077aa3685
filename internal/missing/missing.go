// Package missing computes the per-column missing value table.
package missing

import (
	"sort"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
	"github.com/wonny/edaq/internal/summary"
)

// Analyze counts missing cells per column and orders the result by missing
// share, highest first. Ties keep source column order. A dataset without rows
// or without columns yields an empty table.
func Analyze(ds *dataset.Dataset) contracts.MissingnessTable {
	table := contracts.MissingnessTable{Rows: []contracts.MissingnessRow{}}
	if ds.NumRows() == 0 || ds.NumCols() == 0 {
		return table
	}

	for _, col := range ds.Columns() {
		missing := 0
		for _, cell := range col.Cells {
			if !cell.Valid {
				missing++
			}
		}
		table.Rows = append(table.Rows, contracts.MissingnessRow{
			Column:       col.Name,
			MissingCount: missing,
			MissingShare: summary.Share(missing, ds.NumRows()),
		})
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].MissingShare > table.Rows[j].MissingShare
	})

	return table
}
