package quality

import (
	"math"
	"strings"

	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
)

// constantColumns lists columns holding a single distinct value. Fully
// missing columns are not constant.
func constantColumns(profile contracts.DatasetProfile) []string {
	out := []string{}
	for _, c := range profile.Columns {
		if c.UniqueCount <= 1 && c.NonNullCount > 0 {
			out = append(out, c.Name)
		}
	}
	return out
}

func highCardinalityThreshold(rows int) int {
	scaled := int(math.Round(float64(rows) * HighCardinalityRowShare))
	return max(HighCardinalityFloor, max(HighCardinalityMinRows, scaled))
}

func highCardinalityColumns(profile contracts.DatasetProfile, threshold int) []string {
	out := []string{}
	for _, c := range profile.Columns {
		if !c.IsNumeric && c.UniqueCount > threshold {
			out = append(out, c.Name)
		}
	}
	return out
}

// problematicMissingColumns keeps table order, so the worst column comes first
func problematicMissingColumns(table contracts.MissingnessTable, minShare float64) []string {
	out := []string{}
	for _, r := range table.Rows {
		if r.MissingShare > minShare {
			out = append(out, r.Column)
		}
	}
	return out
}

// IsIDLike reports whether a column name follows identifier naming
func IsIDLike(name string) bool {
	n := strings.ToLower(name)
	return n == "id" ||
		strings.HasSuffix(n, "_id") ||
		strings.HasPrefix(n, "id_") ||
		n == "user_id" || n == "uid"
}

func suspiciousIDColumns(profile contracts.DatasetProfile) []string {
	out := []string{}
	for _, c := range profile.Columns {
		if !IsIDLike(c.Name) {
			continue
		}
		if c.NonNullCount > 0 && c.UniqueCount < c.NonNullCount {
			out = append(out, c.Name)
		}
	}
	return out
}

// zeroValueColumns checks integer and float columns. Booleans are not
// quantities and are skipped.
func zeroValueColumns(ds *dataset.Dataset) []contracts.ZeroValueColumn {
	out := []contracts.ZeroValueColumn{}
	if ds.NumRows() == 0 {
		return out
	}

	for _, col := range ds.Columns() {
		if !col.Kind.IsQuantity() {
			continue
		}

		present, zeros := 0, 0
		for _, cell := range col.Cells {
			if !cell.Valid {
				continue
			}
			present++
			if cell.Num == 0 {
				zeros++
			}
		}
		if present == 0 {
			continue
		}

		share := float64(zeros) / float64(present)
		if share >= ZeroValueThreshold {
			out = append(out, contracts.ZeroValueColumn{Column: col.Name, ZeroShare: share})
		}
	}

	return out
}
