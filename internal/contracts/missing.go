package contracts

// MissingnessRow is the missing-value count and share of one column
type MissingnessRow struct {
	Column       string  `json:"column"`
	MissingCount int     `json:"missing_count"`
	MissingShare float64 `json:"missing_share"`
}

// MissingnessTable lists columns by missing share, highest first.
// Columns with equal share keep their source order.
type MissingnessTable struct {
	Rows []MissingnessRow `json:"rows"`
}

// Get returns the row for a column
func (t *MissingnessTable) Get(column string) (MissingnessRow, bool) {
	for _, r := range t.Rows {
		if r.Column == column {
			return r, true
		}
	}
	return MissingnessRow{}, false
}

// Len returns the number of rows
func (t *MissingnessTable) Len() int {
	return len(t.Rows)
}

// MaxShare returns the highest missing share, 0.0 for an empty table
func (t *MissingnessTable) MaxShare() float64 {
	max := 0.0
	for _, r := range t.Rows {
		if r.MissingShare > max {
			max = r.MissingShare
		}
	}
	return max
}
