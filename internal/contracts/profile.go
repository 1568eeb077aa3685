package contracts

// ColumnProfile is the statistical profile of one dataset column
// ⭐ SSOT: Summarizer → Quality Flag Engine 컬럼 요약 전달
type ColumnProfile struct {
	Name          string   `json:"name"`
	Dtype         string   `json:"dtype"`
	NonNullCount  int      `json:"non_null_count"`
	MissingCount  int      `json:"missing_count"`
	MissingShare  float64  `json:"missing_share"`
	UniqueCount   int      `json:"unique_count"`
	ExampleValues []string `json:"example_values"`
	IsNumeric     bool     `json:"is_numeric"`

	// Present only for numeric columns with at least one value.
	// Std also needs two values. Non-finite results are left out.
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Mean *float64 `json:"mean"`
	Std  *float64 `json:"std"`
}

// DatasetProfile is the column-by-column summary of a dataset
type DatasetProfile struct {
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Column looks up a column profile by name
func (p *DatasetProfile) Column(name string) (ColumnProfile, bool) {
	for _, c := range p.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnProfile{}, false
}
