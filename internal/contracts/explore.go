package contracts

// CategoryCount is one row of a top-categories table
type CategoryCount struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// CategoryTable holds the most frequent values of a label column
type CategoryTable struct {
	Column string          `json:"column"`
	Values []CategoryCount `json:"values"`
}

// CorrelationMatrix holds Pearson coefficients between numeric columns.
// Values[i][j] is nil when the coefficient is undefined.
type CorrelationMatrix struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
}

// Get returns the coefficient between two columns
func (m *CorrelationMatrix) Get(a, b string) (*float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return nil, false
	}
	return m.Values[i][j], true
}

func (m *CorrelationMatrix) index(name string) int {
	for i, c := range m.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
