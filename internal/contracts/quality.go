package contracts

// OKForModelThreshold is the minimum quality score of a dataset considered
// ready for modeling
const OKForModelThreshold = 0.5

// ZeroValueColumn is a numeric column dominated by zeros
type ZeroValueColumn struct {
	Column    string  `json:"column"`
	ZeroShare float64 `json:"zero_share"`
}

// QualityFlags is the output of the quality flag engine
// ⭐ SSOT: 품질 플래그 구조는 여기서만 정의
type QualityFlags struct {
	TooFewRows     bool `json:"too_few_rows"`
	TooManyColumns bool `json:"too_many_columns"`

	MaxMissingShare float64 `json:"max_missing_share"`
	TooManyMissing  bool    `json:"too_many_missing"`

	ConstantColumns    []string `json:"constant_columns"`
	HasConstantColumns bool     `json:"has_constant_columns"`

	HighCardinalityColumns         []string `json:"high_cardinality_columns"`
	HighCardinalityThreshold       int      `json:"high_cardinality_threshold"`
	HasHighCardinalityCategoricals bool     `json:"has_high_cardinality_categoricals"`

	ProblematicMissingCols  []string `json:"problematic_missing_cols"`
	ProblematicMissingCount int      `json:"problematic_missing_count"`
	MinMissingShare         float64  `json:"min_missing_share"`

	SuspiciousIDColumns       []string `json:"suspicious_id_columns"`
	HasSuspiciousIDDuplicates bool     `json:"has_suspicious_id_duplicates"`

	// ZeroValuesComputed is false when the raw dataset was not available;
	// the zero-value fields are then empty and carry no penalty.
	ZeroValuesComputed bool              `json:"zero_values_computed"`
	ZeroValueColumns   []ZeroValueColumn `json:"zero_value_columns"`
	ZeroValueThreshold float64           `json:"zero_value_threshold"`
	HasManyZeroValues  bool              `json:"has_many_zero_values"`

	QualityScore float64 `json:"quality_score"`
}

// OKForModel reports whether the score passes OKForModelThreshold
func (f QualityFlags) OKForModel() bool {
	return f.QualityScore >= OKForModelThreshold
}
