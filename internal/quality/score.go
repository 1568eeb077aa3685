package quality

import (
	"math"

	"github.com/wonny/edaq/internal/contracts"
)

// Penalties subtracted from a perfect score of 1.0
const (
	PenaltyTooFewRows      = 0.15
	PenaltyTooManyColumns  = 0.05
	PenaltyConstant        = 0.08
	PenaltyHighCardinality = 0.10
	PenaltySuspiciousIDs   = 0.08

	PenaltyPerProblematicColumn = 0.04
	MaxProblematicPenalty       = 0.25

	PenaltyPerZeroColumn = 0.06
	MaxZeroPenalty       = 0.12
)

// Score combines the flags into a value in [0, 1]. The max missing share is
// always subtracted, so any missing value lowers the score.
func Score(f contracts.QualityFlags) float64 {
	score := 1.0
	score -= f.MaxMissingShare

	if f.TooFewRows {
		score -= PenaltyTooFewRows
	}
	if f.TooManyColumns {
		score -= PenaltyTooManyColumns
	}
	if f.HasConstantColumns {
		score -= PenaltyConstant
	}
	if f.HasHighCardinalityCategoricals {
		score -= PenaltyHighCardinality
	}
	if f.ProblematicMissingCount > 0 {
		score -= math.Min(MaxProblematicPenalty, float64(f.ProblematicMissingCount)*PenaltyPerProblematicColumn)
	}
	if f.HasSuspiciousIDDuplicates {
		score -= PenaltySuspiciousIDs
	}
	if f.HasManyZeroValues {
		score -= math.Min(MaxZeroPenalty, PenaltyPerZeroColumn*float64(len(f.ZeroValueColumns)))
	}

	return clamp(score)
}

func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// Counts is the coarse description of a dataset accepted by Estimate
type Counts struct {
	Rows            int     `json:"n_rows"`
	Columns         int     `json:"n_cols"`
	MaxMissingShare float64 `json:"max_missing_share"`
}

// Assessment is a quick assessment when only counts are known. Only the row,
// column and missing share checks apply; the other flags stay false.
type Assessment struct {
	TooFewRows                     bool    `json:"too_few_rows"`
	TooManyColumns                 bool    `json:"too_many_columns"`
	MaxMissingShare                float64 `json:"max_missing_share"`
	TooManyMissing                 bool    `json:"too_many_missing"`
	HasConstantColumns             bool    `json:"has_constant_columns"`
	HasHighCardinalityCategoricals bool    `json:"has_high_cardinality_categoricals"`
	HasSuspiciousIDDuplicates      bool    `json:"has_suspicious_id_duplicates"`
	HasManyZeroValues              bool    `json:"has_many_zero_values"`

	QualityScore float64 `json:"-"`
}

// Estimate scores a dataset from its counts. The score is rounded to four
// decimals.
func Estimate(c Counts) Assessment {
	e := Assessment{
		TooFewRows:      c.Rows < MinRows,
		TooManyColumns:  c.Columns > MaxColumns,
		MaxMissingShare: c.MaxMissingShare,
		TooManyMissing:  c.MaxMissingShare > TooManyMissingShare,
	}

	score := 1.0 - e.MaxMissingShare
	if e.TooFewRows {
		score -= PenaltyTooFewRows
	}
	if e.TooManyColumns {
		score -= PenaltyTooManyColumns
	}
	e.QualityScore = math.Round(clamp(score)*1e4) / 1e4

	return e
}
