// Package quality derives heuristic data-quality flags and an aggregate
// score from a dataset profile and its missingness table.
package quality

import (
	"github.com/wonny/edaq/internal/contracts"
	"github.com/wonny/edaq/internal/dataset"
)

// Policy constants. These are part of the product contract.
const (
	MinRows    = 100
	MaxColumns = 100

	TooManyMissingShare = 0.5

	HighCardinalityFloor    = 50
	HighCardinalityMinRows  = 10
	HighCardinalityRowShare = 0.1

	ZeroValueThreshold = 0.5

	DefaultMinMissingShare = 0.1
)

// Compute derives flags without access to raw values. The zero-value
// heuristic is reported as not computed.
// ⭐ SSOT: 품질 플래그 계산은 이 패키지에서만
func Compute(profile contracts.DatasetProfile, table contracts.MissingnessTable, minMissingShare float64) contracts.QualityFlags {
	b := newBuilder(profile, table, minMissingShare)
	return b.build()
}

// ComputeWithDataset derives flags including the zero-value heuristic, which
// needs the raw values of ds. ds must be the dataset profile was built from.
func ComputeWithDataset(profile contracts.DatasetProfile, table contracts.MissingnessTable, minMissingShare float64, ds *dataset.Dataset) contracts.QualityFlags {
	b := newBuilder(profile, table, minMissingShare)
	b.zeroValues(ds)
	return b.build()
}

// builder collects heuristic results before the flags value is assembled
type builder struct {
	profile contracts.DatasetProfile
	table   contracts.MissingnessTable

	minMissingShare float64
	zeroComputed    bool
	zeroColumns     []contracts.ZeroValueColumn
}

func newBuilder(profile contracts.DatasetProfile, table contracts.MissingnessTable, minMissingShare float64) *builder {
	return &builder{
		profile:         profile,
		table:           table,
		minMissingShare: minMissingShare,
		zeroColumns:     []contracts.ZeroValueColumn{},
	}
}

func (b *builder) zeroValues(ds *dataset.Dataset) {
	if ds == nil {
		return
	}
	b.zeroComputed = true
	b.zeroColumns = zeroValueColumns(ds)
}

func (b *builder) build() contracts.QualityFlags {
	maxMissing := b.table.MaxShare()
	threshold := highCardinalityThreshold(b.profile.RowCount)

	constant := constantColumns(b.profile)
	highCard := highCardinalityColumns(b.profile, threshold)
	problematic := problematicMissingColumns(b.table, b.minMissingShare)
	suspicious := suspiciousIDColumns(b.profile)

	flags := contracts.QualityFlags{
		TooFewRows:     b.profile.RowCount < MinRows,
		TooManyColumns: b.profile.ColumnCount > MaxColumns,

		MaxMissingShare: maxMissing,
		TooManyMissing:  maxMissing > TooManyMissingShare,

		ConstantColumns:    constant,
		HasConstantColumns: len(constant) > 0,

		HighCardinalityColumns:         highCard,
		HighCardinalityThreshold:       threshold,
		HasHighCardinalityCategoricals: len(highCard) > 0,

		ProblematicMissingCols:  problematic,
		ProblematicMissingCount: len(problematic),
		MinMissingShare:         b.minMissingShare,

		SuspiciousIDColumns:       suspicious,
		HasSuspiciousIDDuplicates: len(suspicious) > 0,

		ZeroValuesComputed: b.zeroComputed,
		ZeroValueColumns:   b.zeroColumns,
		ZeroValueThreshold: ZeroValueThreshold,
		HasManyZeroValues:  len(b.zeroColumns) > 0,
	}
	flags.QualityScore = Score(flags)

	return flags
}
