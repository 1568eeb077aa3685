package missing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/edaq/internal/dataset"
)

func TestAnalyze(t *testing.T) {
	ds := dataset.MustNew(
		dataset.IntColumn("age", 10, 20, 30, nil),
		dataset.IntColumn("height", 140, 150, 160, 170),
		dataset.TextColumn("city", "A", "B", "A", nil),
	)

	table := Analyze(ds)
	require.Equal(t, 3, table.Len())

	// age and city tie at 0.25 and keep source order
	assert.Equal(t, "age", table.Rows[0].Column)
	assert.Equal(t, "city", table.Rows[1].Column)
	assert.Equal(t, "height", table.Rows[2].Column)

	age, ok := table.Get("age")
	require.True(t, ok)
	assert.Equal(t, 1, age.MissingCount)
	assert.Equal(t, 0.25, age.MissingShare)

	city, _ := table.Get("city")
	assert.Equal(t, 1, city.MissingCount)

	height, _ := table.Get("height")
	assert.Equal(t, 0, height.MissingCount)
	assert.Equal(t, 0.0, height.MissingShare)
}

func TestAnalyzeSortsDescending(t *testing.T) {
	ds := dataset.MustNew(
		dataset.IntColumn("good", 1, 2, 3, 4, 5),
		dataset.IntColumn("bad1", nil, nil, 3, 4, 5),
		dataset.IntColumn("bad2", nil, nil, nil, 4, 5),
	)

	table := Analyze(ds)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"bad2", "bad1", "good"}, []string{
		table.Rows[0].Column, table.Rows[1].Column, table.Rows[2].Column,
	})
	assert.InDelta(t, 0.6, table.Rows[0].MissingShare, 1e-12)
	assert.InDelta(t, 0.6, table.MaxShare(), 1e-12)
}

func TestAnalyzeEmpty(t *testing.T) {
	noRows := dataset.MustNew(dataset.IntColumn("a"), dataset.TextColumn("b"))
	noRowsTable := Analyze(noRows)
	assert.Equal(t, 0, noRowsTable.Len())
	assert.NotNil(t, Analyze(noRows).Rows)

	noCols := dataset.MustNew()
	noColsTable := Analyze(noCols)
	assert.Equal(t, 0, noColsTable.Len())
}
