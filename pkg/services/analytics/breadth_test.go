package analytics

import (
	"errors"
	"testing"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreadth_TwoSectors_HalfExpanding(t *testing.T) {
	// Given
	sectors := domain.SectorSeries{
		"Tech":   weekPair("Tech", 50, 40),
		"Retail": weekPair("Retail", 30, 35),
	}

	// When
	pct, n, err := ComputeBreadth(sectors, anchor, DefaultParams())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 50.0, pct)
	assert.Equal(t, 2, n)
}

func TestComputeBreadth_TiesDoNotExpand(t *testing.T) {
	sectors := domain.SectorSeries{
		"Flat": weekPair("Flat", 20, 20),
		"Up":   weekPair("Up", 21, 20),
	}

	pct, n, err := ComputeBreadth(sectors, anchor, DefaultParams())

	require.NoError(t, err)
	assert.Equal(t, 50.0, pct)
	assert.Equal(t, 2, n)
}

func TestComputeBreadth_SectorsMissingADateAreExcluded(t *testing.T) {
	// Given
	sectors := domain.SectorSeries{
		"Tech":      weekPair("Tech", 50, 40),
		"NoToday":   domain.MustSeries("NoToday", []domain.TimePoint{point(lastWeek, 10)}),
		"NoLastWk":  domain.MustSeries("NoLastWk", []domain.TimePoint{point(anchor, 10)}),
		"Unrelated": domain.MustSeries("Unrelated", []domain.TimePoint{point(prevMonth, 10)}),
	}

	// When
	pct, n, err := ComputeBreadth(sectors, anchor, DefaultParams())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 100.0, pct)
}

func TestComputeBreadth_NoAlignedSectors_InsufficientData(t *testing.T) {
	tests := []struct {
		name    string
		sectors domain.SectorSeries
	}{
		{name: "no sectors", sectors: domain.SectorSeries{}},
		{
			name: "only today",
			sectors: domain.SectorSeries{
				"Tech": domain.MustSeries("Tech", []domain.TimePoint{point(anchor, 1)}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := ComputeBreadth(tt.sectors, anchor, DefaultParams())

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInsufficientData))
			assert.Equal(t, 0, n)
		})
	}
}

func TestComputeBreadth_Monotonic(t *testing.T) {
	base := domain.SectorSeries{
		"A": weekPair("A", 10, 12),
		"B": weekPair("B", 15, 11),
		"C": weekPair("C", 9, 9),
	}
	before, _, err := ComputeBreadth(base, anchor, DefaultParams())
	require.NoError(t, err)

	withGainer := domain.SectorSeries{"D": weekPair("D", 30, 20)}
	withDecliner := domain.SectorSeries{"D": weekPair("D", 20, 20)}
	for name, s := range base {
		withGainer[name] = s
		withDecliner[name] = s
	}

	up, _, err := ComputeBreadth(withGainer, anchor, DefaultParams())
	require.NoError(t, err)
	down, _, err := ComputeBreadth(withDecliner, anchor, DefaultParams())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, up, before)
	assert.LessOrEqual(t, down, before)
	for _, pct := range []float64{before, up, down} {
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
	}
}

func TestComputeBreadth_UsesConfiguredWeekOffset(t *testing.T) {
	twoWeeks := domain.NewDate(2025, 4, 17)
	sectors := domain.SectorSeries{
		"Tech": domain.MustSeries("Tech", []domain.TimePoint{point(twoWeeks, 1), point(anchor, 2)}),
	}
	p := DefaultParams()
	p.WeekOffset = 14

	pct, n, err := ComputeBreadth(sectors, anchor, p)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 100.0, pct)
}
