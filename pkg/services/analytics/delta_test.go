package analytics

import (
	"testing"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestPctPointChange(t *testing.T) {
	assert.Equal(t, 2.0, PctPointChange(105, 103))
	assert.Equal(t, -5.0, PctPointChange(30, 35))
	assert.Equal(t, 0.0, PctPointChange(12.5, 12.5))
}

func TestPctPointChange_IsAntisymmetric(t *testing.T) {
	values := []float64{-40.25, -1, 0, 0.1, 3.5, 99.99, 1e6}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, -PctPointChange(b, a), PctPointChange(a, b), "a=%v b=%v", a, b)
		}
	}
}

func TestNewDeltaRecord_UsesPctPointChange(t *testing.T) {
	// Given
	anchor := domain.NewDate(2025, time.May, 1)
	cur := domain.TimePoint{Date: anchor, Value: 30}
	prev := domain.TimePoint{Date: anchor.AddDate(0, 0, -7), Value: 35}

	// When
	d := NewDeltaRecord("Retail", cur, prev)

	// Then
	assert.Equal(t, domain.DeltaRecord{Sector: "Retail", New: cur, Old: prev, DeltaPP: -5}, d)
	assert.Equal(t, PctPointChange(cur.Value, prev.Value), d.DeltaPP)
}
