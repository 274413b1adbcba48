package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSectorRecordsToSectorSeries_GroupsAndSorts(t *testing.T) {
	// Given rows in file order, not date order
	records := []store.SectorRecord{
		{Date: domain.NewDate(2025, time.May, 1), Sector: "Tech", Index: 50},
		{Date: domain.NewDate(2025, time.May, 1), Sector: "Retail", Index: 30},
		{Date: domain.NewDate(2025, time.April, 24), Sector: "Tech", Index: 40},
	}

	// When
	sectors, err := MapSectorRecordsToSectorSeries(records)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"Retail", "Tech"}, sectors.Names())
	tech := sectors["Tech"]
	assert.Equal(t, "Tech", tech.Name())
	latest, _ := tech.Latest()
	assert.Equal(t, 50.0, latest.Value)
}

func TestMapAggregateRecordsToNationalSeries_DuplicateDate_Errors(t *testing.T) {
	records := []store.AggregateRecord{
		{Date: domain.NewDate(2025, time.May, 1), Index: 105},
		{Date: domain.NewDate(2025, time.May, 1), Index: 106},
	}

	_, err := MapAggregateRecordsToNationalSeries(records)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate date")
}

func TestMapDatasetToDomain_NamesNationalSeries(t *testing.T) {
	ds := &store.Dataset{
		Aggregate: []store.AggregateRecord{{Date: domain.NewDate(2025, time.May, 1), Index: 105}},
	}

	national, sectors, err := MapDatasetToDomain(ds)

	require.NoError(t, err)
	assert.Equal(t, domain.NationalName, national.Name())
	assert.Empty(t, sectors)
}
