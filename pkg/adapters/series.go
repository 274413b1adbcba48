package adapters

import (
	"fmt"
	"sort"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
)

// MapAggregateRecordsToNationalSeries sorts the national rows by date.
// Two rows on the same date are rejected rather than merged.
func MapAggregateRecordsToNationalSeries(records []store.AggregateRecord) (domain.Series, error) {
	points := make([]domain.TimePoint, 0, len(records))
	for _, r := range records {
		points = append(points, domain.TimePoint{Date: domain.DateOf(r.Date), Value: r.Index})
	}
	sortPoints(points)
	return domain.NewSeries(domain.NationalName, points)
}

// MapSectorRecordsToSectorSeries groups rows by sector and sorts each group by date
func MapSectorRecordsToSectorSeries(records []store.SectorRecord) (domain.SectorSeries, error) {
	grouped := make(map[string][]domain.TimePoint)
	for _, r := range records {
		grouped[r.Sector] = append(grouped[r.Sector], domain.TimePoint{Date: domain.DateOf(r.Date), Value: r.Index})
	}

	sectors := make(domain.SectorSeries, len(grouped))
	for name, points := range grouped {
		sortPoints(points)
		s, err := domain.NewSeries(name, points)
		if err != nil {
			return nil, fmt.Errorf("sector series: %w", err)
		}
		sectors[name] = s
	}
	return sectors, nil
}

// MapDatasetToDomain converts both files of a source
func MapDatasetToDomain(ds *store.Dataset) (domain.Series, domain.SectorSeries, error) {
	national, err := MapAggregateRecordsToNationalSeries(ds.Aggregate)
	if err != nil {
		return domain.Series{}, nil, fmt.Errorf("national series: %w", err)
	}
	sectors, err := MapSectorRecordsToSectorSeries(ds.Sectors)
	if err != nil {
		return domain.Series{}, nil, err
	}
	return national, sectors, nil
}

func sortPoints(points []domain.TimePoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}
