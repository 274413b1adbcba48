package analytics

import (
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

// alignWeek inner-joins every sector on today and today-offset, ordered by sector name.
// Sectors missing either date are skipped.
func alignWeek(sectors domain.SectorSeries, today time.Time, offset int) []domain.DeltaRecord {
	lastWeek := today.AddDate(0, 0, -offset)

	var pairs []domain.DeltaRecord
	for _, name := range sectors.Names() {
		s := sectors[name]
		cur, ok := s.At(today)
		if !ok {
			continue
		}
		prev, ok := s.At(lastWeek)
		if !ok {
			continue
		}
		pairs = append(pairs, NewDeltaRecord(name, cur, prev))
	}
	return pairs
}

func lookup(s domain.Series, d time.Time) (domain.TimePoint, error) {
	p, ok := s.At(d)
	if !ok {
		return domain.TimePoint{}, &MissingObservationError{Series: s.Name(), Date: domain.DateOf(d)}
	}
	return p, nil
}
