package analytics

import (
	"fmt"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

// ComputeBreadth returns the share of sectors (0-100) whose index rose week over week,
// together with the number of sectors that had both observations.
// Ties do not count as expansion.
func ComputeBreadth(sectors domain.SectorSeries, today time.Time, p Params) (float64, int, error) {
	pairs := alignWeek(sectors, today, p.WeekOffset)
	if len(pairs) == 0 {
		return 0, 0, fmt.Errorf("breadth for %s: %w: no sector has both weekly observations",
			today.Format(time.DateOnly), ErrInsufficientData)
	}

	expanding := 0
	for _, pair := range pairs {
		if pair.New.Value > pair.Old.Value {
			expanding++
		}
	}
	return 100 * float64(expanding) / float64(len(pairs)), len(pairs), nil
}
