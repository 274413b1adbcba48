package analytics

import (
	"fmt"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

// IdentifyLeadersLaggards picks the sectors with the largest and smallest weekly move.
// On equal moves the lexicographically first sector wins.
func IdentifyLeadersLaggards(
	sectors domain.SectorSeries,
	today time.Time,
	p Params,
) (leader, laggard domain.DeltaRecord, err error) {
	pairs := alignWeek(sectors, today, p.WeekOffset)
	if len(pairs) == 0 {
		return leader, laggard, fmt.Errorf("leaders for %s: %w: no sector has both weekly observations",
			today.Format(time.DateOnly), ErrInsufficientData)
	}

	// pairs are already ordered by name, so strict comparisons keep the first on ties
	leader, laggard = pairs[0], pairs[0]
	for _, pair := range pairs[1:] {
		d := pair.DeltaPP
		if d > leader.DeltaPP {
			leader = pair
		}
		if d < laggard.DeltaPP {
			laggard = pair
		}
	}
	return leader, laggard, nil
}
