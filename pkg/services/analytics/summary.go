package analytics

import (
	"fmt"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

// BuildSummary anchors the run on the latest national date and assembles every statistic.
// Any failure aborts the whole build.
func BuildSummary(national domain.Series, sectors domain.SectorSeries, p Params) (domain.Summary, error) {
	latest, ok := national.Latest()
	if !ok {
		return domain.Summary{}, fmt.Errorf("%w: national series is empty", ErrInsufficientData)
	}
	today := latest.Date

	current, err := lookup(national, today)
	if err != nil {
		return domain.Summary{}, err
	}
	lastWeek, err := lookup(national, today.AddDate(0, 0, -p.WeekOffset))
	if err != nil {
		return domain.Summary{}, fmt.Errorf("national weekly change: %w", err)
	}
	if _, err = lookup(national, today.AddDate(0, 0, -p.MonthOffset)); err != nil {
		return domain.Summary{}, fmt.Errorf("national monthly change: %w", err)
	}

	nationalView, err := SectorLongView(national, today, p)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("national long view: %w", err)
	}

	breadth, compared, err := ComputeBreadth(sectors, today, p)
	if err != nil {
		return domain.Summary{}, err
	}

	leader, laggard, err := IdentifyLeadersLaggards(sectors, today, p)
	if err != nil {
		return domain.Summary{}, err
	}
	leaderView, err := SectorLongView(sectors[leader.Sector], today, p)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("leader long view: %w", err)
	}
	laggardView, err := SectorLongView(sectors[laggard.Sector], today, p)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("laggard long view: %w", err)
	}

	seasons := make([]domain.SeasonWindow, len(p.Seasons))
	copy(seasons, p.Seasons)

	return domain.Summary{
		Anchor:          today,
		National:        nationalView,
		NationalWeek:    NewDeltaRecord(national.Name(), current, lastWeek),
		BreadthPct:      breadth,
		SectorsCompared: compared,
		Leader:          leader,
		LeaderView:      leaderView,
		Laggard:         laggard,
		LaggardView:     laggardView,
		Seasons:         seasons,
	}, nil
}
