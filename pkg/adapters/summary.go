package adapters

import (
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/api"
	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

func MapDomainSourceToAPI(src domain.Source) api.Source {
	return api.Source{Name: src.Name, Country: src.Country}
}

func MapDomainSummaryToAPI(source string, s domain.Summary) api.Summary {
	return api.Summary{
		Source: source,
		Anchor: s.Anchor.Format(time.DateOnly),
		National: api.Mover{
			Week:     mapDelta(s.NationalWeek),
			LongView: mapLongView(s.National, s.Seasons),
		},
		Breadth: api.Breadth{
			Pct:             s.BreadthPct,
			SectorsCompared: s.SectorsCompared,
		},
		Leader: api.Mover{
			Week:     mapDelta(s.Leader),
			LongView: mapLongView(s.LeaderView, s.Seasons),
		},
		Laggard: api.Mover{
			Week:     mapDelta(s.Laggard),
			LongView: mapLongView(s.LaggardView, s.Seasons),
		},
	}
}

// OrderedSeasonMeans lists the observed seasonal means in season declaration order
func OrderedSeasonMeans(view domain.LongViewRecord, seasons []domain.SeasonWindow) []api.SeasonMean {
	out := make([]api.SeasonMean, 0, len(view.Seasonal))
	for _, w := range seasons {
		if mean, ok := view.Seasonal[w.Name]; ok {
			out = append(out, api.SeasonMean{Season: w.Name, Mean: mean})
		}
	}
	return out
}

func mapDelta(d domain.DeltaRecord) api.Delta {
	return api.Delta{
		Sector:  d.Sector,
		New:     api.Observation{Date: d.New.Date.Format(time.DateOnly), Value: d.New.Value},
		Old:     api.Observation{Date: d.Old.Date.Format(time.DateOnly), Value: d.Old.Value},
		DeltaPP: d.DeltaPP,
	}
}

func mapLongView(v domain.LongViewRecord, seasons []domain.SeasonWindow) api.LongView {
	return api.LongView{
		Name:       v.Name,
		Current:    v.Current,
		DeltaMonth: v.DeltaMonth,
		Seasonal:   OrderedSeasonMeans(v, seasons),
	}
}
