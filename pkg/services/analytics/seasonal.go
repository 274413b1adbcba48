package analytics

import (
	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

// SeasonalMeans averages the values falling inside each window.
// Windows without a single matching point are left out of the result.
func SeasonalMeans(points []domain.TimePoint, windows []domain.SeasonWindow) map[string]float64 {
	out := make(map[string]float64, len(windows))
	for _, w := range windows {
		var values []float64
		for _, p := range points {
			if w.Contains(p.Date) {
				values = append(values, p.Value)
			}
		}
		if len(values) > 0 {
			out[w.Name] = stat.Mean(values, nil)
		}
	}
	return out
}
