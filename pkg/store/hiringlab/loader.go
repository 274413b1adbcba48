package hiringlab

import (
	"context"
	"fmt"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Loader downloads and parses both files of a source
type Loader struct {
	fetcher Fetcher
	csv     CSVOptions
}

func NewLoader(fetcher Fetcher, opts CSVOptions) *Loader {
	return &Loader{fetcher: fetcher, csv: opts}
}

// Load fetches the national and sector files concurrently and returns
// only once both are fully parsed.
func (l *Loader) Load(ctx context.Context, src domain.Source) (*store.Dataset, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", src.Name).Logger()
	ds := &store.Dataset{Source: src.Name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := l.fetcher.Fetch(gctx, src.AggregateURL)
		if err != nil {
			return err
		}
		defer body.Close()

		ds.Aggregate, err = ParseAggregate(body, l.csv, src.Country)
		return err
	})
	g.Go(func() error {
		body, err := l.fetcher.Fetch(gctx, src.SectorURL)
		if err != nil {
			return err
		}
		defer body.Close()

		ds.Sectors, err = ParseSectors(body, l.csv, src.Country)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load source %s: %w", src.Name, err)
	}

	logger.Debug().
		Int("aggregate_rows", len(ds.Aggregate)).
		Int("sector_rows", len(ds.Sectors)).
		Msg("datasets loaded")
	return ds, nil
}
