package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/adapters"
	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
	"github.com/de-tools/hiring-pulse/pkg/services/analytics"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/rs/zerolog"
)

// Loader materializes both datasets of a source
type Loader interface {
	Load(ctx context.Context, src domain.Source) (*store.Dataset, error)
}

type Service interface {
	ListSources(ctx context.Context) ([]domain.Source, error)
	GetSource(ctx context.Context, name string) (domain.Source, error)
	Summarize(ctx context.Context, source string) (domain.Summary, error)
}

type service struct {
	registry config.Registry
	loader   Loader
	params   analytics.Params
}

func NewService(registry config.Registry, loader Loader, params analytics.Params) Service {
	return &service{
		registry: registry,
		loader:   loader,
		params:   params,
	}
}

func (s *service) ListSources(ctx context.Context) ([]domain.Source, error) {
	profiles, err := s.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	sources := make([]domain.Source, 0, len(profiles))
	for _, profile := range profiles {
		src, err := s.registry.GetSource(ctx, profile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (s *service) GetSource(ctx context.Context, name string) (domain.Source, error) {
	return s.registry.GetSource(ctx, name)
}

// Summarize loads the source and builds its weekly summary
func (s *service) Summarize(ctx context.Context, source string) (domain.Summary, error) {
	logger := zerolog.Ctx(ctx).With().Str("source", source).Logger()

	src, err := s.registry.GetSource(ctx, source)
	if err != nil {
		return domain.Summary{}, err
	}

	ds, err := s.loader.Load(ctx, src)
	if err != nil {
		return domain.Summary{}, err
	}

	national, sectors, err := adapters.MapDatasetToDomain(ds)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("source %s: %w", source, err)
	}

	summary, err := analytics.BuildSummary(national, sectors, s.params)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build summary")
		return domain.Summary{}, fmt.Errorf("source %s: %w", source, err)
	}

	logger.Info().
		Str("anchor", summary.Anchor.Format(time.DateOnly)).
		Int("sectors_compared", summary.SectorsCompared).
		Str("leader", summary.Leader.Sector).
		Str("laggard", summary.Laggard.Sector).
		Msg("summary built")
	return summary, nil
}
