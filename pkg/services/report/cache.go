package report

import (
	"context"
	"sync"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/rs/zerolog"
)

// CachedService serves the last successful summary per source.
// A miss falls through to the wrapped service; Refresh rebuilds every source.
type CachedService struct {
	next Service

	mu        sync.RWMutex
	summaries map[string]domain.Summary
}

func NewCachedService(next Service) *CachedService {
	return &CachedService{
		next:      next,
		summaries: make(map[string]domain.Summary),
	}
}

func (c *CachedService) ListSources(ctx context.Context) ([]domain.Source, error) {
	return c.next.ListSources(ctx)
}

func (c *CachedService) GetSource(ctx context.Context, name string) (domain.Source, error) {
	return c.next.GetSource(ctx, name)
}

func (c *CachedService) Summarize(ctx context.Context, source string) (domain.Summary, error) {
	c.mu.RLock()
	summary, ok := c.summaries[source]
	c.mu.RUnlock()
	if ok {
		return summary, nil
	}

	summary, err := c.next.Summarize(ctx, source)
	if err != nil {
		return domain.Summary{}, err
	}
	c.store(source, summary)
	return summary, nil
}

// Refresh rebuilds the summary of every configured source. A source that fails
// keeps its previous entry; the first failure is returned after all sources ran.
func (c *CachedService) Refresh(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	sources, err := c.next.ListSources(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, src := range sources {
		summary, err := c.next.Summarize(ctx, src.Name)
		if err != nil {
			logger.Warn().Err(err).Str("source", src.Name).Msg("refresh failed, keeping cached summary")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.store(src.Name, summary)
	}
	return firstErr
}

func (c *CachedService) store(source string, summary domain.Summary) {
	c.mu.Lock()
	c.summaries[source] = summary
	c.mu.Unlock()
}
