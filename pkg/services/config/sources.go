package config

import (
	"context"
	"fmt"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
)

const (
	DefaultSource = "us"

	usAggregateURL = "https://hiring-lab.github.io/job_postings_tracker/aggregate_job_postings_us.csv"
	usSectorURL    = "https://hiring-lab.github.io/job_postings_tracker/sector_job_postings_us.csv"
)

// Registry resolves named source profiles
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetSource(ctx context.Context, profile string) (domain.Source, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads source profiles from an ini file, one section per source:
//
//	[us]
//	country       = US
//	aggregate_url = https://...
//	sector_url    = https://...
//
// An empty path yields the built-in "us" profile.
func NewRegistry(path string) (Registry, error) {
	if path == "" {
		return NewDefaultRegistry(), nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("load sources %s: %w", path, err)
	}
	cfg, err := ini.Load(expanded)
	if err != nil {
		return nil, fmt.Errorf("load sources %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func NewDefaultRegistry() Registry {
	cfg := ini.Empty()
	section, _ := cfg.NewSection(DefaultSource)
	_, _ = section.NewKey("country", "US")
	_, _ = section.NewKey("aggregate_url", usAggregateURL)
	_, _ = section.NewKey("sector_url", usSectorURL)
	return &cfgRegistry{cfg: cfg}
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetSource(_ context.Context, profile string) (domain.Source, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.Source{}, fmt.Errorf("%w: %s", ErrUnknownSource, profile)
	}

	src := domain.Source{
		Name:         profile,
		Country:      section.Key("country").String(),
		AggregateURL: section.Key("aggregate_url").String(),
		SectorURL:    section.Key("sector_url").String(),
	}
	if src.AggregateURL == "" || src.SectorURL == "" {
		return domain.Source{}, fmt.Errorf("profile %s: aggregate_url and sector_url are required", profile)
	}
	return src, nil
}
