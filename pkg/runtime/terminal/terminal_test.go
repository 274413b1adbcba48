package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/api"
	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/de-tools/hiring-pulse/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	ds  *store.Dataset
	err error
	got []domain.Source
}

func (s *stubLoader) Load(_ context.Context, src domain.Source) (*store.Dataset, error) {
	s.got = append(s.got, src)
	return s.ds, s.err
}

func dataset() *store.Dataset {
	anchor := domain.NewDate(2025, time.May, 1)
	national := []float64{101, 102, 102.5, 103, 105}
	tech := []float64{42, 41, 40.5, 40, 50}
	retail := []float64{33, 34, 34, 35, 30}

	ds := &store.Dataset{Source: "us"}
	for i := range national {
		d := anchor.AddDate(0, 0, -7*(len(national)-1-i))
		ds.Aggregate = append(ds.Aggregate, store.AggregateRecord{Date: d, Index: national[i]})
		ds.Sectors = append(ds.Sectors,
			store.SectorRecord{Date: d, Sector: "Tech", Index: tech[i]},
			store.SectorRecord{Date: d, Sector: "Retail", Index: retail[i]},
		)
	}
	return ds
}

func newTestCLI(loader *stubLoader, out *bytes.Buffer) *CLI {
	return NewCLI(Options{
		Output:    out,
		LogOutput: &bytes.Buffer{},
		Loader: func(*config.Settings) report.Loader {
			return loader
		},
	})
}

func TestCLI_Report_Markdown(t *testing.T) {
	// Given
	var out bytes.Buffer
	loader := &stubLoader{ds: dataset()}
	cli := newTestCLI(loader, &out)
	cli.rootCmd.SetArgs([]string{"report"})

	// When
	err := cli.Execute()

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "May 01 2025")
	assert.Contains(t, out.String(), "**Top gainer – Tech**")
	require.Len(t, loader.got, 1)
	assert.Equal(t, "us", loader.got[0].Name)
}

func TestCLI_Report_JSONWithSourcesFile(t *testing.T) {
	// Given
	dir := t.TempDir()
	sources := filepath.Join(dir, "sources.ini")
	require.NoError(t, os.WriteFile(sources, []byte(`[gb]
country = GB
aggregate_url = https://example.test/gb/aggregate.csv
sector_url = https://example.test/gb/sector.csv
`), 0o644))

	var out bytes.Buffer
	loader := &stubLoader{ds: dataset()}
	cli := newTestCLI(loader, &out)
	cli.rootCmd.SetArgs([]string{"report", "--sources", sources, "--source", "gb", "--format", "json"})

	// When
	err := cli.Execute()

	// Then
	require.NoError(t, err)
	var got api.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "gb", got.Source)
	assert.Equal(t, 50.0, got.Breadth.Pct)
	assert.Equal(t, "https://example.test/gb/sector.csv", loader.got[0].SectorURL)
}

func TestCLI_Report_UnknownSource(t *testing.T) {
	cli := newTestCLI(&stubLoader{ds: dataset()}, &bytes.Buffer{})
	cli.rootCmd.SetArgs([]string{"report", "--source", "mars"})

	err := cli.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownSource))
}

func TestCLI_Report_LoadFailure(t *testing.T) {
	cli := newTestCLI(&stubLoader{err: errors.New("dial tcp: timeout")}, &bytes.Buffer{})
	cli.rootCmd.SetArgs([]string{"report"})

	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build summary")
}

func TestCLI_Report_BadFormat(t *testing.T) {
	cli := newTestCLI(&stubLoader{ds: dataset()}, &bytes.Buffer{})
	cli.rootCmd.SetArgs([]string{"report", "--format", "pdf"})

	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "pdf"`)
}

func TestCLI_Sources_ListsDefaultProfile(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&stubLoader{}, &out)
	cli.rootCmd.SetArgs([]string{"sources"})

	err := cli.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "us\tUS")
	assert.Contains(t, out.String(), "aggregate_job_postings_us.csv")
}

func TestCLI_Report_XLSXToFile(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "pulse.xlsx")
	var out bytes.Buffer
	cli := newTestCLI(&stubLoader{ds: dataset()}, &out)
	cli.rootCmd.SetArgs([]string{"report", "--format", "xlsx", "--output", path})

	// When
	err := cli.Execute()

	// Then
	require.NoError(t, err)
	assert.Empty(t, out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), data[:2])
}
