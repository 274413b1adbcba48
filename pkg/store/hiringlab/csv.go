package hiringlab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/models/store"
)

// CSVOptions names the columns of the published files
type CSVOptions struct {
	DateColumn    string `mapstructure:"date_column"`
	ValueColumn   string `mapstructure:"value_column"`
	SectorColumn  string `mapstructure:"sector_column"`
	CountryColumn string `mapstructure:"country_column"`
	DateLayout    string `mapstructure:"date_layout"`
}

func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		DateColumn:    "date",
		ValueColumn:   "index",
		SectorColumn:  "sector",
		CountryColumn: "jobcountry",
		DateLayout:    time.DateOnly,
	}
}

type row struct {
	date    time.Time
	country string
	sector  string
	value   float64
}

// ParseAggregate reads the national file. When country is set, rows of other
// countries are dropped; files without a country column are kept whole.
func ParseAggregate(r io.Reader, opts CSVOptions, country string) ([]store.AggregateRecord, error) {
	rows, err := parse(r, opts, false, country)
	if err != nil {
		return nil, fmt.Errorf("parse aggregate csv: %w", err)
	}
	records := make([]store.AggregateRecord, 0, len(rows))
	for _, rw := range rows {
		records = append(records, store.AggregateRecord{Date: rw.date, Country: rw.country, Index: rw.value})
	}
	return records, nil
}

// ParseSectors reads the per-sector file
func ParseSectors(r io.Reader, opts CSVOptions, country string) ([]store.SectorRecord, error) {
	rows, err := parse(r, opts, true, country)
	if err != nil {
		return nil, fmt.Errorf("parse sector csv: %w", err)
	}
	records := make([]store.SectorRecord, 0, len(rows))
	for _, rw := range rows {
		records = append(records, store.SectorRecord{
			Date:    rw.date,
			Country: rw.country,
			Sector:  rw.sector,
			Index:   rw.value,
		})
	}
	return records, nil
}

func parse(r io.Reader, opts CSVOptions, withSector bool, country string) ([]row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file")
		}
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	dateIdx, ok := cols[opts.DateColumn]
	if !ok {
		return nil, fmt.Errorf("missing column %q", opts.DateColumn)
	}
	valueIdx, ok := cols[opts.ValueColumn]
	if !ok {
		return nil, fmt.Errorf("missing column %q", opts.ValueColumn)
	}
	sectorIdx := -1
	if withSector {
		if sectorIdx, ok = cols[opts.SectorColumn]; !ok {
			return nil, fmt.Errorf("missing column %q", opts.SectorColumn)
		}
	}
	countryIdx, hasCountry := cols[opts.CountryColumn]

	var rows []row
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var rw row
		if hasCountry {
			rw.country = strings.TrimSpace(record[countryIdx])
			if country != "" && !strings.EqualFold(rw.country, country) {
				continue
			}
		}

		raw := strings.TrimSpace(record[valueIdx])
		if raw == "" || raw == "NA" || raw == "NaN" || raw == "null" {
			continue
		}
		rw.value, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", line, raw, err)
		}

		d, err := time.Parse(opts.DateLayout, strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date: %w", line, err)
		}
		rw.date = domain.DateOf(d)

		if withSector {
			rw.sector = strings.TrimSpace(record[sectorIdx])
			if rw.sector == "" {
				return nil, fmt.Errorf("line %d: empty sector", line)
			}
		}
		rows = append(rows, rw)
	}
	return rows, nil
}
