package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/models/domain"
	"github.com/de-tools/hiring-pulse/pkg/services/analytics"
	"github.com/de-tools/hiring-pulse/pkg/store/hiringlab"
	"github.com/go-viper/mapstructure/v2"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Season is one row of the seasons table. Dates may be written bare
// (yaml `2025-01-01`, toml local date) or as "YYYY-MM-DD" strings.
type Season struct {
	Name  string    `mapstructure:"name"`
	Start time.Time `mapstructure:"start"`
	End   time.Time `mapstructure:"end"`
}

type HTTP struct {
	RetryMax int           `mapstructure:"retry_max"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Refresh controls the web server's summary cache. An empty schedule disables it.
type Refresh struct {
	Schedule string        `mapstructure:"schedule"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Settings is the report configuration; every field has a default
type Settings struct {
	WeekOffset  int                  `mapstructure:"week_offset"`
	MonthOffset int                  `mapstructure:"month_offset"`
	Seasons     []Season             `mapstructure:"seasons"`
	HTTP        HTTP                 `mapstructure:"http"`
	CSV         hiringlab.CSVOptions `mapstructure:"csv"`
	Refresh     Refresh              `mapstructure:"refresh"`
}

// LoadSettings reads a settings file (yaml, toml or json by extension).
// An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		dateHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.WeekOffset <= 0 || s.MonthOffset <= 0 {
		return nil, fmt.Errorf("offsets must be positive, got week=%d month=%d", s.WeekOffset, s.MonthOffset)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	p := analytics.DefaultParams()
	v.SetDefault("week_offset", p.WeekOffset)
	v.SetDefault("month_offset", p.MonthOffset)

	seasons := make([]map[string]string, 0, len(p.Seasons))
	for _, w := range p.Seasons {
		seasons = append(seasons, map[string]string{
			"name":  w.Name,
			"start": w.Start.Format(time.DateOnly),
			"end":   w.End.Format(time.DateOnly),
		})
	}
	v.SetDefault("seasons", seasons)

	h := hiringlab.DefaultClientOptions()
	v.SetDefault("http.retry_max", h.RetryMax)
	v.SetDefault("http.timeout", h.Timeout)

	c := hiringlab.DefaultCSVOptions()
	v.SetDefault("csv.date_column", c.DateColumn)
	v.SetDefault("csv.value_column", c.ValueColumn)
	v.SetDefault("csv.sector_column", c.SectorColumn)
	v.SetDefault("csv.country_column", c.CountryColumn)
	v.SetDefault("csv.date_layout", c.DateLayout)

	v.SetDefault("refresh.schedule", "")
	v.SetDefault("refresh.timeout", 2*time.Minute)
}

var timeType = reflect.TypeOf(time.Time{})

// dateHook normalizes every decoded date to a UTC calendar date
func dateHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeType {
			return data, nil
		}
		switch v := data.(type) {
		case time.Time:
			return domain.DateOf(v), nil
		case toml.LocalDate:
			return domain.NewDate(v.Year, time.Month(v.Month), v.Day), nil
		case toml.LocalDateTime:
			return domain.NewDate(v.Year, time.Month(v.Month), v.Day), nil
		case string:
			d, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", v)
			}
			return d, nil
		default:
			return data, nil
		}
	}
}

// Params converts the settings into analytics parameters
func (s *Settings) Params() (analytics.Params, error) {
	seasons := make([]domain.SeasonWindow, 0, len(s.Seasons))
	for _, season := range s.Seasons {
		if season.Start.IsZero() {
			return analytics.Params{}, fmt.Errorf("season %q: missing start", season.Name)
		}
		if season.End.IsZero() {
			return analytics.Params{}, fmt.Errorf("season %q: missing end", season.Name)
		}
		start, end := domain.DateOf(season.Start), domain.DateOf(season.End)
		if end.Before(start) {
			return analytics.Params{}, fmt.Errorf("season %q: end %s before start %s",
				season.Name, end.Format(time.DateOnly), start.Format(time.DateOnly))
		}
		seasons = append(seasons, domain.SeasonWindow{Name: season.Name, Start: start, End: end})
	}

	return analytics.Params{
		WeekOffset:  s.WeekOffset,
		MonthOffset: s.MonthOffset,
		Seasons:     seasons,
	}, nil
}

func (s *Settings) ClientOptions() hiringlab.ClientOptions {
	return hiringlab.ClientOptions{RetryMax: s.HTTP.RetryMax, Timeout: s.HTTP.Timeout}
}
