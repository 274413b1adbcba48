package main

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/de-tools/hiring-pulse/pkg/logger"
	"github.com/de-tools/hiring-pulse/pkg/scheduler"
	"github.com/de-tools/hiring-pulse/pkg/server"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/de-tools/hiring-pulse/pkg/services/report"
	"github.com/de-tools/hiring-pulse/pkg/store/hiringlab"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	sourcesPath  string
	logLevel     string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Hiring Pulse",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "config", "c", "", "Path to the settings file (yaml, toml or json)")
	rootCmd.Flags().StringVarP(&sourcesPath, "sources", "s", "", "Path to the ini file with source profiles")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	log := newLogger(logLevel, os.Stdout)
	ctx := log.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	params, err := settings.Params()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry, err := config.NewRegistry(sourcesPath)
	if err != nil {
		return fmt.Errorf("failed to create source registry: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list source profiles: %w", err)
	}
	logSources(log, profiles)

	loader := hiringlab.NewLoader(hiringlab.NewClient(settings.ClientOptions()), settings.CSV)
	reports := report.NewService(registry, loader, params)

	if settings.Refresh.Schedule != "" {
		cached := report.NewCachedService(reports)
		sched := scheduler.New(log, settings.Refresh.Timeout)
		job := scheduler.NewJob("refresh-summaries", cached.Refresh)
		if err := sched.AddJob(settings.Refresh.Schedule, job); err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", settings.Refresh.Schedule, err)
		}
		go func() { _ = sched.RunNow(job) }()
		sched.Start()
		defer sched.Stop()
		reports = cached
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Reports: reports,
			Logger:  log,
		},
	})
	return api.Start()
}

// newLogger builds the server logger; logger.New already stamps each event
func newLogger(level string, w io.Writer) zerolog.Logger {
	return logger.New(logger.Config{Level: level, Output: w})
}

func logSources(log zerolog.Logger, profiles []string) {
	log.Info().Msgf("Found the following sources:")
	for _, name := range profiles {
		log.Info().Msgf("Name: `%s`", name)
	}
}
