package terminal

import (
	"io"
	"os"

	"github.com/de-tools/hiring-pulse/pkg/logger"
	"github.com/de-tools/hiring-pulse/pkg/runtime/terminal/commands"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/de-tools/hiring-pulse/pkg/services/report"
	"github.com/de-tools/hiring-pulse/pkg/store/hiringlab"
	"github.com/spf13/cobra"
)

// LoaderFactory builds the dataset loader from the resolved settings
type LoaderFactory func(settings *config.Settings) report.Loader

// CLI represents the command-line interface
type CLI struct {
	opts    Options
	rootCmd *cobra.Command

	settingsPath string
	sourcesPath  string
	logLevel     string
	prettyLogs   bool
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	Loader    LoaderFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Loader == nil {
		opts.Loader = HiringLabLoader
	}

	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// HiringLabLoader downloads sources over HTTP
func HiringLabLoader(settings *config.Settings) report.Loader {
	return hiringlab.NewLoader(hiringlab.NewClient(settings.ClientOptions()), settings.CSV)
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hiring-pulse",
		Short:         "Weekly job-postings snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			l := logger.New(logger.Config{Level: cli.logLevel, Pretty: cli.prettyLogs, Output: cli.opts.LogOutput})
			cmd.SetContext(l.WithContext(cmd.Context()))
		},
	}
	cmd.SetOut(cli.opts.Output)

	cmd.PersistentFlags().StringVar(&cli.settingsPath, "config", "", "Path to the settings file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&cli.sourcesPath, "sources", "", "Path to the ini file with source profiles")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&cli.prettyLogs, "pretty", false, "Human-readable log output")

	cmd.AddCommand(commands.NewReportCmd(cli.service))
	cmd.AddCommand(commands.NewSourcesCmd(cli.service))

	return cmd
}

func (cli *CLI) service() (report.Service, error) {
	settings, err := config.LoadSettings(cli.settingsPath)
	if err != nil {
		return nil, err
	}
	params, err := settings.Params()
	if err != nil {
		return nil, err
	}
	registry, err := config.NewRegistry(cli.sourcesPath)
	if err != nil {
		return nil, err
	}
	return report.NewService(registry, cli.opts.Loader(settings), params), nil
}
