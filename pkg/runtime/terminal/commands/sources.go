package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	provider ServiceProvider
}

func NewSourcesCmd(provider ServiceProvider) *cobra.Command {
	sc := &SourcesCmd{provider: provider}
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured source profiles",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}
}

func (sc *SourcesCmd) run(cmd *cobra.Command, _ []string) error {
	svc, err := sc.provider()
	if err != nil {
		return fmt.Errorf("failed to configure sources: %w", err)
	}

	sources, err := svc.ListSources(cmd.Context())
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sources configured")
		return nil
	}

	for _, s := range sources {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n  aggregate: %s\n  sectors:   %s\n",
			s.Name, s.Country, s.AggregateURL, s.SectorURL)
	}
	return nil
}
