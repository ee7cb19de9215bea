package cmd

import (
	"github.com/spf13/cobra"
)

func NewRunAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run-all",
		Short: "Run every stage from collection issuance to the first mint",
		RunE:  runAllHandler,
	}
}

func runAllHandler(cmd *cobra.Command, _ []string) error {
	launchpadUsecase, conf, err := newLaunchpad(cmd.Context())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.RunAll(cmd.Context())
	report := newReporter(cmd.OutOrStdout(), conf.Explorer())
	if result != nil {
		if result.Collection != nil {
			report.collection(result.Collection)
		}
		if result.Machine != nil {
			report.machine(result.Machine)
		}
		if result.Guards != nil {
			report.guards(result.Guards)
		}
		if result.Items != nil {
			report.items(result.Items)
		}
		if result.Mint != nil {
			report.mint(result.Mint)
		}
	}
	return err
}
