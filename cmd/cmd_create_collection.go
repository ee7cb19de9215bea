package cmd

import (
	"github.com/spf13/cobra"
)

func NewCreateCollectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-collection",
		Short: "Mint the collection NFT",
		RunE:  createCollectionHandler,
	}
}

func createCollectionHandler(cmd *cobra.Command, _ []string) error {
	launchpadUsecase, conf, err := newLaunchpad(cmd.Context())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.CreateCollection(cmd.Context())
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).collection(result)
	return nil
}
