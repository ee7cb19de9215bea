package cmd

import (
	"github.com/spf13/cobra"
)

type createMachineCmdOptions struct {
	Collection string
}

func NewCreateMachineCommand() *cobra.Command {
	opts := &createMachineCmdOptions{}

	cmd := &cobra.Command{
		Use:   "create-machine",
		Short: "Create the minting machine of a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return createMachineHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Collection, "collection", "", "collection address printed by create-collection")
	_ = cmd.MarkFlagRequired("collection")

	return cmd
}

func createMachineHandler(opts *createMachineCmdOptions, cmd *cobra.Command, _ []string) error {
	collection, err := parseAddress("collection", opts.Collection)
	if err != nil {
		return err
	}

	launchpadUsecase, conf, err := newStageLaunchpad(cmd.Context(), cmd.Name())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.CreateMachine(cmd.Context(), collection)
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).machine(result)
	return nil
}
