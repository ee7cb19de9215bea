package cmd

import (
	"github.com/spf13/cobra"
)

type addItemsCmdOptions struct {
	Machine string
}

func NewAddItemsCommand() *cobra.Command {
	opts := &addItemsCmdOptions{}

	cmd := &cobra.Command{
		Use:   "add-items",
		Short: "Load the machine inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return addItemsHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Machine, "machine", "", "machine address printed by create-machine")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}

func addItemsHandler(opts *addItemsCmdOptions, cmd *cobra.Command, _ []string) error {
	machine, err := parseAddress("machine", opts.Machine)
	if err != nil {
		return err
	}

	launchpadUsecase, conf, err := newStageLaunchpad(cmd.Context(), cmd.Name())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.AddItems(cmd.Context(), machine)
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).items(result)
	return nil
}
