package cmd

import (
	"github.com/spf13/cobra"
)

type mintCmdOptions struct {
	Machine string
}

func NewMintCommand() *cobra.Command {
	opts := &mintCmdOptions{}

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint one item of a machine to the operator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mintHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Machine, "machine", "", "machine address printed by create-machine")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}

func mintHandler(opts *mintCmdOptions, cmd *cobra.Command, _ []string) error {
	machine, err := parseAddress("machine", opts.Machine)
	if err != nil {
		return err
	}

	launchpadUsecase, conf, err := newStageLaunchpad(cmd.Context(), cmd.Name())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.MintItem(cmd.Context(), machine)
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).mint(result)
	return nil
}
