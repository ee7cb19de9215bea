package cmd

import (
	"github.com/spf13/cobra"
)

type setGuardsCmdOptions struct {
	Machine string
}

func NewSetGuardsCommand() *cobra.Command {
	opts := &setGuardsCmdOptions{}

	cmd := &cobra.Command{
		Use:   "set-guards",
		Short: "Attach the start date, mint limit and SOL payment guards to a machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setGuardsHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Machine, "machine", "", "machine address printed by create-machine")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}

func setGuardsHandler(opts *setGuardsCmdOptions, cmd *cobra.Command, _ []string) error {
	machine, err := parseAddress("machine", opts.Machine)
	if err != nil {
		return err
	}

	launchpadUsecase, conf, err := newStageLaunchpad(cmd.Context(), cmd.Name())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.ConfigureGuards(cmd.Context(), machine)
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).guards(result)
	return nil
}
