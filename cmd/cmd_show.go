package cmd

import (
	"github.com/spf13/cobra"
)

type showCmdOptions struct {
	Machine string
}

func NewShowCommand() *cobra.Command {
	opts := &showCmdOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the machine state and the operator balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Machine, "machine", "", "machine address printed by create-machine")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}

func showHandler(opts *showCmdOptions, cmd *cobra.Command, _ []string) error {
	machine, err := parseAddress("machine", opts.Machine)
	if err != nil {
		return err
	}

	launchpadUsecase, conf, err := newStageLaunchpad(cmd.Context(), cmd.Name())
	if err != nil {
		return err
	}

	result, err := launchpadUsecase.Status(cmd.Context(), machine)
	if err != nil {
		return err
	}
	newReporter(cmd.OutOrStdout(), conf.Explorer()).status(result)
	return nil
}
