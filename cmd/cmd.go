package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/internal/config"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/spf13/cobra"
)

type rootCmdOptions struct {
	ConfigFile string
}

func NewRootCommand() *cobra.Command {
	opts := &rootCmdOptions{}

	cmd := &cobra.Command{
		Use:  "launchpad",
		Long: `Issue a collection, set up its minting machine and mint an item, one stage per command.`,
		// Errors are logged by main.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Initialize configuration
			conf := config.Parse(opts.ConfigFile)

			// Initialize logger
			if err := logger.Init(conf.Logger); err != nil {
				return errors.Wrap(err, "can't initialize logger")
			}
			return nil
		},
	}

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "devnet", "network to connect to, E.g. `devnet` or `mainnet-beta`")
	flags.String("rpc", "", "launchpad API JSON-RPC endpoint, required unless --simulate is set")
	flags.String("cluster-rpc", "", "cluster JSON-RPC endpoint for balances and confirmations, defaults to the public endpoint of the network")
	flags.String("keypair", "./keypair.json", "operator key pair file")
	flags.Bool("simulate", false, "run against an in-process ledger instead of the network")
	flags.Bool("debug", false, "enable debug logs")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))
	config.BindPFlag("rpc.endpoint", flags.Lookup("rpc"))
	config.BindPFlag("rpc.cluster_endpoint", flags.Lookup("cluster-rpc"))
	config.BindPFlag("keypair", flags.Lookup("keypair"))
	config.BindPFlag("launchpad.simulate", flags.Lookup("simulate"))
	config.BindPFlag("logger.debug", flags.Lookup("debug"))

	// Register sub-commands
	cmd.AddCommand(
		NewCreateCollectionCommand(),
		NewCreateMachineCommand(),
		NewSetGuardsCommand(),
		NewAddItemsCommand(),
		NewMintCommand(),
		NewShowCommand(),
		NewRunAllCommand(),
		NewGenerateKeypairCommand(),
		NewVersionCommand(),
	)
	return cmd
}

func Execute(ctx context.Context) error {
	return errors.WithStack(NewRootCommand().ExecuteContext(ctx))
}
