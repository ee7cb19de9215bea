package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Path  string
	Force bool
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate a new operator key pair file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "./keypair.json", `Path to save to key pair file`)
	flags.BoolVar(&opts.Force, "force", false, "Replace an existing key pair file without asking")

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating key pair\n")

	if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
		fmt.Fprintf(out, "Existing key pair found at %s\n[WARNING] THE EXISTING PRIVATE KEY WILL BE LOST\nType [replace] to replace existing key pair: ", opts.Path)
		var ans string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &ans)
		if ans != "replace" {
			fmt.Fprintf(out, "Key pair generation aborted\n")
			return nil
		}
	}

	kp, err := keypair.Generate()
	if err != nil {
		return errors.Wrap(err, "generate key pair")
	}
	if err := kp.WriteFile(opts.Path); err != nil {
		return errors.Wrap(err, "write key pair file")
	}

	fmt.Fprintf(out, "Public key: %s\n", kp.PublicKey())
	fmt.Fprintf(out, "Key pair saved at %s\n", opts.Path)
	return nil
}
