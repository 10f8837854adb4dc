package cmd

import (
	"fmt"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/spf13/cobra"
)

func generateCmd(s *settings) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := chain.GenerateWallet(s.keypairPath, force)
			if err != nil {
				return err
			}

			s.log.Infow("generate", "path", wallet.Path, "account", wallet.PublicKey())

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote new keypair to", wallet.Path)
			fmt.Fprintln(cmd.OutOrStdout(), "Public Key:", wallet.PublicKey())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing keypair file.")

	return cmd
}
