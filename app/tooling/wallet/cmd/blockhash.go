package cmd

import (
	"fmt"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/spf13/cobra"
)

func blockhashCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "blockhash",
		Short: "Print the latest blockhash of the node.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.client()
			if err != nil {
				return err
			}
			defer client.Close()

			bh, err := client.LatestBlockhash(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), bh.Hash)
			fmt.Fprintln(cmd.OutOrStdout(), chain.HexKey(bh.Hash))
			fmt.Fprintf(cmd.OutOrStdout(), "slot:%d last-valid-height:%d\n", bh.Slot, bh.LastValidBlockHeight)
			return nil
		},
	}
}
