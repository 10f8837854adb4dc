package cmd

import (
	"fmt"
	"sort"

	"github.com/ardanlabs/chaindemo/foundation/nameservice"
	"github.com/spf13/cobra"
)

func accountsCmd(s *settings) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the named keypairs found in a folder.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := nameservice.New(folder)
			if err != nil {
				return fmt.Errorf("unable to load account name service: %w", err)
			}

			type entry struct {
				name    string
				account string
			}

			var entries []entry
			for account, name := range ns.Copy() {
				entries = append(entries, entry{name: name, account: account.String()})
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].name < entries[j].name
			})

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.name, e.account)
			}

			s.log.Infow("accounts", "folder", folder, "count", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "~/.config/solana", "Folder with keypair files.")

	return cmd
}
