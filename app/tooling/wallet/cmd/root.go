// Package cmd contains wallet app
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/ardanlabs/chaindemo/foundation/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settings holds the values of the persistent flags shared by every command.
type settings struct {
	keypairPath string
	address     string
	url         string
	commitment  string
	timeout     time.Duration
	logLevel    string

	log *zap.SugaredLogger
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(build string) {
	rootCmd := newRootCmd(build)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd constructs the command tree.
func newRootCmd(build string) *cobra.Command {
	var s settings

	rootCmd := &cobra.Command{
		Use:           "wallet",
		Short:         "Your simple Solana wallet",
		Version:       build,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewLevel("WALLET", s.logLevel, "stderr")
			if err != nil {
				return err
			}
			s.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.log != nil {
				s.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&s.keypairPath, "keypair", "k", chain.DefaultKeypairPath, "Path to the keypair file.")
	rootCmd.PersistentFlags().StringVarP(&s.url, "url", "u", chain.DefaultURL, "Url of the RPC node.")
	rootCmd.PersistentFlags().StringVar(&s.commitment, "commitment", "finalized", "Commitment level for queries.")
	rootCmd.PersistentFlags().DurationVar(&s.timeout, "timeout", chain.DefaultTimeout, "Timeout for a single request.")
	rootCmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "error", "Minimum level for log lines written to stderr.")

	rootCmd.AddCommand(
		generateCmd(&s),
		accountCmd(&s),
		balanceCmd(&s),
		historyCmd(&s),
		blockhashCmd(&s),
		accountsCmd(&s),
	)

	return rootCmd
}

// account returns the address to query: the --address flag when set,
// otherwise the public key of the keypair file.
func (s *settings) account() (solana.PublicKey, error) {
	if s.address != "" {
		pub, err := solana.PublicKeyFromBase58(s.address)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("parsing address %q: %w", s.address, err)
		}
		return pub, nil
	}

	wallet, err := chain.LoadWallet(s.keypairPath)
	if err != nil {
		return solana.PublicKey{}, err
	}

	return wallet.PublicKey(), nil
}

// client opens a connection that logs through the command logger.
func (s *settings) client() (*chain.Client, error) {
	ev := func(v string, args ...any) {
		s.log.Infow(fmt.Sprintf(v, args...))
	}

	return chain.New(chain.Config{
		URL:        s.url,
		Commitment: s.commitment,
		Timeout:    s.timeout,
		EvHandler:  ev,
	})
}

// addAddressFlag lets a read-only command query any account.
func addAddressFlag(cmd *cobra.Command, s *settings) {
	cmd.Flags().StringVarP(&s.address, "address", "a", "", "Account address to query instead of the keypair's.")
}
