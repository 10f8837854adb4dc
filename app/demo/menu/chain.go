//go:build !nochain

package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/ardanlabs/chaindemo/foundation/nameservice"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// chainDemo loads the wallet and runs the read-only queries against the
// configured endpoint. A connection is opened for this call only.
func (m *Menu) chainDemo(ctx context.Context) {
	fmt.Fprintln(m.out, "\nSOLANA INTERACTION DEMO")
	fmt.Fprintln(m.out, "=======================")
	fmt.Fprintln(m.out)

	traceID := uuid.NewString()
	log := m.log.With("traceid", traceID)

	log.Infow("chain demo", "status", "started", "url", m.chain.URL, "keypair", m.chain.KeypairPath)
	defer log.Infow("chain demo", "status", "completed")

	wallet, err := chain.LoadWallet(m.chain.KeypairPath)
	if err != nil {
		log.Errorw("chain demo", "status", "load wallet", "ERROR", err)
		fmt.Fprintf(m.out, "Failed to read keypair from %s: %s\n", m.chain.KeypairPath, err)
		fmt.Fprintln(m.out, "Make sure you've created a wallet using 'solana-keygen new'")
		return
	}

	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...))
	}

	client, err := chain.New(chain.Config{
		URL:        m.chain.URL,
		Commitment: m.chain.Commitment,
		Timeout:    m.chain.Timeout,
		EvHandler:  ev,
	})
	if err != nil {
		log.Errorw("chain demo", "status", "connect", "ERROR", err)
		fmt.Fprintf(m.out, "Failed to connect to %s: %s\n", m.chain.URL, err)
		return
	}
	defer client.Close()

	account := wallet.PublicKey()
	fmt.Fprintf(m.out, "Wallet Public Key: %s\n", account)
	fmt.Fprintf(m.out, "Wallet Public Key (hex): %s\n", chain.HexKey(account))

	if name := m.walletName(account); name != "" {
		fmt.Fprintf(m.out, "Wallet Name: %s\n", name)
	}

	bal, err := client.Balance(ctx, account)
	switch {
	case err != nil:
		fmt.Fprintf(m.out, "Failed to get balance: %s\n", err)
	default:
		fmt.Fprintf(m.out, "Balance: %s SOL (%d lamports)\n", bal.SOL(), bal.Lamports)
	}

	bh, err := client.LatestBlockhash(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to get recent blockhash: %s\n", err)
		return
	}
	fmt.Fprintf(m.out, "Recent blockhash: %s\n", bh.Hash)

	query := chain.ActivityQuery{
		Limit:   m.chain.HistoryLimit,
		Details: m.chain.Details,
	}

	acts, err := client.RecentActivity(ctx, account, query)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to get transaction history: %s\n", err)
		return
	}

	fmt.Fprintln(m.out, "\nRecent Transactions:")
	if len(acts) == 0 {
		fmt.Fprintln(m.out, "No recent transactions found.")
		return
	}

	for i, act := range acts {
		m.printActivity(i+1, act)
	}
}

// walletName resolves the wallet through the configured keypair folder.
// It returns an empty string when there is no folder or no better name.
func (m *Menu) walletName(account solana.PublicKey) string {
	if m.chain.NamesFolder == "" {
		return ""
	}

	ns, err := nameservice.New(m.chain.NamesFolder)
	if err != nil {
		m.log.Warnw("chain demo", "status", "name service", "folder", m.chain.NamesFolder, "ERROR", err)
		return ""
	}

	name := ns.Lookup(account)
	if name == account.String() {
		return ""
	}

	return name
}

func (m *Menu) printActivity(n int, act chain.Activity) {
	result := "success"
	if act.Failed {
		result = "failed"
	}

	fmt.Fprintf(m.out, "%d. Signature: %s\n", n, act.Signature)
	fmt.Fprintf(m.out, "   Slot: %d, Status: %s, Result: %s\n", act.Slot, act.Status, result)

	if act.BlockTime != nil {
		fmt.Fprintf(m.out, "   Time: %s\n", act.BlockTime.Format(time.RFC3339))
	}
	if act.Memo != "" {
		fmt.Fprintf(m.out, "   Memo: %s\n", act.Memo)
	}

	switch {
	case act.DetailsErr != nil:
		fmt.Fprintf(m.out, "   Details unavailable: %s\n", act.DetailsErr)
	case act.Details != nil:
		d := act.Details
		fmt.Fprintf(m.out, "   Fee: %s SOL (%d lamports), Balance change: %d lamports, Log messages: %d\n",
			chain.FormatSOL(d.Fee), d.Fee, d.BalanceChange, d.LogMessages)
	}
}
