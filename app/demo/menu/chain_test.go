//go:build !nochain

package menu_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/chaindemo/app/demo/menu"
	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/ardanlabs/chaindemo/foundation/chain/chaintest"
)

func settings(t *testing.T, node *chaintest.Node) (menu.ChainSettings, chain.Wallet) {
	t.Helper()

	dir := t.TempDir()
	wallet, err := chain.GenerateWallet(filepath.Join(dir, "alice.json"), false)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to generate a wallet: %s", failed, err)
	}

	cs := menu.ChainSettings{
		URL:          node.URL(),
		Commitment:   "finalized",
		Timeout:      5 * time.Second,
		KeypairPath:  wallet.Path,
		HistoryLimit: 5,
		NamesFolder:  dir,
	}

	return cs, wallet
}

func TestChainDemo(t *testing.T) {
	t.Log("Given the need to show wallet information from the chain.")
	{
		t.Logf("\tTest 0:\tWhen the node reports a known balance.")
		{
			node := chaintest.New(t)
			node.SetBalance(2_500_000_001)
			hash := chaintest.NewHash(t)
			node.SetBlockhash(hash)

			cs, wallet := settings(t, node)

			out, err := run(t, "2\n3\n", cs)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould exit cleanly: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould exit cleanly.", success)

			want := []string{
				"Wallet Public Key: " + wallet.PublicKey().String() + "\n",
				"Wallet Name: alice\n",
				"Balance: 2.500000001 SOL (2500000001 lamports)\n",
				"Recent blockhash: " + hash.String() + "\n",
			}
			for _, w := range want {
				if !strings.Contains(out, w) {
					t.Fatalf("\t%s\tTest 0:\tShould print %q:\n%s", failed, w, out)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould print exactly the node's balance.", success)
		}

		t.Logf("\tTest 1:\tWhen the keypair file is missing.")
		{
			node := chaintest.New(t)
			cs, _ := settings(t, node)
			cs.KeypairPath = filepath.Join(t.TempDir(), "missing.json")

			out, err := run(t, "2\n1\n3\n", cs)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould exit cleanly: %s", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould exit cleanly.", success)

			if !strings.Contains(out, "Failed to read keypair from "+cs.KeypairPath) {
				t.Fatalf("\t%s\tTest 1:\tShould print the error:\n%s", failed, out)
			}
			t.Logf("\t%s\tTest 1:\tShould print the error.", success)

			if !strings.Contains(out, "GO BASICS DEMO") || !strings.HasSuffix(out, "Exiting program. Goodbye!\n") {
				t.Fatalf("\t%s\tTest 1:\tShould return to the menu:\n%s", failed, out)
			}
			t.Logf("\t%s\tTest 1:\tShould return to the menu.", success)

			if node.Calls("getBalance") != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould not reach the node.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not reach the node.", success)
		}

		t.Logf("\tTest 2:\tWhen the account has no history.")
		{
			node := chaintest.New(t)
			cs, _ := settings(t, node)

			out, err := run(t, "2\n3\n", cs)
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould exit cleanly: %s", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould exit cleanly.", success)

			if !strings.Contains(out, "Recent Transactions:\nNo recent transactions found.\n") {
				t.Fatalf("\t%s\tTest 2:\tShould report zero transactions:\n%s", failed, out)
			}
			t.Logf("\t%s\tTest 2:\tShould report zero transactions.", success)

			if strings.Contains(out, "Failed") {
				t.Fatalf("\t%s\tTest 2:\tShould not report an error:\n%s", failed, out)
			}
			t.Logf("\t%s\tTest 2:\tShould not report an error.", success)
		}

		t.Logf("\tTest 3:\tWhen the account has history with details.")
		{
			node := chaintest.New(t)
			sig := chaintest.NewSignature(t)
			node.AddSignature(chaintest.Signature{Signature: sig, Slot: 77, Status: "finalized", BlockTime: 1_700_000_000, Memo: "rent"}, &chaintest.Transaction{
				Slot:         77,
				Fee:          5000,
				Logs:         []string{"Program log: hello"},
				PreBalances:  []uint64{20_000},
				PostBalances: []uint64{15_000},
			})

			cs, _ := settings(t, node)
			cs.Details = true

			out, err := run(t, "2\n3\n", cs)
			if err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould exit cleanly: %s", failed, err)
			}
			t.Logf("\t%s\tTest 3:\tShould exit cleanly.", success)

			want := []string{
				"1. Signature: " + sig.String() + "\n",
				"   Slot: 77, Status: finalized, Result: success\n",
				"   Time: 2023-11-14T22:13:20Z\n",
				"   Memo: rent\n",
				"   Fee: 0.000005 SOL (5000 lamports), Balance change: -5000 lamports, Log messages: 1\n",
			}
			for _, w := range want {
				if !strings.Contains(out, w) {
					t.Fatalf("\t%s\tTest 3:\tShould print %q:\n%s", failed, w, out)
				}
			}
			t.Logf("\t%s\tTest 3:\tShould print the transaction.", success)
		}

		t.Logf("\tTest 4:\tWhen the node fails.")
		{
			node := chaintest.New(t)
			node.Fail("getBalance", "node is unhealthy")
			node.Fail("getLatestBlockhash", "node is unhealthy")
			cs, _ := settings(t, node)

			out, err := run(t, "2\n3\n", cs)
			if err != nil {
				t.Fatalf("\t%s\tTest 4:\tShould exit cleanly: %s", failed, err)
			}
			t.Logf("\t%s\tTest 4:\tShould exit cleanly.", success)

			for _, w := range []string{"Failed to get balance: getBalance:", "Failed to get recent blockhash: getLatestBlockhash:"} {
				if !strings.Contains(out, w) {
					t.Fatalf("\t%s\tTest 4:\tShould print %q:\n%s", failed, w, out)
				}
			}
			t.Logf("\t%s\tTest 4:\tShould print the failures.", success)

			if node.Calls("getSignaturesForAddress") != 0 {
				t.Fatalf("\t%s\tTest 4:\tShould stop after the blockhash failure.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould stop after the blockhash failure.", success)

			if !strings.HasSuffix(out, "Exiting program. Goodbye!\n") {
				t.Fatalf("\t%s\tTest 4:\tShould return to the menu.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould return to the menu.", success)
		}
	}
}
