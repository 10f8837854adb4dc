package nameservice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/ardanlabs/chaindemo/foundation/nameservice"
	"github.com/gagliardetto/solana-go"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestNameService(t *testing.T) {
	t.Log("Given the need to name accounts from a keypair folder.")
	{
		dir := t.TempDir()

		bill, err := chain.GenerateWallet(filepath.Join(dir, "bill.json"), false)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to generate bill: %s", failed, err)
		}
		ceasar, err := chain.GenerateWallet(filepath.Join(dir, "team", "ceasar.json"), false)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to generate ceasar: %s", failed, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0600); err != nil {
			t.Fatalf("\t%s\tShould be able to write a stray file: %s", failed, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("[1,2]"), 0600); err != nil {
			t.Fatalf("\t%s\tShould be able to write a broken keypair: %s", failed, err)
		}

		ns, err := nameservice.New(dir)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to load the folder: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to load the folder.", success)

		t.Logf("\tTest 0:\tWhen looking up known accounts.")
		{
			if got := ns.Lookup(bill.PublicKey()); got != "bill" {
				t.Fatalf("\t%s\tTest 0:\tShould name bill, got %q.", failed, got)
			}
			if got := ns.Lookup(ceasar.PublicKey()); got != "ceasar" {
				t.Fatalf("\t%s\tTest 0:\tShould name ceasar from a sub folder, got %q.", failed, got)
			}
			t.Logf("\t%s\tTest 0:\tShould name known accounts.", success)

			if len(ns.Copy()) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould only hold the two keypairs, got %d.", failed, len(ns.Copy()))
			}
			t.Logf("\t%s\tTest 0:\tShould only hold the two keypairs.", success)
		}

		t.Logf("\tTest 1:\tWhen looking up an unknown account.")
		{
			if got := ns.Lookup(solana.SystemProgramID); got != solana.SystemProgramID.String() {
				t.Fatalf("\t%s\tTest 1:\tShould fall back to the address, got %q.", failed, got)
			}
			t.Logf("\t%s\tTest 1:\tShould fall back to the address.", success)
		}

		t.Logf("\tTest 2:\tWhen the copy is modified.")
		{
			cpy := ns.Copy()
			delete(cpy, bill.PublicKey())
			if ns.Lookup(bill.PublicKey()) != "bill" {
				t.Fatalf("\t%s\tTest 2:\tShould not affect the name service.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould not affect the name service.", success)
		}

		t.Logf("\tTest 3:\tWhen the folder does not exist.")
		{
			if _, err := nameservice.New(filepath.Join(dir, "missing")); err == nil {
				t.Fatalf("\t%s\tTest 3:\tShould fail.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould fail.", success)
		}
	}
}
