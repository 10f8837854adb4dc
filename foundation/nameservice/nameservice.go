// Package nameservice reads a folder of solana-keygen keypair files and
// creates a name service lookup for the accounts they hold.
package nameservice

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/gagliardetto/solana-go"
)

const keyExtension = ".json"

// NameService maintains a map of accounts for name lookup.
type NameService struct {
	accounts map[solana.PublicKey]string
}

// New constructs a name service with the accounts found under root. Files
// that are not keypairs are skipped.
func New(root string) (*NameService, error) {
	root, err := chain.ExpandPath(root)
	if err != nil {
		return nil, fmt.Errorf("resolving folder: %w", err)
	}

	ns := NameService{
		accounts: make(map[solana.PublicKey]string),
	}

	fn := func(fileName string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if d.IsDir() || filepath.Ext(fileName) != keyExtension {
			return nil
		}

		wallet, err := chain.LoadWallet(fileName)
		if err != nil {
			if chain.IsFileError(err) {
				return nil
			}
			return err
		}

		ns.accounts[wallet.PublicKey()] = strings.TrimSuffix(filepath.Base(fileName), keyExtension)

		return nil
	}

	if err := filepath.WalkDir(root, fn); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return &ns, nil
}

// Lookup returns the name for the specified account.
func (ns *NameService) Lookup(account solana.PublicKey) string {
	name, exists := ns.accounts[account]
	if !exists {
		return account.String()
	}
	return name
}

// Copy returns a copy of the map of names and accounts.
func (ns *NameService) Copy() map[solana.PublicKey]string {
	cpy := make(map[solana.PublicKey]string, len(ns.accounts))
	for account, name := range ns.accounts {
		cpy[account] = name
	}
	return cpy
}
