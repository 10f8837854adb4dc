package chain

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// DefaultKeypairPath is where solana-keygen writes the default wallet.
const DefaultKeypairPath = "~/.config/solana/id.json"

// Wallet is a keypair loaded from disk. Only the public key is ever sent to
// the network.
type Wallet struct {
	Path       string
	PrivateKey solana.PrivateKey
}

// PublicKey returns the account address of the wallet.
func (w Wallet) PublicKey() solana.PublicKey {
	return w.PrivateKey.PublicKey()
}

// LoadWallet reads a keypair file in the solana-keygen format, a JSON array
// of the 64 secret key bytes. A leading ~ in the path is expanded.
func LoadWallet(path string) (Wallet, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return Wallet{}, &FileError{Path: path, Err: err}
	}

	pk, err := solana.PrivateKeyFromSolanaKeygenFile(expanded)
	if err != nil {
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	if err := checkKeypair(pk); err != nil {
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	return Wallet{Path: expanded, PrivateKey: pk}, nil
}

// GenerateWallet creates a new random keypair and writes it to the path in
// the solana-keygen format. An existing file is only replaced when overwrite
// is set.
func GenerateWallet(path string, overwrite bool) (Wallet, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return Wallet{}, &FileError{Path: path, Err: err}
	}

	pk, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Wallet{}, fmt.Errorf("generating key: %w", err)
	}

	values := make([]int, len(pk))
	for i, b := range pk {
		values[i] = int(b)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return Wallet{}, fmt.Errorf("encoding key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	// Without overwrite the file must not exist; O_EXCL makes the check and
	// the create a single step.
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(expanded, flags, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Wallet{}, &FileError{Path: expanded, Err: fs.ErrExist}
		}
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	if err := f.Close(); err != nil {
		return Wallet{}, &FileError{Path: expanded, Err: err}
	}

	return Wallet{Path: expanded, PrivateKey: pk}, nil
}

// ExpandPath replaces a leading ~ with the current user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// checkKeypair verifies the secret bytes form an ed25519 keypair whose public
// half matches its seed.
func checkKeypair(pk solana.PrivateKey) error {
	if len(pk) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: got %d bytes, expected %d", ErrMalformedKeypair, len(pk), ed25519.PrivateKeySize)
	}

	derived := ed25519.NewKeyFromSeed(pk[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], pk[ed25519.SeedSize:]) {
		return fmt.Errorf("%w: public key does not match secret", ErrMalformedKeypair)
	}

	return nil
}
