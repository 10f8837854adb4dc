package chain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
)

// FormatSOL renders a lamport amount as SOL without going through floating
// point, trimming trailing zeros from the fraction.
func FormatSOL(lamports uint64) string {
	whole := lamports / solana.LAMPORTS_PER_SOL
	frac := lamports % solana.LAMPORTS_PER_SOL

	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}

	s := fmt.Sprintf("%d.%09d", whole, frac)
	return strings.TrimRight(s, "0")
}

// HexKey returns the 0x prefixed hex encoding of a 32 byte key or hash.
func HexKey(key [32]byte) string {
	return hexutil.Encode(key[:])
}
