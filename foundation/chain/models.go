package chain

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// Balance is the native balance of an account at a point in time.
type Balance struct {
	Account  solana.PublicKey
	Lamports uint64
	Slot     uint64
}

// SOL returns the balance formatted in SOL.
func (b Balance) SOL() string {
	return FormatSOL(b.Lamports)
}

// Blockhash is the most recent blockhash known to the node.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
	Slot                 uint64
}

// ActivityQuery bounds a recent activity lookup.
type ActivityQuery struct {
	Limit   int  `json:"limit" validate:"min=1,max=1000"`
	Details bool `json:"details"`
}

// Activity is one entry of an account's signature history, newest first.
type Activity struct {
	Signature solana.Signature
	Slot      uint64
	BlockTime *time.Time
	Status    string
	Memo      string
	Failed    bool

	// Details is only populated when requested. DetailsErr holds the
	// failure for this entry when the lookup did not succeed.
	Details    *Details
	DetailsErr error
}

// Details carries the parts of a confirmed transaction the demo displays.
type Details struct {
	Slot          uint64
	BlockTime     *time.Time
	Fee           uint64
	Failed        bool
	LogMessages   int
	BalanceChange int64
}
