// Package chain provides a minimal read-only client for a Solana JSON-RPC
// endpoint. Every call is a single blocking request bounded by the
// configured timeout, there is no retry and no pooling.
package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ardanlabs/chaindemo/foundation/validate"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// DefaultURL is the public devnet endpoint.
const DefaultURL = rpc.DevNet_RPC

// DefaultTimeout bounds a single request when none is configured.
const DefaultTimeout = 30 * time.Second

// EventHandler defines a function that is called when events
// occur in the processing of requests.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct a client.
type Config struct {
	URL        string        `json:"url" validate:"required,url"`
	Commitment string        `json:"commitment" validate:"oneof=processed confirmed finalized"`
	Timeout    time.Duration `json:"timeout" validate:"gt=0"`
	EvHandler  EventHandler  `json:"-"`
}

// Client talks to a single RPC endpoint.
type Client struct {
	rpc        *rpc.Client
	url        string
	commitment rpc.CommitmentType
	timeout    time.Duration
	evHandler  EventHandler
}

// New constructs a client for the configured endpoint. No request is made
// until one of the query methods is called.
func New(cfg Config) (*Client, error) {
	if cfg.Commitment == "" {
		cfg.Commitment = string(rpc.CommitmentFinalized)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if err := validate.Check(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	c := Client{
		rpc:        rpc.New(cfg.URL),
		url:        cfg.URL,
		commitment: rpc.CommitmentType(cfg.Commitment),
		timeout:    cfg.Timeout,
		evHandler:  ev,
	}

	return &c, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// URL returns the endpoint the client talks to.
func (c *Client) URL() string {
	return c.url
}

// Balance returns the lamport balance for the account.
func (c *Client) Balance(ctx context.Context, account solana.PublicKey) (Balance, error) {
	c.evHandler("chain: Balance: started: account[%s]", account)
	defer c.evHandler("chain: Balance: completed")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return Balance{}, c.networkError(ctx, "getBalance", err)
	}
	if out == nil {
		return Balance{}, c.networkError(ctx, "getBalance", ErrEmptyResponse)
	}

	c.evHandler("chain: Balance: account[%s]: lamports[%d]: slot[%d]", account, out.Value, out.Context.Slot)

	bal := Balance{
		Account:  account,
		Lamports: out.Value,
		Slot:     out.Context.Slot,
	}

	return bal, nil
}

// LatestBlockhash returns the most recent blockhash seen by the node.
func (c *Client) LatestBlockhash(ctx context.Context) (Blockhash, error) {
	c.evHandler("chain: LatestBlockhash: started")
	defer c.evHandler("chain: LatestBlockhash: completed")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return Blockhash{}, c.networkError(ctx, "getLatestBlockhash", err)
	}
	if out == nil || out.Value == nil {
		return Blockhash{}, c.networkError(ctx, "getLatestBlockhash", ErrEmptyResponse)
	}

	bh := Blockhash{
		Hash:                 out.Value.Blockhash,
		LastValidBlockHeight: out.Value.LastValidBlockHeight,
		Slot:                 out.Context.Slot,
	}

	return bh, nil
}

// RecentActivity returns up to query.Limit signatures for the account,
// newest first. When query.Details is set each signature is looked up in
// turn; a failed lookup is recorded on its entry and does not fail the call.
func (c *Client) RecentActivity(ctx context.Context, account solana.PublicKey, query ActivityQuery) ([]Activity, error) {
	if err := validate.Check(query); err != nil {
		return nil, fmt.Errorf("validating query: %w", err)
	}

	c.evHandler("chain: RecentActivity: started: account[%s]: limit[%d]: details[%t]", account, query.Limit, query.Details)
	defer c.evHandler("chain: RecentActivity: completed")

	sigs, err := c.signatures(ctx, account, query.Limit)
	if err != nil {
		return nil, err
	}

	c.evHandler("chain: RecentActivity: account[%s]: signatures[%d]", account, len(sigs))

	activity := make([]Activity, 0, len(sigs))
	for _, sig := range sigs {
		if sig == nil {
			continue
		}

		act := Activity{
			Signature: sig.Signature,
			Slot:      sig.Slot,
			BlockTime: blockTime(sig.BlockTime),
			Status:    string(sig.ConfirmationStatus),
			Failed:    sig.Err != nil,
		}
		if sig.Memo != nil {
			act.Memo = *sig.Memo
		}

		if query.Details {
			details, err := c.details(ctx, sig.Signature)
			if err != nil {
				c.evHandler("chain: RecentActivity: signature[%s]: ERROR: %s", sig.Signature, err)
				act.DetailsErr = err
			}
			act.Details = details
		}

		activity = append(activity, act)
	}

	return activity, nil
}

// signatures performs the getSignaturesForAddress request.
func (c *Client) signatures(ctx context.Context, account solana.PublicKey, limit int) ([]*rpc.TransactionSignature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: c.commitment,
	}

	sigs, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, account, &opts)
	if err != nil {
		return nil, c.networkError(ctx, "getSignaturesForAddress", err)
	}

	return sigs, nil
}

// details performs the getTransaction request for a single signature.
func (c *Client) details(ctx context.Context, sig solana.Signature) (*Details, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Version 0 transactions are rejected by the node unless the client
	// declares it can handle them.
	var maxVersion uint64

	opts := rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     c.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	}

	out, err := c.rpc.GetTransaction(ctx, sig, &opts)
	if err != nil {
		return nil, c.networkError(ctx, "getTransaction", err)
	}
	if out == nil {
		return nil, c.networkError(ctx, "getTransaction", ErrEmptyResponse)
	}

	d := Details{
		Slot:      out.Slot,
		BlockTime: blockTime(out.BlockTime),
	}

	if out.Meta != nil {
		d.Fee = out.Meta.Fee
		d.Failed = out.Meta.Err != nil
		d.LogMessages = len(out.Meta.LogMessages)
		if len(out.Meta.PreBalances) > 0 && len(out.Meta.PostBalances) > 0 {
			d.BalanceChange = int64(out.Meta.PostBalances[0]) - int64(out.Meta.PreBalances[0])
		}
	}

	return &d, nil
}

// networkError wraps a failed request and reports it through the event
// handler. The context error is kept in the chain so callers can tell a
// timeout apart from other failures.
func (c *Client) networkError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}

	c.evHandler("chain: %s: ERROR: %s", op, err)
	return &NetworkError{Op: op, Err: err}
}

// blockTime converts the optional unix seconds reported by the node.
func blockTime(ts *solana.UnixTimeSeconds) *time.Time {
	if ts == nil {
		return nil
	}

	t := ts.Time().UTC()
	return &t
}
