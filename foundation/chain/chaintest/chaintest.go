// Package chaintest provides a mock Solana JSON-RPC node for tests. It
// answers the handful of methods the chain package uses from canned state
// and can be told to fail, stall or return garbage.
package chaintest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dimfeld/httptreemux/v5"
	"github.com/gagliardetto/solana-go"
)

// Signature is a canned entry returned by getSignaturesForAddress.
type Signature struct {
	Signature solana.Signature
	Slot      uint64
	BlockTime int64
	Status    string
	Memo      string
	Failed    bool
}

// Transaction is a canned result returned by getTransaction.
type Transaction struct {
	Slot         uint64
	BlockTime    int64
	Fee          uint64
	Failed       bool
	Logs         []string
	PreBalances  []uint64
	PostBalances []uint64
}

// Node is a mock RPC endpoint backed by an httptest server.
type Node struct {
	srv *httptest.Server

	mu           sync.Mutex
	slot         uint64
	balance      uint64
	blockhash    solana.Hash
	signatures   []Signature
	transactions map[solana.Signature]Transaction
	failures     map[string]string
	delay        time.Duration
	malformed    bool
	calls        map[string]int
	lastLimit    int
}

// New starts a mock node that is shut down when the test completes.
func New(t testing.TB) *Node {
	t.Helper()

	n := Node{
		slot:         100,
		transactions: make(map[solana.Signature]Transaction),
		failures:     make(map[string]string),
		calls:        make(map[string]int),
	}

	mux := httptreemux.NewContextMux()
	mux.POST("/", n.handle)

	n.srv = httptest.NewServer(mux)
	t.Cleanup(n.srv.Close)

	return &n
}

// URL returns the endpoint of the node.
func (n *Node) URL() string {
	return n.srv.URL
}

// Close stops the node early, turning it into an unreachable endpoint.
func (n *Node) Close() {
	n.srv.Close()
}

// SetBalance sets the lamports returned for any account.
func (n *Node) SetBalance(lamports uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.balance = lamports
}

// SetSlot sets the context slot reported with every answer.
func (n *Node) SetSlot(slot uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.slot = slot
}

// SetBlockhash sets the hash returned by getLatestBlockhash.
func (n *Node) SetBlockhash(hash solana.Hash) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.blockhash = hash
}

// AddSignature appends a history entry. When tx is not nil it is returned
// by getTransaction for that signature.
func (n *Node) AddSignature(sig Signature, tx *Transaction) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.signatures = append(n.signatures, sig)
	if tx != nil {
		n.transactions[sig.Signature] = *tx
	}
}

// Fail makes the named RPC method answer with a JSON-RPC error.
func (n *Node) Fail(method string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.failures[method] = message
}

// SetDelay stalls every answer by the duration or until the caller gives up.
func (n *Node) SetDelay(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.delay = d
}

// SetMalformed makes every answer an undecodable body.
func (n *Node) SetMalformed(malformed bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.malformed = malformed
}

// Calls returns how many times the method was requested.
func (n *Node) Calls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls[method]
}

// LastLimit returns the limit sent with the last getSignaturesForAddress.
func (n *Node) LastLimit() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.lastLimit
}

// =============================================================================

type request struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcContext struct {
	Slot uint64 `json:"slot"`
}

type contextResult struct {
	Context rpcContext `json:"context"`
	Value   any        `json:"value"`
}

func (n *Node) handle(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	delay := n.delay
	malformed := n.malformed
	n.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if malformed {
		w.Write([]byte(`{"jsonrpc":"2.0","result":`))
		return
	}

	resp := response{
		JSONRPC: "2.0",
		ID:      req.ID,
	}

	result, rerr := n.answer(req)
	switch {
	case rerr != nil:
		resp.Error = rerr
	default:
		resp.Result = result
	}

	json.NewEncoder(w).Encode(resp)
}

func (n *Node) answer(req request) (any, *rpcError) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if msg, exists := n.failures[req.Method]; exists {
		return nil, &rpcError{Code: -32000, Message: msg}
	}

	switch req.Method {
	case "getBalance":
		return contextResult{
			Context: rpcContext{Slot: n.slot},
			Value:   n.balance,
		}, nil

	case "getLatestBlockhash":
		return contextResult{
			Context: rpcContext{Slot: n.slot},
			Value: map[string]any{
				"blockhash":            n.blockhash.String(),
				"lastValidBlockHeight": n.slot + 150,
			},
		}, nil

	case "getSignaturesForAddress":
		limit := len(n.signatures)
		if len(req.Params) > 1 {
			var opts struct {
				Limit int `json:"limit"`
			}
			if err := json.Unmarshal(req.Params[1], &opts); err == nil && opts.Limit > 0 {
				limit = opts.Limit
			}
		}
		n.lastLimit = limit

		out := make([]map[string]any, 0, len(n.signatures))
		for i, sig := range n.signatures {
			if i == limit {
				break
			}
			out = append(out, signatureJSON(sig))
		}
		return out, nil

	case "getTransaction":
		var sigStr string
		if len(req.Params) > 0 {
			json.Unmarshal(req.Params[0], &sigStr)
		}

		sig, err := solana.SignatureFromBase58(sigStr)
		if err != nil {
			return nil, &rpcError{Code: -32602, Message: "invalid signature"}
		}

		tx, exists := n.transactions[sig]
		if !exists {
			return nil, &rpcError{Code: -32004, Message: "transaction not found"}
		}
		return transactionJSON(tx), nil
	}

	return nil, &rpcError{Code: -32601, Message: "method not found"}
}

func signatureJSON(sig Signature) map[string]any {
	m := map[string]any{
		"signature":          sig.Signature.String(),
		"slot":               sig.Slot,
		"err":                nil,
		"memo":               nil,
		"blockTime":          nil,
		"confirmationStatus": sig.Status,
	}
	if sig.Failed {
		m["err"] = map[string]any{"InstructionError": []any{0, "InvalidAccountData"}}
	}
	if sig.Memo != "" {
		m["memo"] = sig.Memo
	}
	if sig.BlockTime != 0 {
		m["blockTime"] = sig.BlockTime
	}
	return m
}

func transactionJSON(tx Transaction) map[string]any {
	meta := map[string]any{
		"err":          nil,
		"fee":          tx.Fee,
		"preBalances":  nonNil(tx.PreBalances),
		"postBalances": nonNil(tx.PostBalances),
		"logMessages":  tx.Logs,
	}
	if tx.Failed {
		meta["err"] = map[string]any{"InstructionError": []any{0, "InvalidAccountData"}}
	}

	m := map[string]any{
		"slot":      tx.Slot,
		"blockTime": nil,
		"meta":      meta,
	}
	if tx.BlockTime != 0 {
		m["blockTime"] = tx.BlockTime
	}
	return m
}

func nonNil(v []uint64) []uint64 {
	if v == nil {
		return []uint64{}
	}
	return v
}

// =============================================================================

// NewSignature returns a random, well formed transaction signature.
func NewSignature(t testing.TB) solana.Signature {
	t.Helper()

	pk, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("generating key: %s", err)
	}

	sig, err := pk.Sign([]byte(t.Name()))
	if err != nil {
		t.Fatalf("signing: %s", err)
	}

	return sig
}

// NewHash returns a random, well formed blockhash.
func NewHash(t testing.TB) solana.Hash {
	t.Helper()

	pk, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("generating key: %s", err)
	}

	return solana.Hash(pk.PublicKey())
}
