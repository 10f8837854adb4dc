//go:build nochain

package menu

import (
	"context"
	"fmt"
)

// chainDemo explains how to get a build with the chain demo compiled in.
func (m *Menu) chainDemo(ctx context.Context) {
	fmt.Fprintln(m.out, "\nSOLANA INTERACTION DEMO")
	fmt.Fprintln(m.out, "=======================")
	fmt.Fprintln(m.out)

	m.log.Infow("chain demo", "status", "disabled")

	fmt.Fprintln(m.out, "Solana features are not enabled. To use Solana features:")
	fmt.Fprintln(m.out, "1. Rebuild without the nochain tag:")
	fmt.Fprintln(m.out, "   go build ./app/demo")
	fmt.Fprintln(m.out, "2. Create a wallet with 'solana-keygen new' or 'wallet generate'")
}
