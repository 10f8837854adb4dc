// Package menu implements the interactive text menu that dispatches to the
// basics walkthrough and the chain demo.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ardanlabs/chaindemo/foundation/basics"
	"go.uber.org/zap"
)

// ChainSettings carries what the chain demo needs to open a connection and
// find the wallet.
type ChainSettings struct {
	URL          string
	Commitment   string
	Timeout      time.Duration
	KeypairPath  string
	HistoryLimit int
	Details      bool
	NamesFolder  string
}

// Config contains all the mandatory systems required by the menu.
type Config struct {
	In    io.Reader
	Out   io.Writer
	Log   *zap.SugaredLogger
	Chain ChainSettings
}

// Menu reads choices from the input and writes every result to the output.
type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	log   *zap.SugaredLogger
	chain ChainSettings
}

// New constructs a menu.
func New(cfg Config) *Menu {
	return &Menu{
		in:    bufio.NewScanner(cfg.In),
		out:   cfg.Out,
		log:   cfg.Log,
		chain: cfg.Chain,
	}
}

// Run prints the menu and handles choices until the user exits, the input
// is exhausted or the context is cancelled. Failures inside a demo are
// printed and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Combined Go Basics and Solana Interaction Program")
	fmt.Fprintln(m.out, "=================================================")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "\nChoose a demo:")
		fmt.Fprintln(m.out, "1. Go Basics (variables, functions, structs, enums, value semantics)")
		fmt.Fprintln(m.out, "2. Solana Interaction (wallet info, balance)")
		fmt.Fprintln(m.out, "3. Exit Program")

		choice, ok := m.prompt("Enter your choice (1-3): ")
		if !ok {
			fmt.Fprintln(m.out, "\nExiting program. Goodbye!")
			return m.in.Err()
		}

		// The context may have been cancelled while blocked on input.
		if err := ctx.Err(); err != nil {
			return err
		}

		m.log.Infow("menu", "status", "choice", "choice", choice)

		switch choice {
		case "1":
			basics.Run(m.out)

		case "2":
			m.chainDemo(ctx)

		case "3":
			fmt.Fprintln(m.out, "Exiting program. Goodbye!")
			return nil

		default:
			fmt.Fprintln(m.out, "Invalid choice. Please select 1, 2, or 3.")
		}
	}
}

// prompt writes the prompt and reads a trimmed line. It reports false when
// there is no more input.
func (m *Menu) prompt(p string) (string, bool) {
	fmt.Fprintln(m.out, p)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}
