// This program is a menu driven walkthrough of the language basics and a
// read-only Solana wallet demo.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/chaindemo/app/demo/menu"
	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/ardanlabs/chaindemo/foundation/logger"
	"github.com/ardanlabs/conf/v3"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Perform the startup and shutdown sequence.
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run() error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Log struct {
			Level  string `conf:"default:info"`
			Output string `conf:"default:stderr"`
		}
		Chain struct {
			URL          string        `conf:"default:https://api.devnet.solana.com"`
			Commitment   string        `conf:"default:finalized"`
			Timeout      time.Duration `conf:"default:30s"`
			KeypairPath  string        `conf:"default:~/.config/solana/id.json"`
			HistoryLimit int           `conf:"default:5"`
			Details      bool          `conf:"default:false"`
			NamesFolder  string
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "Go basics walkthrough and read-only Solana wallet demo",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "DEMO"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// Logging

	// Log lines go to stderr by default so they stay out of the menu.
	log, err := logger.NewLevel(prefix, cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		return fmt.Errorf("constructing logger: %w", err)
	}
	defer log.Sync()

	// =========================================================================
	// App Starting

	log.Infow("starting demo", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	if cfg.Chain.URL == chain.DefaultURL {
		log.Infow("startup", "status", "using public devnet endpoint", "url", cfg.Chain.URL)
	}

	// =========================================================================
	// Menu

	// Interrupts keep their default behaviour and end the process, even
	// while the menu is blocked reading the next choice.
	ctx := context.Background()

	m := menu.New(menu.Config{
		In:  os.Stdin,
		Out: os.Stdout,
		Log: log,
		Chain: menu.ChainSettings{
			URL:          cfg.Chain.URL,
			Commitment:   cfg.Chain.Commitment,
			Timeout:      cfg.Chain.Timeout,
			KeypairPath:  cfg.Chain.KeypairPath,
			HistoryLimit: cfg.Chain.HistoryLimit,
			Details:      cfg.Chain.Details,
			NamesFolder:  cfg.Chain.NamesFolder,
		},
	})

	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorw("menu", "ERROR", err)
		return err
	}

	return nil
}
