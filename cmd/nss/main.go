package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/nssportal/internal/buildinfo"
	"github.com/dmitrijs2005/nssportal/internal/cli"
	"github.com/dmitrijs2005/nssportal/internal/config"
	"github.com/dmitrijs2005/nssportal/internal/logging"
	"github.com/dmitrijs2005/nssportal/internal/state"
	"github.com/dmitrijs2005/nssportal/internal/store/open"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Printf("nss: %v", err)
		os.Exit(1)
	}
}

// run wires config, store and session, then serves the REPL on in/out until
// EOF or ctx is done. The store is closed before run returns.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, errOut)

	st, closeStore, err := open.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(ctx, "close store", "err", err)
		}
	}()

	session, err := state.Open(ctx, st,
		state.WithLogger(logger),
		state.WithAdminName(cfg.AdminName),
	)
	if err != nil {
		return fmt.Errorf("load portal state: %w", err)
	}

	cli.NewApp(session, in, out, logger).Run(ctx)
	return nil
}
