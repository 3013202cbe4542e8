package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/nssportal/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns; everything else in args is
// ignored so other components can define their own flags.
func parseFlags(cfg *Config, args []string) error {
	own := flagx.FilterArgs(args, []string{"-s", "-d", "-dir", "-admin", "-l"})

	fs := flag.NewFlagSet("nss", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver (sqlite, postgres, file, s3, memory)")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "database DSN")
	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "data directory for the file driver")
	fs.StringVar(&cfg.AdminName, "admin", cfg.AdminName, "name recorded on approvals")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(own); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
