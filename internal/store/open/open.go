// Package open picks the store implementation named by the configuration.
package open

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nssportal/internal/config"
	"github.com/dmitrijs2005/nssportal/internal/store"
	"github.com/dmitrijs2005/nssportal/internal/store/filestore"
	"github.com/dmitrijs2005/nssportal/internal/store/s3store"
	"github.com/dmitrijs2005/nssportal/internal/store/sqlstore"
)

// CloseFunc releases whatever the store holds open. It is never nil.
type CloseFunc func() error

func noClose() error { return nil }

var (
	openSQLite   = sqlstore.OpenSQLite
	openPostgres = sqlstore.OpenPostgres
	openS3       = s3store.Open
)

// Open returns the store for cfg.StoreDriver and a function closing it.
func Open(ctx context.Context, cfg *config.Config) (store.Store, CloseFunc, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := openSQLite(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		s, err := openPostgres(ctx, cfg.StoreDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return s, s.Close, nil

	case config.DriverFile:
		s, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return s, noClose, nil

	case config.DriverS3:
		s, err := openS3(ctx, s3store.Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Prefix:       cfg.S3Prefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open s3 store: %w", err)
		}
		return s, noClose, nil

	case config.DriverMemory:
		return store.NewMemory(), noClose, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
