package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/poolshark1904/gestao-produtos/internal/adapter/storage"
	"github.com/poolshark1904/gestao-produtos/internal/config"
	"github.com/poolshark1904/gestao-produtos/internal/port"
)

// Storage is a key-value backend that owns a connection or file handle.
type Storage interface {
	port.KeyValueRepository
	io.Closer
}

// OpenStorage connects the configured backend and verifies it is reachable.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		adapter, err := storage.NewBoltAdapter(cfg.Path)
		if err != nil {
			return nil, err
		}
		return adapter, nil

	case config.DriverSQLite:
		adapter, err := storage.NewSQLiteAdapter(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return adapter, nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		return storage.NewRedisAdapter(rdb), nil

	case config.DriverMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect mysql: %w", err)
		}
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping mysql: %w", err)
		}

		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return adapter, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
