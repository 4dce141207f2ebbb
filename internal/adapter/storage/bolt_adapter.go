package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketStorage = "storage"

// BoltAdapter is the default device-local store: a single bbolt file with
// one bucket of string values.
type BoltAdapter struct {
	db *bbolt.DB
}

func NewBoltAdapter(path string) (*BoltAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketStorage))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltAdapter{db: db}, nil
}

func (b *BoltAdapter) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketStorage)).Get([]byte(key))
		if data != nil {
			// data is only valid inside the transaction
			value = string(data)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return value, found, nil
}

func (b *BoltAdapter) SetItem(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketStorage)).Put([]byte(key), []byte(value))
	})
}

func (b *BoltAdapter) Close() error {
	return b.db.Close()
}
