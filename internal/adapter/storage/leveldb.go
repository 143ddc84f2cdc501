package storage

import (
	"fmt"
	"log/slog"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type kvdb interface {
	Put(key, value []byte, wo *opt.WriteOptions) error
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

// KVDB is the embedded key-value store holding durable cart
// snapshots. It is shared by every session of the process, there is
// no cross-process coordination.
type KVDB struct {
	*leveldb.DB
}

func NewKVDB(path string) (KVDB, error) {
	const op = "KVDB"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return KVDB{}, fmt.Errorf("%s: store is unavailable: %w", op, err)
	}
	log.Info("cart store is available", "path", path)
	return KVDB{db}, nil
}

func (s KVDB) Close() {
	const op = "KVDB.Close"
	log := slog.With("op", op)

	log.Info("closing cart store...")

	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("cart store is closed")
}
