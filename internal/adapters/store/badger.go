// Package store implements the checkpoint container on BadgerDB. Each
// checkpoint is one badger directory; values are JSON so floats survive the
// round trip bit for bit.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/voltlab/strata/internal/core/domain"
	"github.com/voltlab/strata/internal/core/ports"
	"go.trai.ch/zerr"
)

const headerKey = "header"

// Checkpoint is one open checkpoint container.
type Checkpoint struct {
	db *badger.DB

	closeOnce sync.Once
	closeErr  error
}

// Factory creates and opens checkpoint containers on disk. The zero value is
// ready to use. InMemory switches to badger's in-memory mode, which only
// makes sense in tests.
type Factory struct {
	InMemory bool
}

// Create opens a fresh container at path, removing any previous checkpoint
// written there.
func (f *Factory) Create(path string) (ports.CheckpointStore, error) {
	if !f.InMemory {
		if err := os.RemoveAll(path); err != nil {
			return nil, zerr.Wrap(err, "failed to clear checkpoint path")
		}
	}
	return f.open(path)
}

// Open opens an existing container for reading.
func (f *Factory) Open(path string) (ports.CheckpointStore, error) {
	if !f.InMemory {
		if _, err := os.Stat(path); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "checkpoint not found"), "path", path)
		}
	}
	return f.open(path)
}

func (f *Factory) open(path string) (ports.CheckpointStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithInMemory(f.InMemory)
	if f.InMemory {
		opts.Dir = ""
		opts.ValueDir = ""
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open checkpoint container"), "path", path)
	}
	return &Checkpoint{db: db}, nil
}

func levelKey(level int, parts ...string) []byte {
	key := fmt.Sprintf("level/%d", level)
	for _, p := range parts {
		key += "/" + p
	}
	return []byte(key)
}

func (c *Checkpoint) put(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, "failed to encode checkpoint record")
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write checkpoint record"), "key", string(key))
	}
	return nil
}

func (c *Checkpoint) get(key []byte, v any) error {
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, v)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return zerr.With(domain.ErrCheckpointFormat, "missing", string(key))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read checkpoint record"), "key", string(key))
	}
	return nil
}

func (c *Checkpoint) PutHeader(h domain.CheckpointHeader) error {
	return c.put([]byte(headerKey), h)
}

func (c *Checkpoint) Header() (domain.CheckpointHeader, error) {
	var h domain.CheckpointHeader
	if err := c.get([]byte(headerKey), &h); err != nil {
		return domain.CheckpointHeader{}, err
	}
	return h, nil
}

func (c *Checkpoint) PutBoxes(level int, boxes []domain.Box) error {
	return c.put(levelKey(level, "boxes"), boxes)
}

func (c *Checkpoint) Boxes(level int) ([]domain.Box, error) {
	var boxes []domain.Box
	if err := c.get(levelKey(level, "boxes"), &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

func (c *Checkpoint) PutTagMask(level int, mask []domain.MaskPatch) error {
	return c.put(levelKey(level, "tagmask"), mask)
}

func (c *Checkpoint) TagMask(level int) ([]domain.MaskPatch, error) {
	var mask []domain.MaskPatch
	if err := c.get(levelKey(level, "tagmask"), &mask); err != nil {
		return nil, err
	}
	return mask, nil
}

func (c *Checkpoint) PutBlob(level int, key string, blob []byte) error {
	return c.put(levelKey(level, "blob", key), blob)
}

func (c *Checkpoint) Blob(level int, key string) ([]byte, error) {
	var blob []byte
	if err := c.get(levelKey(level, "blob", key), &blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// Close flushes and releases the container. Safe to call more than once; the
// first result wins.
func (c *Checkpoint) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.db.Close()
	})
	return c.closeErr
}

var (
	_ ports.CheckpointStore   = (*Checkpoint)(nil)
	_ ports.CheckpointFactory = (*Factory)(nil)
)
