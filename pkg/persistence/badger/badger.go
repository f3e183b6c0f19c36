package badger

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// Key prefixes for namespacing
const (
	keyPrefixBatch       = "batch:"
	keyPrefixLeaf        = "leaf:"
	keyPrefixBatchLeaf   = "batchleaf:"
	keyPrefixQuestion    = "question:"
	keySchemaVersion     = "metadata:schema_version"
	currentSchemaVersion = "v1"
)

// BadgerStore is a production-ready quiz store backed by Badger.
// Provides durable, disk-based storage with ACID guarantees.
type BadgerStore struct {
	db       *badgerdb.DB
	logger   *zap.Logger
	gcCancel context.CancelFunc
	gcWg     sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
}

var _ persistence.IQuizStore = (*BadgerStore)(nil)

// NewBadgerStore creates a new Badger-backed quiz store.
// The database is opened at the specified path with SyncWrites enabled for
// durability. A background goroutine is started for garbage collection.
func NewBadgerStore(dataPath string, logger *zap.Logger) (*BadgerStore, error) {
	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve absolute path")
	}

	opts := badgerdb.DefaultOptions(absPath)
	opts.Logger = newStoreLogger(logger)
	opts.SyncWrites = true // fsync on every write; batch records are the commitment's source of truth
	opts.CompactL0OnClose = true
	opts.NumVersionsToKeep = 1

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger database at %s", absPath)
	}

	bs := &BadgerStore{
		db:     db,
		logger: logger,
	}

	if err := bs.initSchema(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	ctx, cancel := context.WithCancel(context.Background())
	bs.gcCancel = cancel
	bs.gcWg.Add(1)
	go bs.runGC(ctx)

	logger.Sugar().Infow("Badger quiz store initialized", "path", absPath)

	return bs, nil
}

// initSchema initializes or validates the schema version
func (b *BadgerStore) initSchema() error {
	return b.db.Update(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(keySchemaVersion))
		if err == badgerdb.ErrKeyNotFound {
			return txn.Set([]byte(keySchemaVersion), []byte(currentSchemaVersion))
		}
		if err != nil {
			return errors.Wrap(err, "failed to read schema version")
		}

		var existingVersion string
		err = item.Value(func(val []byte) error {
			existingVersion = string(val)
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to read schema version value")
		}

		if existingVersion != currentSchemaVersion {
			return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
		}
		return nil
	})
}

// runGC runs periodic value-log garbage collection in the background
func (b *BadgerStore) runGC(ctx context.Context) {
	defer b.gcWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for {
				if err := b.db.RunValueLogGC(0.5); err != nil {
					break
				}
			}
		}
	}
}

func batchKey(batchID int64) []byte {
	// Big-endian so lexicographic key order matches numeric batch order
	key := make([]byte, len(keyPrefixBatch)+8)
	copy(key, keyPrefixBatch)
	binary.BigEndian.PutUint64(key[len(keyPrefixBatch):], uint64(batchID))
	return key
}

func batchLeafKey(batchID int64, quizID string) []byte {
	key := make([]byte, 0, len(keyPrefixBatchLeaf)+8+1+len(quizID))
	key = append(key, keyPrefixBatchLeaf...)
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], uint64(batchID))
	key = append(key, id[:]...)
	key = append(key, ':')
	key = append(key, quizID...)
	return key
}

// SaveBatch persists a batch, overwriting any existing record.
func (b *BadgerStore) SaveBatch(batch *types.Batch) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalBatch(batch)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(batchKey(batch.ID), data)
	})
}

// LoadBatch retrieves a batch by ID. Returns nil if absent.
func (b *BadgerStore) LoadBatch(batchID int64) (*types.Batch, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(batchKey(batchID))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load batch %d", batchID)
	}
	return persistence.UnmarshalBatch(data)
}

// ListBatches returns all batches sorted by ID (key order).
func (b *BadgerStore) ListBatches() ([]*types.Batch, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	batches := make([]*types.Batch, 0)
	err := b.db.View(func(txn *badgerdb.Txn) error {
		it := txn.NewIterator(badgerdb.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefixBatch)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				batch, err := persistence.UnmarshalBatch(val)
				if err != nil {
					return err
				}
				batches = append(batches, batch)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list batches")
	}
	return batches, nil
}

// SaveLeaf persists a leaf under its quiz ID and under a per-batch index key.
func (b *BadgerStore) SaveLeaf(leaf *types.Leaf) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalLeaf(leaf)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badgerdb.Txn) error {
		if err := txn.Set(append([]byte(keyPrefixLeaf), leaf.QuizID...), data); err != nil {
			return err
		}
		return txn.Set(batchLeafKey(leaf.BatchID, leaf.QuizID), data)
	})
}

// ListLeavesByBatch returns a batch's leaves in canonical hash order.
func (b *BadgerStore) ListLeavesByBatch(batchID int64) ([]*types.Leaf, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	leaves := make([]*types.Leaf, 0)
	err := b.db.View(func(txn *badgerdb.Txn) error {
		it := txn.NewIterator(badgerdb.DefaultIteratorOptions)
		defer it.Close()

		prefix := batchLeafKey(batchID, "")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				leaf, err := persistence.UnmarshalLeaf(val)
				if err != nil {
					return err
				}
				leaves = append(leaves, leaf)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list leaves for batch %d", batchID)
	}

	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].LeafHash[:], leaves[j].LeafHash[:]) < 0
	})
	return leaves, nil
}

// GetLeafByQuiz retrieves the leaf committed for a quiz. Returns nil if absent.
func (b *BadgerStore) GetLeafByQuiz(quizID string) (*types.Leaf, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(append([]byte(keyPrefixLeaf), quizID...))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load leaf for quiz %s", quizID)
	}
	return persistence.UnmarshalLeaf(data)
}

// SaveQuestion persists a question keyed by its quiz ID.
func (b *BadgerStore) SaveQuestion(question *types.Question) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalQuestion(question)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(append([]byte(keyPrefixQuestion), question.QuizID...), data)
	})
}

// LoadQuestion retrieves a question by quiz ID. Returns nil if absent.
func (b *BadgerStore) LoadQuestion(quizID string) (*types.Question, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(append([]byte(keyPrefixQuestion), quizID...))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load question %s", quizID)
	}
	return persistence.UnmarshalQuestion(data)
}

// Close stops the GC goroutine and closes the database. Idempotent.
func (b *BadgerStore) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	b.gcCancel()
	b.gcWg.Wait()

	if err := b.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close badger database")
	}
	b.logger.Sugar().Infow("Badger quiz store closed")
	return nil
}

// HealthCheck verifies the database is readable.
func (b *BadgerStore) HealthCheck() error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	return b.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get([]byte(keySchemaVersion))
		if err != nil {
			return errors.Wrap(err, "health check failed to read schema version")
		}
		return nil
	})
}

func (b *BadgerStore) checkOpen() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return persistence.ErrStoreClosed
	}
	return nil
}
