package redis

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// Key prefixes for namespacing in Redis
const (
	keyPrefixBatch       = "quiz:batch:"
	keyPrefixLeaf        = "quiz:leaf:"
	keyPrefixQuestion    = "quiz:question:"
	keySchemaVersion     = "quiz:metadata:schema_version"
	currentSchemaVersion = "v1"

	// Index sets for listing operations (Redis doesn't support prefix
	// iteration without SCAN)
	keySetBatches         = "quiz:batches:index"
	keySetBatchLeafPrefix = "quiz:batchleaves:"
)

const opTimeout = 5 * time.Second

// RedisStore is a quiz store backed by Redis, suitable for cloud-native
// deployments where local disk is ephemeral.
type RedisStore struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	mu        sync.RWMutex
	closed    bool
}

var _ persistence.IQuizStore = (*RedisStore)(nil)

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is an optional custom prefix prepended to all keys, for
	// multi-tenant setups.
	KeyPrefix string
}

// NewRedisStore creates a new Redis-backed quiz store and verifies the
// connection.
func NewRedisStore(cfg *RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to Redis at %s", cfg.Address)
	}

	rs := &RedisStore{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}

	if err := rs.initSchema(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	logger.Sugar().Infow("Redis quiz store initialized", "address", cfg.Address)

	return rs, nil
}

func (r *RedisStore) initSchema(ctx context.Context) error {
	key := r.key(keySchemaVersion)

	existing, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return r.client.Set(ctx, key, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	if existing != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existing, currentSchemaVersion)
	}
	return nil
}

func (r *RedisStore) key(suffix string) string {
	return r.keyPrefix + suffix
}

// SaveBatch persists a batch and adds it to the batch index set.
func (r *RedisStore) SaveBatch(batch *types.Batch) error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalBatch(batch)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(keyPrefixBatch+strconv.FormatInt(batch.ID, 10)), data, 0)
	pipe.SAdd(ctx, r.key(keySetBatches), strconv.FormatInt(batch.ID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to save batch %d", batch.ID)
	}
	return nil
}

// LoadBatch retrieves a batch by ID. Returns nil if absent.
func (r *RedisStore) LoadBatch(batchID int64) (*types.Batch, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(keyPrefixBatch+strconv.FormatInt(batchID, 10))).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load batch %d", batchID)
	}
	return persistence.UnmarshalBatch(data)
}

// ListBatches returns all batches sorted by ID.
func (r *RedisStore) ListBatches() ([]*types.Batch, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	members, err := r.client.SMembers(ctx, r.key(keySetBatches)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read batch index")
	}

	batches := make([]*types.Batch, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			r.logger.Sugar().Warnw("Skipping malformed batch index entry", "member", member)
			continue
		}
		batch, err := r.LoadBatch(id)
		if err != nil {
			return nil, err
		}
		if batch != nil {
			batches = append(batches, batch)
		}
	}

	sort.Slice(batches, func(i, j int) bool {
		return batches[i].ID < batches[j].ID
	})
	return batches, nil
}

// SaveLeaf persists a leaf and indexes it under its batch.
func (r *RedisStore) SaveLeaf(leaf *types.Leaf) error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalLeaf(leaf)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(keyPrefixLeaf+leaf.QuizID), data, 0)
	pipe.SAdd(ctx, r.key(keySetBatchLeafPrefix+strconv.FormatInt(leaf.BatchID, 10)), leaf.QuizID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to save leaf for quiz %s", leaf.QuizID)
	}
	return nil
}

// ListLeavesByBatch returns a batch's leaves in canonical hash order.
func (r *RedisStore) ListLeavesByBatch(batchID int64) ([]*types.Leaf, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	quizIDs, err := r.client.SMembers(ctx, r.key(keySetBatchLeafPrefix+strconv.FormatInt(batchID, 10))).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read leaf index for batch %d", batchID)
	}

	leaves := make([]*types.Leaf, 0, len(quizIDs))
	for _, quizID := range quizIDs {
		leaf, err := r.GetLeafByQuiz(quizID)
		if err != nil {
			return nil, err
		}
		if leaf != nil {
			leaves = append(leaves, leaf)
		}
	}

	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].LeafHash[:], leaves[j].LeafHash[:]) < 0
	})
	return leaves, nil
}

// GetLeafByQuiz retrieves the leaf committed for a quiz. Returns nil if absent.
func (r *RedisStore) GetLeafByQuiz(quizID string) (*types.Leaf, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(keyPrefixLeaf+quizID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load leaf for quiz %s", quizID)
	}
	return persistence.UnmarshalLeaf(data)
}

// SaveQuestion persists a question keyed by its quiz ID.
func (r *RedisStore) SaveQuestion(question *types.Question) error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	data, err := persistence.MarshalQuestion(question)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(keyPrefixQuestion+question.QuizID), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save question %s", question.QuizID)
	}
	return nil
}

// LoadQuestion retrieves a question by quiz ID. Returns nil if absent.
func (r *RedisStore) LoadQuestion(quizID string) (*types.Question, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(keyPrefixQuestion+quizID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load question %s", quizID)
	}
	return persistence.UnmarshalQuestion(data)
}

// Close closes the Redis connection. Idempotent.
func (r *RedisStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.client.Close(); err != nil {
		return errors.Wrap(err, "failed to close redis client")
	}
	r.logger.Sugar().Infow("Redis quiz store closed")
	return nil
}

// HealthCheck pings the Redis server.
func (r *RedisStore) HealthCheck() error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "redis health check failed")
	}
	return nil
}

func (r *RedisStore) checkOpen() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return persistence.ErrStoreClosed
	}
	return nil
}
