package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/generator"
	"github.com/quizchain/quizchain-go/pkg/leafcodec"
	"github.com/quizchain/quizchain-go/pkg/merkle"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// ErrBatchGeneration is returned when a whole generation round produced no
// leaves after the retry budget. The batch is left in the generating state
// for operator inspection, never deleted.
var ErrBatchGeneration = errors.New("batch generation failed")

// Orchestrator drives the batch lifecycle from creation through ready. It is
// the only writer of batch and leaf records until a batch is finalized.
type Orchestrator struct {
	store     persistence.IQuizStore
	generator generator.IQuestionGenerator
	logger    *zap.Logger

	concurrency int
	retryBudget int
}

func NewOrchestrator(
	store persistence.IQuizStore,
	questionGenerator generator.IQuestionGenerator,
	cfg *config.BatchConfig,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:       store,
		generator:   questionGenerator,
		logger:      logger,
		concurrency: cfg.GenerationConcurrency,
		retryBudget: cfg.RoundRetryBudget,
	}
}

// StartBatch generates a new batch of total questions in paced rounds of
// subBatchSize and finalizes it into a merkle tree. Blocks until the batch is
// ready or generation is abandoned. Returns the batch ID in both cases; a
// non-nil error means the batch did not reach ready.
func (o *Orchestrator) StartBatch(ctx context.Context, total int, subBatchSize int, delay time.Duration) (int64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("total questions must be positive, got %d", total)
	}
	if subBatchSize <= 0 {
		return 0, fmt.Errorf("sub-batch size must be positive, got %d", subBatchSize)
	}

	batch, err := o.createBatch(total, subBatchSize, delay)
	if err != nil {
		return 0, err
	}

	o.logger.Sugar().Infow("Starting batch generation",
		zap.Int64("batchId", batch.ID),
		zap.Int("totalQuestions", total),
		zap.Int("subBatchSize", subBatchSize),
		zap.Duration("subBatchDelay", delay),
	)

	created := 0
	for created < total {
		want := subBatchSize
		if remaining := total - created; remaining < want {
			want = remaining
		}

		produced, err := o.runRoundWithRetries(ctx, batch, want, delay)
		if err != nil {
			return batch.ID, err
		}
		created += produced

		if created < total {
			// Intermediate progress; exactly 100 is reserved for ready
			batch.Progress = roundedProgress(created, total)
			if err := o.store.SaveBatch(batch); err != nil {
				return batch.ID, fmt.Errorf("failed to save batch progress: %w", err)
			}
			o.logger.Sugar().Infow("Batch round complete",
				zap.Int64("batchId", batch.ID),
				zap.Int("created", created),
				zap.Int("progress", batch.Progress),
			)

			if err := sleepCtx(ctx, delay); err != nil {
				return batch.ID, fmt.Errorf("batch generation cancelled: %w", err)
			}
		}
	}

	if err := o.finalizeBatch(batch); err != nil {
		return batch.ID, err
	}
	return batch.ID, nil
}

// BatchStatus returns the persisted batch record
func (o *Orchestrator) BatchStatus(batchID int64) (*types.Batch, error) {
	batch, err := o.store.LoadBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch %d: %w", batchID, err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: %d", types.ErrBatchNotFound, batchID)
	}
	return batch, nil
}

// ListBatches returns all persisted batches in ID order
func (o *Orchestrator) ListBatches() ([]*types.Batch, error) {
	return o.store.ListBatches()
}

// createBatch allocates a unique batch ID and persists the initial record.
// IDs are unix seconds, bumped forward on collision so two batches started
// within one second stay distinct.
func (o *Orchestrator) createBatch(total int, subBatchSize int, delay time.Duration) (*types.Batch, error) {
	id := time.Now().Unix()
	for {
		existing, err := o.store.LoadBatch(id)
		if err != nil {
			return nil, fmt.Errorf("failed to check batch id %d: %w", id, err)
		}
		if existing == nil {
			break
		}
		id++
	}

	batch := &types.Batch{
		ID:             id,
		TotalQuestions: total,
		SubBatchSize:   subBatchSize,
		SubBatchDelay:  delay,
		Status:         types.BatchStatusGenerating,
		Progress:       0,
		CreatedAt:      time.Now().Unix(),
	}
	if err := o.store.SaveBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to create batch record: %w", err)
	}
	return batch, nil
}

// runRoundWithRetries runs one generation round, retrying a round that
// produced zero leaves until the retry budget is spent.
func (o *Orchestrator) runRoundWithRetries(ctx context.Context, batch *types.Batch, want int, delay time.Duration) (int, error) {
	for attempt := 0; ; attempt++ {
		produced, err := o.runRound(ctx, batch, want)
		if err != nil {
			return 0, err
		}
		if produced > 0 {
			return produced, nil
		}

		if attempt >= o.retryBudget {
			o.logger.Sugar().Errorw("Batch round produced no leaves, abandoning batch",
				zap.Int64("batchId", batch.ID),
				zap.Int("attempts", attempt+1),
			)
			return 0, fmt.Errorf("%w: round produced no leaves after %d attempts, batch %d left in %s",
				ErrBatchGeneration, attempt+1, batch.ID, types.BatchStatusGenerating)
		}

		o.logger.Sugar().Warnw("Batch round produced no leaves, retrying",
			zap.Int64("batchId", batch.ID),
			zap.Int("attempt", attempt+1),
			zap.Int("retryBudget", o.retryBudget),
		)
		if err := sleepCtx(ctx, delay); err != nil {
			return 0, fmt.Errorf("batch generation cancelled: %w", err)
		}
	}
}

// runRound requests want questions with bounded concurrency and persists each
// success as a question plus leaf. Individual failures are logged and
// skipped; only context cancellation aborts the round.
func (o *Orchestrator) runRound(ctx context.Context, batch *types.Batch, want int) (int, error) {
	var mu sync.Mutex
	produced := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := 0; i < want; i++ {
		g.Go(func() error {
			generated, err := o.generator.GenerateQuestion(gctx)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				o.logger.Sugar().Warnw("Question generation failed, skipping",
					zap.Int64("batchId", batch.ID),
					zap.Error(err),
				)
				return nil
			}

			if err := o.persistQuestion(batch, generated); err != nil {
				o.logger.Sugar().Warnw("Question persistence failed, skipping",
					zap.Int64("batchId", batch.ID),
					zap.Error(err),
				)
				return nil
			}

			mu.Lock()
			produced++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("batch generation cancelled: %w", err)
	}
	return produced, nil
}

// persistQuestion stores the question record and its answer leaf under a
// fresh quiz ID. Only the answer hash ever reaches the tree.
func (o *Orchestrator) persistQuestion(batch *types.Batch, generated *types.GeneratedQuestion) error {
	quizID := uuid.New().String()

	question := &types.Question{
		QuizID:     quizID,
		BatchID:    batch.ID,
		Text:       generated.Question,
		Options:    generated.Options,
		Answer:     generated.Answer,
		Difficulty: generated.Difficulty,
		Category:   generated.Category,
		CreatedAt:  time.Now().Unix(),
	}
	if err := o.store.SaveQuestion(question); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	leaf := &types.Leaf{
		BatchID:  batch.ID,
		QuizID:   quizID,
		LeafHash: leafcodec.HashAnswer(generated.Answer),
	}
	if err := o.store.SaveLeaf(leaf); err != nil {
		return fmt.Errorf("failed to save leaf: %w", err)
	}
	return nil
}

// finalizeBatch builds the merkle tree over all persisted leaves and moves
// the batch to ready in a single save.
func (o *Orchestrator) finalizeBatch(batch *types.Batch) error {
	leaves, err := o.store.ListLeavesByBatch(batch.ID)
	if err != nil {
		return fmt.Errorf("failed to load leaves for batch %d: %w", batch.ID, err)
	}

	leafHashes := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		leafHashes[i] = leaf.LeafHash
	}

	tree, err := merkle.NewTree(leafHashes)
	if err != nil {
		return fmt.Errorf("failed to build merkle tree for batch %d: %w", batch.ID, err)
	}

	batch.MerkleRoot = tree.Root
	batch.Status = types.BatchStatusReady
	batch.Progress = 100
	batch.ReadyAt = time.Now().Unix()
	if err := o.store.SaveBatch(batch); err != nil {
		return fmt.Errorf("failed to finalize batch %d: %w", batch.ID, err)
	}

	o.logger.Sugar().Infow("Batch ready",
		zap.Int64("batchId", batch.ID),
		zap.Int("leaves", len(leaves)),
		zap.String("merkleRoot", batch.MerkleRoot.Hex()),
	)
	return nil
}

// roundedProgress reports integer percent completion, capped at 99: a value
// of exactly 100 is written only together with the ready status, and rounding
// alone (e.g. 200 of 201) must not produce it early.
func roundedProgress(created, total int) int {
	p := int(math.Round(float64(created) / float64(total) * 100))
	if p > 99 {
		p = 99
	}
	return p
}

// sleepCtx is a cancellable sleep
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
