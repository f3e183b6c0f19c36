package commitment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/contractCaller"
	"github.com/quizchain/quizchain-go/pkg/merkle"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
	"github.com/quizchain/quizchain-go/pkg/util"
)

// Client submits finalized batches to the on-chain ledger. It is the only
// writer of a batch record from ready until a terminal committed state.
//
// Chunk transactions for one batch are submitted strictly in order, each
// confirmed before the next is sent. Cross-batch ordering is enforced below
// this layer by the transaction signer's process-wide send lock.
type Client struct {
	store  persistence.IQuizStore
	ledger contractCaller.ILedgerCaller
	logger *zap.Logger

	submitLeaves bool
	chunkSize    int
	txDelay      time.Duration
}

func NewClient(
	store persistence.IQuizStore,
	ledger contractCaller.ILedgerCaller,
	cfg *config.CommitConfig,
	logger *zap.Logger,
) *Client {
	return &Client{
		store:        store,
		ledger:       ledger,
		logger:       logger,
		submitLeaves: cfg.SubmitLeaves,
		chunkSize:    cfg.SubmitChunkSize,
		txDelay:      cfg.TxDelay,
	}
}

// Commit submits a ready batch's root (and, when enabled, its leaf chunks)
// to the ledger. Re-invoking on an already committed batch is a no-op;
// re-invoking after an interrupted chunked commit resumes at the first
// unconfirmed chunk.
func (c *Client) Commit(ctx context.Context, batchID int64) (*types.CommitResult, error) {
	batch, err := c.store.LoadBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch %d: %w", batchID, err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: %d", types.ErrBatchNotFound, batchID)
	}

	if batch.Status.IsCommitted() {
		c.logger.Sugar().Infow("Batch already committed, nothing to do",
			zap.Int64("batchId", batchID),
			zap.String("status", string(batch.Status)),
		)
		return &types.CommitResult{
			BatchID:  batchID,
			Status:   batch.Status,
			TxHashes: batch.TxHashes,
		}, nil
	}
	if batch.Status != types.BatchStatusReady {
		return nil, fmt.Errorf("%w: batch %d is %s", types.ErrBatchNotReady, batchID, batch.Status)
	}

	leafHashes, err := c.verifyRoot(batch)
	if err != nil {
		return nil, err
	}

	// Unreachable ledger is a terminal, explicit fallback, never a silent one
	if err := c.ledger.Ping(ctx); err != nil {
		c.logger.Sugar().Warnw("Ledger unreachable, committing off-chain",
			zap.Int64("batchId", batchID),
			zap.Error(err),
		)
		return c.finalize(batch, types.BatchStatusCommittedOffchain, 0)
	}

	if !c.submitLeaves {
		return c.commitRootOnly(ctx, batch)
	}
	return c.commitChunked(ctx, batch, leafHashes)
}

// VerifyOnChain cross-checks a committed batch's stored root against the root
// the ledger actually holds. Off-chain commits have no on-chain root to check
// and fail with ErrLedgerUnavailable.
func (c *Client) VerifyOnChain(ctx context.Context, batchID int64) error {
	batch, err := c.store.LoadBatch(batchID)
	if err != nil {
		return fmt.Errorf("failed to load batch %d: %w", batchID, err)
	}
	if batch == nil {
		return fmt.Errorf("%w: %d", types.ErrBatchNotFound, batchID)
	}
	if !batch.Status.IsCommitted() {
		return fmt.Errorf("%w: batch %d is %s", types.ErrBatchNotReady, batchID, batch.Status)
	}
	if batch.Status == types.BatchStatusCommittedOffchain {
		return fmt.Errorf("%w: batch %d was committed off-chain, no root to verify",
			types.ErrLedgerUnavailable, batchID)
	}

	onChainRoot, err := c.ledger.GetMerkleRoot(ctx, uint64(batchID))
	if err != nil {
		return fmt.Errorf("failed to read on-chain root for batch %d: %w", batchID, err)
	}
	if onChainRoot != [32]byte(batch.MerkleRoot) {
		return fmt.Errorf("%w: batch %d stored root %s, on-chain root %x",
			types.ErrRootMismatch, batchID, batch.MerkleRoot.Hex(), onChainRoot)
	}

	c.logger.Sugar().Infow("On-chain root verified",
		zap.Int64("batchId", batchID),
		zap.String("merkleRoot", batch.MerkleRoot.Hex()),
	)
	return nil
}

// verifyRoot rebuilds the tree from persisted leaves and compares it with the
// stored root. A mismatch means the records were corrupted after finalization.
func (c *Client) verifyRoot(batch *types.Batch) ([][32]byte, error) {
	leaves, err := c.store.ListLeavesByBatch(batch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaves for batch %d: %w", batch.ID, err)
	}

	leafHashes := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		leafHashes[i] = leaf.LeafHash
	}

	tree, err := merkle.NewTree(leafHashes)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild merkle tree for batch %d: %w", batch.ID, err)
	}
	if tree.Root != [32]byte(batch.MerkleRoot) {
		return nil, fmt.Errorf("%w: batch %d stored root %s, rebuilt root %x",
			types.ErrRootMismatch, batch.ID, batch.MerkleRoot.Hex(), tree.Root)
	}
	return leafHashes, nil
}

func (c *Client) commitRootOnly(ctx context.Context, batch *types.Batch) (*types.CommitResult, error) {
	receipt, err := c.ledger.SubmitMerkleRoot(ctx, uint64(batch.ID), batch.MerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to submit root for batch %d: %w", batch.ID, err)
	}

	batch.TxHashes = append(batch.TxHashes, receipt.TxHash.Hex())
	return c.finalize(batch, types.BatchStatusCommittedOnchainRootOnly, 1)
}

func (c *Client) commitChunked(ctx context.Context, batch *types.Batch, leafHashes [][32]byte) (*types.CommitResult, error) {
	chunks := util.Chunk(leafHashes, c.chunkSize)

	// Confirmed transactions from a previous attempt are the resume point
	resumeFrom := len(batch.TxHashes)
	if resumeFrom > len(chunks) {
		return nil, fmt.Errorf("batch %d records %d transactions for %d chunks",
			batch.ID, resumeFrom, len(chunks))
	}
	if resumeFrom > 0 {
		c.logger.Sugar().Infow("Resuming interrupted commit",
			zap.Int64("batchId", batch.ID),
			zap.Int("confirmedChunks", resumeFrom),
			zap.Int("totalChunks", len(chunks)),
		)
	}

	submitted := 0
	for i := resumeFrom; i < len(chunks); i++ {
		receipt, err := c.ledger.SubmitMerkleRootWithLeaves(ctx, uint64(batch.ID), batch.MerkleRoot, chunks[i])
		if err != nil {
			// The confirmed prefix is already saved; the batch stays ready so
			// a retry resumes at this chunk
			return nil, fmt.Errorf("failed to submit chunk %d/%d for batch %d: %w",
				i+1, len(chunks), batch.ID, err)
		}

		batch.TxHashes = append(batch.TxHashes, receipt.TxHash.Hex())
		if err := c.store.SaveBatch(batch); err != nil {
			return nil, fmt.Errorf("failed to record chunk %d for batch %d: %w", i+1, batch.ID, err)
		}
		submitted++

		c.logger.Sugar().Infow("Chunk confirmed",
			zap.Int64("batchId", batch.ID),
			zap.Int("chunk", i+1),
			zap.Int("totalChunks", len(chunks)),
			zap.String("txHash", receipt.TxHash.Hex()),
		)

		if i+1 < len(chunks) {
			if err := sleepCtx(ctx, c.txDelay); err != nil {
				return nil, fmt.Errorf("commit cancelled after chunk %d/%d for batch %d: %w",
					i+1, len(chunks), batch.ID, err)
			}
		}
	}

	return c.finalize(batch, types.BatchStatusCommittedOnchain, submitted)
}

// finalize moves the batch into a terminal committed state
func (c *Client) finalize(batch *types.Batch, status types.BatchStatus, submitted int) (*types.CommitResult, error) {
	batch.Status = status
	batch.CommittedAt = time.Now().Unix()
	if err := c.store.SaveBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to save committed batch %d: %w", batch.ID, err)
	}

	c.logger.Sugar().Infow("Batch committed",
		zap.Int64("batchId", batch.ID),
		zap.String("status", string(status)),
		zap.Int("transactions", len(batch.TxHashes)),
	)

	return &types.CommitResult{
		BatchID:         batch.ID,
		Status:          status,
		TxHashes:        batch.TxHashes,
		ChunksSubmitted: submitted,
	}, nil
}

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
