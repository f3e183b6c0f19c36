package doortracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/contractCaller"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// ErrUnauthorized is returned when a caller other than the configured admin
// attempts an administrative door operation.
var ErrUnauthorized = errors.New("caller is not authorized")

// Tracker answers per-leaf "door" queries by reading through to the ledger on
// every call. Solve status is never cached: the ledger is the single source
// of truth, and a door once observed solved may have been administratively
// reset since.
type Tracker struct {
	ledger contractCaller.ILedgerCaller
	store  persistence.IQuizStore
	logger *zap.Logger

	// adminAddress is the only caller allowed to reset doors
	adminAddress common.Address
}

func NewTracker(
	ledger contractCaller.ILedgerCaller,
	store persistence.IQuizStore,
	adminAddress common.Address,
	logger *zap.Logger,
) *Tracker {
	return &Tracker{
		ledger:       ledger,
		store:        store,
		logger:       logger,
		adminAddress: adminAddress,
	}
}

// IsSolved reports whether a leaf's door has been opened on the ledger
func (t *Tracker) IsSolved(ctx context.Context, leafHash common.Hash) (bool, error) {
	solved, err := t.ledger.IsLeafSolved(ctx, leafHash)
	if err != nil {
		return false, fmt.Errorf("failed to query solved state for leaf %s: %w", leafHash.Hex(), err)
	}
	return solved, nil
}

// LeafInfo returns the ledger's full door state for a leaf
func (t *Tracker) LeafInfo(ctx context.Context, leafHash common.Hash) (*types.LeafInfo, error) {
	info, err := t.ledger.GetLeafInfo(ctx, leafHash)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaf info for %s: %w", leafHash.Hex(), err)
	}
	return info, nil
}

// RegisterLeaf associates a leaf with an on-chain question id. Re-registering
// an already registered leaf is a no-op, not an error.
func (t *Tracker) RegisterLeaf(ctx context.Context, questionId uint64, leafHash common.Hash) error {
	info, err := t.ledger.GetLeafInfo(ctx, leafHash)
	if err != nil {
		return fmt.Errorf("failed to check registration for leaf %s: %w", leafHash.Hex(), err)
	}
	if info.QuestionID != 0 {
		t.logger.Sugar().Infow("Leaf already registered, skipping",
			zap.String("leaf", leafHash.Hex()),
			zap.Uint64("questionId", info.QuestionID),
		)
		return nil
	}

	if _, err := t.ledger.RegisterLeaf(ctx, questionId, leafHash); err != nil {
		return fmt.Errorf("failed to register leaf %s: %w", leafHash.Hex(), err)
	}

	t.logger.Sugar().Infow("Leaf registered",
		zap.String("leaf", leafHash.Hex()),
		zap.Uint64("questionId", questionId),
	)
	return nil
}

// CreateQuestion registers a quiz's answer leaf as a new on-chain question
// and returns the question id the contract assigned. A leaf that already has
// a question keeps it; the existing id is returned without a transaction.
func (t *Tracker) CreateQuestion(ctx context.Context, quizID string, hint string, difficulty uint8, mode uint8) (uint64, error) {
	leaf, err := t.store.GetLeafByQuiz(quizID)
	if err != nil {
		return 0, fmt.Errorf("failed to load leaf for quiz %s: %w", quizID, err)
	}
	if leaf == nil {
		return 0, fmt.Errorf("no leaf recorded for quiz %s", quizID)
	}

	info, err := t.ledger.GetLeafInfo(ctx, leaf.LeafHash)
	if err != nil {
		return 0, fmt.Errorf("failed to check registration for leaf %s: %w", leaf.LeafHash.Hex(), err)
	}
	if info.QuestionID != 0 {
		t.logger.Sugar().Infow("Leaf already has a question, skipping",
			zap.String("quizId", quizID),
			zap.Uint64("questionId", info.QuestionID),
		)
		return info.QuestionID, nil
	}

	questionId, _, err := t.ledger.CreateQuestion(ctx, leaf.LeafHash, crypto.Keccak256Hash([]byte(hint)), difficulty, mode)
	if err != nil {
		return 0, fmt.Errorf("failed to create question for quiz %s: %w", quizID, err)
	}

	t.logger.Sugar().Infow("Question created on ledger",
		zap.String("quizId", quizID),
		zap.Uint64("questionId", questionId),
	)
	return questionId, nil
}

// ResetLeaf clears a leaf's solved state. Administrative unlock only; the
// ledger contract enforces ownership on chain, this check fails fast before
// a transaction is even attempted.
func (t *Tracker) ResetLeaf(ctx context.Context, caller common.Address, leafHash common.Hash) error {
	if caller != t.adminAddress || t.adminAddress == (common.Address{}) {
		return fmt.Errorf("%w: %s may not reset leaf doors", ErrUnauthorized, caller.Hex())
	}

	if _, err := t.ledger.ResetLeaf(ctx, leafHash); err != nil {
		return fmt.Errorf("failed to reset leaf %s: %w", leafHash.Hex(), err)
	}

	t.logger.Sugar().Infow("Leaf door reset",
		zap.String("leaf", leafHash.Hex()),
		zap.String("admin", caller.Hex()),
	)
	return nil
}

// AvailableQuizzes lists the quiz IDs in a batch whose doors are still
// closed. Each leaf is re-checked against the ledger on every call.
func (t *Tracker) AvailableQuizzes(ctx context.Context, batchID int64) ([]string, error) {
	batch, err := t.store.LoadBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch %d: %w", batchID, err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: %d", types.ErrBatchNotFound, batchID)
	}

	leaves, err := t.store.ListLeavesByBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaves for batch %d: %w", batchID, err)
	}

	available := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		solved, err := t.ledger.IsLeafSolved(ctx, leaf.LeafHash)
		if err != nil {
			return nil, fmt.Errorf("failed to query solved state for quiz %s: %w", leaf.QuizID, err)
		}
		if !solved {
			available = append(available, leaf.QuizID)
		}
	}
	return available, nil
}
