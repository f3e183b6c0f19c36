package proofservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/leafcodec"
	"github.com/quizchain/quizchain-go/pkg/merkle"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// ErrQuizNotFound is returned when no leaf was ever committed for a quiz ID.
// A missing quiz must never be reported as a failed verification.
var ErrQuizNotFound = errors.New("quiz not found")

// Service produces and checks inclusion proofs against committed batches.
// Every proof is self-verified before it leaves this package.
type Service struct {
	store  persistence.IQuizStore
	logger *zap.Logger
}

func NewService(store persistence.IQuizStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ProofFor builds the inclusion proof for the leaf committed under quizID and
// evaluates the claimed answer against it. The proof always covers the
// stored leaf; IsValid reports whether the claimed answer hashes to it.
func (s *Service) ProofFor(ctx context.Context, quizID string, claimedAnswer string) (*types.Proof, error) {
	leaf, err := s.store.GetLeafByQuiz(quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz %s: %w", quizID, err)
	}
	if leaf == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuizNotFound, quizID)
	}

	batch, err := s.store.LoadBatch(leaf.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch %d: %w", leaf.BatchID, err)
	}
	if batch == nil {
		return nil, fmt.Errorf("%w: %d", types.ErrBatchNotFound, leaf.BatchID)
	}
	if batch.MerkleRoot == (common.Hash{}) {
		return nil, fmt.Errorf("%w: batch %d has no merkle root yet", types.ErrBatchNotReady, leaf.BatchID)
	}

	tree, err := s.rebuildTree(batch)
	if err != nil {
		return nil, err
	}

	siblings, err := tree.ProofForLeaf(leaf.LeafHash)
	if err != nil {
		return nil, fmt.Errorf("failed to build proof for quiz %s: %w", quizID, err)
	}

	// Never hand out a proof that does not verify against the stored root
	if !merkle.VerifyProof(leaf.LeafHash, siblings, batch.MerkleRoot) {
		return nil, fmt.Errorf("%w: proof for quiz %s does not verify against batch %d root",
			types.ErrRootMismatch, quizID, leaf.BatchID)
	}

	proof := &types.Proof{
		Leaf:     leaf.LeafHash,
		Siblings: make([]common.Hash, len(siblings)),
		Root:     batch.MerkleRoot,
		IsValid:  leafcodec.HashAnswer(claimedAnswer) == leaf.LeafHash,
	}
	for i, sibling := range siblings {
		proof.Siblings[i] = sibling
	}

	s.logger.Sugar().Debugw("Proof built",
		zap.String("quizId", quizID),
		zap.Int64("batchId", leaf.BatchID),
		zap.Int("proofLength", len(siblings)),
		zap.Bool("isValid", proof.IsValid),
	)
	return proof, nil
}

// Verify checks a leaf/proof/root triple. Thin pass-through for callers
// holding only the proof material, such as a client self-verifying.
func (s *Service) Verify(leaf common.Hash, siblings []common.Hash, root common.Hash) bool {
	raw := make([][32]byte, len(siblings))
	for i, sibling := range siblings {
		raw[i] = sibling
	}
	return merkle.VerifyProof(leaf, raw, root)
}

// rebuildTree reconstructs a batch's tree from its persisted leaves and
// cross-checks the stored root. A mismatch is a corruption signal, the same
// one the commitment client reports before submitting.
func (s *Service) rebuildTree(batch *types.Batch) (*merkle.Tree, error) {
	leaves, err := s.store.ListLeavesByBatch(batch.ID)
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
	return tree, nil
}
