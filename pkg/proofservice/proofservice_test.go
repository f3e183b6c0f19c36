package proofservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/leafcodec"
	"github.com/quizchain/quizchain-go/pkg/merkle"
	"github.com/quizchain/quizchain-go/pkg/persistence/memory"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// seedBatch persists a ready batch whose leaves commit the given answers,
// keyed by quiz IDs quiz-0..quiz-n.
func seedBatch(t *testing.T, store *memory.MemoryStore, batchID int64, answers []string) {
	t.Helper()

	leafHashes := make([][32]byte, len(answers))
	for i, answer := range answers {
		hash := leafcodec.HashAnswer(answer)
		leafHashes[i] = hash
		require.NoError(t, store.SaveLeaf(&types.Leaf{
			BatchID:  batchID,
			QuizID:   fmt.Sprintf("quiz-%d", i),
			LeafHash: hash,
		}))
		require.NoError(t, store.SaveQuestion(&types.Question{
			QuizID:  fmt.Sprintf("quiz-%d", i),
			BatchID: batchID,
			Text:    fmt.Sprintf("question %d", i),
			Answer:  answer,
		}))
	}

	tree, err := merkle.NewTree(leafHashes)
	require.NoError(t, err)
	require.NoError(t, store.SaveBatch(&types.Batch{
		ID:         batchID,
		Status:     types.BatchStatusReady,
		Progress:   100,
		MerkleRoot: tree.Root,
	}))
}

func Test_ProofFor_CorrectAnswer(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 300, []string{"mercury", "venus", "earth", "mars", "jupiter"})

	service := NewService(store, zap.NewNop())
	proof, err := service.ProofFor(context.Background(), "quiz-2", "earth")
	require.NoError(t, err)

	require.True(t, proof.IsValid)
	require.Equal(t, leafcodec.HashAnswer("earth"), proof.Leaf)
	require.NotEmpty(t, proof.Siblings)

	// The returned material verifies independently
	require.True(t, service.Verify(proof.Leaf, proof.Siblings, proof.Root))
}

func Test_ProofFor_CanonicalizesClaimedAnswer(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 301, []string{"Paris", "Berlin", "Madrid"})

	service := NewService(store, zap.NewNop())

	// Case and whitespace differences hash to the same leaf
	proof, err := service.ProofFor(context.Background(), "quiz-0", "  pArIs ")
	require.NoError(t, err)
	require.True(t, proof.IsValid)
}

func Test_ProofFor_WrongAnswer(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 302, []string{"alpha", "beta", "gamma"})

	service := NewService(store, zap.NewNop())
	proof, err := service.ProofFor(context.Background(), "quiz-1", "delta")
	require.NoError(t, err)

	// The proof still covers the committed leaf and still verifies; only the
	// claimed answer is judged wrong
	require.False(t, proof.IsValid)
	require.Equal(t, leafcodec.HashAnswer("beta"), proof.Leaf)
	require.True(t, service.Verify(proof.Leaf, proof.Siblings, proof.Root))
}

func Test_ProofFor_UnknownQuiz(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 303, []string{"alpha"})

	service := NewService(store, zap.NewNop())
	_, err := service.ProofFor(context.Background(), "quiz-404", "anything")
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func Test_ProofFor_BatchWithoutRoot(t *testing.T) {
	store := memory.NewMemoryStore()
	require.NoError(t, store.SaveBatch(&types.Batch{
		ID:     304,
		Status: types.BatchStatusGenerating,
	}))
	require.NoError(t, store.SaveLeaf(&types.Leaf{
		BatchID:  304,
		QuizID:   "quiz-pending",
		LeafHash: leafcodec.HashAnswer("pending"),
	}))

	service := NewService(store, zap.NewNop())
	_, err := service.ProofFor(context.Background(), "quiz-pending", "pending")
	require.ErrorIs(t, err, types.ErrBatchNotReady)
}

func Test_ProofFor_CorruptedLeaves(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 305, []string{"alpha", "beta", "gamma"})

	// Tamper with a committed leaf
	require.NoError(t, store.SaveLeaf(&types.Leaf{
		BatchID:  305,
		QuizID:   "quiz-0",
		LeafHash: leafcodec.HashAnswer("tampered"),
	}))

	service := NewService(store, zap.NewNop())
	_, err := service.ProofFor(context.Background(), "quiz-1", "beta")
	require.ErrorIs(t, err, types.ErrRootMismatch)
}

func Test_ProofFor_SingleLeafBatch(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 306, []string{"lonely"})

	service := NewService(store, zap.NewNop())
	proof, err := service.ProofFor(context.Background(), "quiz-0", "lonely")
	require.NoError(t, err)

	// A single-leaf tree has an empty proof and the leaf is the root
	require.True(t, proof.IsValid)
	require.Empty(t, proof.Siblings)
	require.Equal(t, proof.Leaf, proof.Root)
}

func Test_Verify_RejectsTamperedMaterial(t *testing.T) {
	store := memory.NewMemoryStore()
	seedBatch(t, store, 307, []string{"one", "two", "three", "four"})

	service := NewService(store, zap.NewNop())
	proof, err := service.ProofFor(context.Background(), "quiz-0", "one")
	require.NoError(t, err)
	require.True(t, service.Verify(proof.Leaf, proof.Siblings, proof.Root))

	wrongRoot := common.Hash{}
	require.False(t, service.Verify(proof.Leaf, proof.Siblings, wrongRoot))

	if len(proof.Siblings) > 0 {
		tampered := make([]common.Hash, len(proof.Siblings))
		copy(tampered, proof.Siblings)
		tampered[0][0] ^= 0xff
		require.False(t, service.Verify(proof.Leaf, tampered, proof.Root))
	}
}
