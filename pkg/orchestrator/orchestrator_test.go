package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/generator"
	"github.com/quizchain/quizchain-go/pkg/leafcodec"
	"github.com/quizchain/quizchain-go/pkg/merkle"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/persistence/memory"
	"github.com/quizchain/quizchain-go/pkg/types"
)

func testBatchConfig() *config.BatchConfig {
	return &config.BatchConfig{
		TotalQuestions:        5,
		SubBatchSize:          2,
		SubBatchDelay:         time.Millisecond,
		GenerationConcurrency: 2,
		RoundRetryBudget:      1,
	}
}

// recordingStore wraps a store and records every batch save, so tests can
// assert on intermediate states that the final record no longer shows.
type recordingStore struct {
	persistence.IQuizStore
	saves []types.Batch
}

func (rs *recordingStore) SaveBatch(batch *types.Batch) error {
	rs.saves = append(rs.saves, *batch)
	return rs.IQuizStore.SaveBatch(batch)
}

func Test_StartBatch_GeneratesInRounds(t *testing.T) {
	store := &recordingStore{IQuizStore: memory.NewMemoryStore()}
	o := NewOrchestrator(store, generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	batchID, err := o.StartBatch(context.Background(), 5, 2, time.Millisecond)
	require.NoError(t, err)

	batch, err := o.BatchStatus(batchID)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusReady, batch.Status)
	require.Equal(t, 100, batch.Progress)
	require.NotZero(t, batch.MerkleRoot)
	require.NotZero(t, batch.ReadyAt)

	leaves, err := store.ListLeavesByBatch(batchID)
	require.NoError(t, err)
	require.Len(t, leaves, 5)

	// Root must match a rebuild over the persisted leaves
	leafHashes := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		leafHashes[i] = leaf.LeafHash
	}
	tree, err := merkle.NewTree(leafHashes)
	require.NoError(t, err)
	require.Equal(t, [32]byte(batch.MerkleRoot), tree.Root)

	// Progress only increases, stays below 100 while generating, and 100
	// arrives in the same save as ready
	prev := 0
	for _, saved := range store.saves {
		require.GreaterOrEqual(t, saved.Progress, prev)
		prev = saved.Progress
		if saved.Status == types.BatchStatusGenerating {
			require.Less(t, saved.Progress, 100)
		}
	}
	final := store.saves[len(store.saves)-1]
	require.Equal(t, types.BatchStatusReady, final.Status)
	require.Equal(t, 100, final.Progress)
}

func Test_StartBatch_ProgressStaysBelow100WhileGenerating(t *testing.T) {
	store := &recordingStore{IQuizStore: memory.NewMemoryStore()}
	o := NewOrchestrator(store, generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	// 200 of 201 rounds to 100; the intermediate save must still report 99
	batchID, err := o.StartBatch(context.Background(), 201, 100, 0)
	require.NoError(t, err)

	sawClamped := false
	for _, saved := range store.saves {
		if saved.Status == types.BatchStatusGenerating {
			require.Less(t, saved.Progress, 100)
			if saved.Progress == 99 {
				sawClamped = true
			}
		}
	}
	require.True(t, sawClamped)

	batch, err := o.BatchStatus(batchID)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusReady, batch.Status)
	require.Equal(t, 100, batch.Progress)
}

func Test_StartBatch_LeavesAreAnswerHashes(t *testing.T) {
	store := memory.NewMemoryStore()
	o := NewOrchestrator(store, generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	batchID, err := o.StartBatch(context.Background(), 3, 3, 0)
	require.NoError(t, err)

	leaves, err := store.ListLeavesByBatch(batchID)
	require.NoError(t, err)
	require.Len(t, leaves, 3)

	for _, leaf := range leaves {
		question, err := store.LoadQuestion(leaf.QuizID)
		require.NoError(t, err)
		require.NotNil(t, question)
		require.Equal(t, batchID, question.BatchID)
		require.Equal(t, leafcodec.HashAnswer(question.Answer), leaf.LeafHash)
	}
}

func Test_StartBatch_SkipsFailedQuestions(t *testing.T) {
	fake := generator.NewFakeGenerator()
	fake.FailAt[1] = true
	fake.FailAt[3] = true

	store := memory.NewMemoryStore()
	o := NewOrchestrator(store, fake, testBatchConfig(), zap.NewNop())

	batchID, err := o.StartBatch(context.Background(), 5, 2, time.Millisecond)
	require.NoError(t, err)

	batch, err := o.BatchStatus(batchID)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusReady, batch.Status)

	leaves, err := store.ListLeavesByBatch(batchID)
	require.NoError(t, err)
	require.Len(t, leaves, 5)

	// The two scripted failures cost extra generation calls
	require.Equal(t, 7, fake.Calls())
}

func Test_StartBatch_AbandonsAfterRetryBudget(t *testing.T) {
	fake := generator.NewFakeGenerator()
	fake.FailAll = true

	store := memory.NewMemoryStore()
	o := NewOrchestrator(store, fake, testBatchConfig(), zap.NewNop())

	batchID, err := o.StartBatch(context.Background(), 5, 2, time.Millisecond)
	require.ErrorIs(t, err, ErrBatchGeneration)

	// The batch is left in generating for operator inspection, not deleted
	batch, err := o.BatchStatus(batchID)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusGenerating, batch.Status)
	require.Zero(t, batch.MerkleRoot)
}

func Test_StartBatch_CancellableBetweenRounds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	store := memory.NewMemoryStore()
	o := NewOrchestrator(store, generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	batchID, err := o.StartBatch(ctx, 4, 2, time.Hour)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	batch, loadErr := o.BatchStatus(batchID)
	require.NoError(t, loadErr)
	require.Equal(t, types.BatchStatusGenerating, batch.Status)
}

func Test_StartBatch_RejectsInvalidParams(t *testing.T) {
	o := NewOrchestrator(memory.NewMemoryStore(), generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	_, err := o.StartBatch(context.Background(), 0, 2, 0)
	require.Error(t, err)

	_, err = o.StartBatch(context.Background(), 5, 0, 0)
	require.Error(t, err)
}

func Test_StartBatch_UniqueIDs(t *testing.T) {
	store := memory.NewMemoryStore()
	o := NewOrchestrator(store, generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	first, err := o.StartBatch(context.Background(), 1, 1, 0)
	require.NoError(t, err)
	second, err := o.StartBatch(context.Background(), 1, 1, 0)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func Test_BatchStatus_NotFound(t *testing.T) {
	o := NewOrchestrator(memory.NewMemoryStore(), generator.NewFakeGenerator(), testBatchConfig(), zap.NewNop())

	_, err := o.BatchStatus(42)
	require.ErrorIs(t, err, types.ErrBatchNotFound)
}
