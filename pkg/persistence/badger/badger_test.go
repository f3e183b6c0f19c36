package badger

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBatchRoundTrip(t *testing.T) {
	store := newTestStore(t)

	batch := &types.Batch{
		ID:             1717171717,
		TotalQuestions: 5,
		SubBatchSize:   2,
		Status:         types.BatchStatusReady,
		Progress:       100,
		MerkleRoot:     common.HexToHash("0x01"),
		TxHashes:       []string{"0xaaa"},
	}
	require.NoError(t, store.SaveBatch(batch))

	loaded, err := store.LoadBatch(batch.ID)
	require.NoError(t, err)
	require.Equal(t, batch, loaded)

	missing, err := store.LoadBatch(1)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListBatchesKeyOrder(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, store.SaveBatch(&types.Batch{ID: id, Status: types.BatchStatusGenerating}))
	}

	batches, err := store.ListBatches()
	require.NoError(t, err)
	require.Len(t, batches, 3)
	require.Equal(t, int64(10), batches[0].ID)
	require.Equal(t, int64(20), batches[1].ID)
	require.Equal(t, int64(30), batches[2].ID)
}

func TestLeafRoundTripAndBatchScan(t *testing.T) {
	store := newTestStore(t)

	leaves := []*types.Leaf{
		{BatchID: 100, QuizID: "q2", LeafHash: common.HexToHash("0x02")},
		{BatchID: 100, QuizID: "q1", LeafHash: common.HexToHash("0x01")},
		{BatchID: 200, QuizID: "q9", LeafHash: common.HexToHash("0x09")},
	}
	for _, leaf := range leaves {
		require.NoError(t, store.SaveLeaf(leaf))
	}

	byQuiz, err := store.GetLeafByQuiz("q1")
	require.NoError(t, err)
	require.Equal(t, leaves[1], byQuiz)

	listed, err := store.ListLeavesByBatch(100)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "q1", listed[0].QuizID)
	require.Equal(t, "q2", listed[1].QuizID)

	empty, err := store.ListLeavesByBatch(999)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestQuestionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	question := &types.Question{
		QuizID:  "q1",
		BatchID: 100,
		Text:    "What is the capital of France?",
		Options: []string{"Paris", "London"},
		Answer:  "Paris",
	}
	require.NoError(t, store.SaveQuestion(question))

	loaded, err := store.LoadQuestion("q1")
	require.NoError(t, err)
	require.Equal(t, question, loaded)
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBadgerStore(dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.SaveBatch(&types.Batch{ID: 42, Status: types.BatchStatusReady}))
	require.NoError(t, store.Close())

	reopened, err := NewBadgerStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadBatch(42)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, types.BatchStatusReady, loaded.Status)
}

func TestClosedStore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close must be idempotent")

	require.ErrorIs(t, store.SaveBatch(&types.Batch{ID: 1}), persistence.ErrStoreClosed)
	_, err := store.LoadBatch(1)
	require.ErrorIs(t, err, persistence.ErrStoreClosed)
	require.ErrorIs(t, store.HealthCheck(), persistence.ErrStoreClosed)
}

func TestHealthCheck(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.HealthCheck())
}
