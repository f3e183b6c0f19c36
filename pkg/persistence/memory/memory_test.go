package memory

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

func testBatch(id int64) *types.Batch {
	return &types.Batch{
		ID:             id,
		TotalQuestions: 5,
		SubBatchSize:   2,
		Status:         types.BatchStatusGenerating,
		CreatedAt:      id,
	}
}

func TestBatchSaveLoad(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	batch := testBatch(100)
	require.NoError(t, store.SaveBatch(batch))

	loaded, err := store.LoadBatch(100)
	require.NoError(t, err)
	require.Equal(t, batch, loaded)

	// Unknown ID is not an error
	missing, err := store.LoadBatch(999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSaveBatchOverwrites(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	batch := testBatch(100)
	require.NoError(t, store.SaveBatch(batch))

	batch.Status = types.BatchStatusReady
	batch.Progress = 100
	require.NoError(t, store.SaveBatch(batch))

	loaded, err := store.LoadBatch(100)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusReady, loaded.Status)
	require.Equal(t, 100, loaded.Progress)
}

func TestLoadBatchReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.SaveBatch(testBatch(100)))

	loaded, err := store.LoadBatch(100)
	require.NoError(t, err)
	loaded.Status = types.BatchStatusCommittedOnchain
	loaded.TxHashes = append(loaded.TxHashes, "0xmutated")

	reloaded, err := store.LoadBatch(100)
	require.NoError(t, err)
	require.Equal(t, types.BatchStatusGenerating, reloaded.Status)
	require.Empty(t, reloaded.TxHashes)
}

func TestListBatchesSorted(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	for _, id := range []int64{300, 100, 200} {
		require.NoError(t, store.SaveBatch(testBatch(id)))
	}

	batches, err := store.ListBatches()
	require.NoError(t, err)
	require.Len(t, batches, 3)
	require.Equal(t, int64(100), batches[0].ID)
	require.Equal(t, int64(200), batches[1].ID)
	require.Equal(t, int64(300), batches[2].ID)
}

func TestLeavesByBatchCanonicalOrder(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	// Saved out of hash order on purpose
	leaves := []*types.Leaf{
		{BatchID: 100, QuizID: "q3", LeafHash: common.HexToHash("0x03")},
		{BatchID: 100, QuizID: "q1", LeafHash: common.HexToHash("0x01")},
		{BatchID: 100, QuizID: "q2", LeafHash: common.HexToHash("0x02")},
		{BatchID: 200, QuizID: "other", LeafHash: common.HexToHash("0xff")},
	}
	for _, leaf := range leaves {
		require.NoError(t, store.SaveLeaf(leaf))
	}

	listed, err := store.ListLeavesByBatch(100)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "q1", listed[0].QuizID)
	require.Equal(t, "q2", listed[1].QuizID)
	require.Equal(t, "q3", listed[2].QuizID)

	empty, err := store.ListLeavesByBatch(999)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestGetLeafByQuiz(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	leaf := &types.Leaf{BatchID: 100, QuizID: "q1", LeafHash: common.HexToHash("0x01")}
	require.NoError(t, store.SaveLeaf(leaf))

	loaded, err := store.GetLeafByQuiz("q1")
	require.NoError(t, err)
	require.Equal(t, leaf, loaded)

	missing, err := store.GetLeafByQuiz("unknown")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestQuestionSaveLoad(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

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

	// Returned copy must not alias stored options
	loaded.Options[0] = "mutated"
	reloaded, err := store.LoadQuestion("q1")
	require.NoError(t, err)
	require.Equal(t, "Paris", reloaded.Options[0])
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close must be idempotent")

	require.ErrorIs(t, store.SaveBatch(testBatch(1)), persistence.ErrStoreClosed)
	_, err := store.LoadBatch(1)
	require.ErrorIs(t, err, persistence.ErrStoreClosed)
	_, err = store.ListBatches()
	require.ErrorIs(t, err, persistence.ErrStoreClosed)
	require.ErrorIs(t, store.HealthCheck(), persistence.ErrStoreClosed)
}

func TestSaveNilRecords(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	require.Error(t, store.SaveBatch(nil))
	require.Error(t, store.SaveLeaf(nil))
	require.Error(t, store.SaveQuestion(nil))
}
