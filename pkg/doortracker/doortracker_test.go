package doortracker

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/contractCaller"
	"github.com/quizchain/quizchain-go/pkg/leafcodec"
	"github.com/quizchain/quizchain-go/pkg/persistence/memory"
	"github.com/quizchain/quizchain-go/pkg/types"
)

var (
	testAdmin  = common.HexToAddress("0x00000000000000000000000000000000000000AD")
	testSolver = common.HexToAddress("0x0000000000000000000000000000000000000501")
)

func newTestTracker(t *testing.T) (*Tracker, *contractCaller.FakeLedgerCaller, *memory.MemoryStore) {
	t.Helper()
	ledger := contractCaller.NewFakeLedgerCaller()
	store := memory.NewMemoryStore()
	return NewTracker(ledger, store, testAdmin, zap.NewNop()), ledger, store
}

func Test_IsSolved_ReadsThrough(t *testing.T) {
	tracker, ledger, _ := newTestTracker(t)
	ctx := context.Background()
	leaf := leafcodec.HashAnswer("open sesame")

	solved, err := tracker.IsSolved(ctx, leaf)
	require.NoError(t, err)
	require.False(t, solved)

	ledger.MarkSolved(leaf, testSolver, 1700000000)

	// No caching: the new ledger state is visible immediately
	solved, err = tracker.IsSolved(ctx, leaf)
	require.NoError(t, err)
	require.True(t, solved)
}

func Test_LeafInfo(t *testing.T) {
	tracker, ledger, _ := newTestTracker(t)
	ctx := context.Background()
	leaf := leafcodec.HashAnswer("forty-two")

	require.NoError(t, tracker.RegisterLeaf(ctx, 7, leaf))
	ledger.MarkSolved(leaf, testSolver, 1700000042)

	info, err := tracker.LeafInfo(ctx, leaf)
	require.NoError(t, err)
	require.True(t, info.IsSolved)
	require.Equal(t, testSolver, info.Solver)
	require.Equal(t, int64(1700000042), info.SolveTime)
	require.Equal(t, uint64(7), info.QuestionID)
}

func Test_RegisterLeaf_Idempotent(t *testing.T) {
	tracker, ledger, _ := newTestTracker(t)
	ctx := context.Background()
	leaf := leafcodec.HashAnswer("register me")

	require.NoError(t, tracker.RegisterLeaf(ctx, 3, leaf))
	require.Equal(t, 1, ledger.Registrations())

	// Re-registering is a no-op, even with a different question id
	require.NoError(t, tracker.RegisterLeaf(ctx, 99, leaf))
	require.Equal(t, 1, ledger.Registrations())

	info, err := tracker.LeafInfo(ctx, leaf)
	require.NoError(t, err)
	require.Equal(t, uint64(3), info.QuestionID)
}

func Test_CreateQuestion(t *testing.T) {
	tracker, _, store := newTestTracker(t)
	ctx := context.Background()

	leaf := leafcodec.HashAnswer("the capital of france")
	require.NoError(t, store.SaveLeaf(&types.Leaf{
		BatchID:  300,
		QuizID:   "quiz-300-0",
		LeafHash: leaf,
	}))

	questionID, err := tracker.CreateQuestion(ctx, "quiz-300-0", "a European capital", 2, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), questionID)

	info, err := tracker.LeafInfo(ctx, leaf)
	require.NoError(t, err)
	require.Equal(t, questionID, info.QuestionID)

	// A leaf with a question keeps it; no second transaction is sent
	again, err := tracker.CreateQuestion(ctx, "quiz-300-0", "a European capital", 2, 0)
	require.NoError(t, err)
	require.Equal(t, questionID, again)
}

func Test_CreateQuestion_UnknownQuiz(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	_, err := tracker.CreateQuestion(context.Background(), "no-such-quiz", "", 1, 0)
	require.Error(t, err)
}

func Test_ResetLeaf_Authorization(t *testing.T) {
	tracker, ledger, _ := newTestTracker(t)
	ctx := context.Background()
	leaf := leafcodec.HashAnswer("reset me")

	require.NoError(t, tracker.RegisterLeaf(ctx, 5, leaf))
	ledger.MarkSolved(leaf, testSolver, 1700000100)

	t.Run("non-admin is rejected", func(t *testing.T) {
		err := tracker.ResetLeaf(ctx, testSolver, leaf)
		require.ErrorIs(t, err, ErrUnauthorized)

		solved, err := tracker.IsSolved(ctx, leaf)
		require.NoError(t, err)
		require.True(t, solved)
	})

	t.Run("admin resets the door", func(t *testing.T) {
		require.NoError(t, tracker.ResetLeaf(ctx, testAdmin, leaf))

		solved, err := tracker.IsSolved(ctx, leaf)
		require.NoError(t, err)
		require.False(t, solved)

		// Registration survives the reset
		info, err := tracker.LeafInfo(ctx, leaf)
		require.NoError(t, err)
		require.Equal(t, uint64(5), info.QuestionID)
	})
}

func Test_ResetLeaf_NoConfiguredAdmin(t *testing.T) {
	ledger := contractCaller.NewFakeLedgerCaller()
	tracker := NewTracker(ledger, memory.NewMemoryStore(), common.Address{}, zap.NewNop())

	err := tracker.ResetLeaf(context.Background(), common.Address{}, leafcodec.HashAnswer("x"))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func Test_AvailableQuizzes(t *testing.T) {
	tracker, ledger, store := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBatch(&types.Batch{ID: 200, Status: types.BatchStatusReady}))
	answers := []string{"alpha", "beta", "gamma"}
	for i, answer := range answers {
		require.NoError(t, store.SaveLeaf(&types.Leaf{
			BatchID:  200,
			QuizID:   answers[i],
			LeafHash: leafcodec.HashAnswer(answer),
		}))
	}

	available, err := tracker.AvailableQuizzes(ctx, 200)
	require.NoError(t, err)
	require.ElementsMatch(t, answers, available)

	ledger.MarkSolved(leafcodec.HashAnswer("beta"), testSolver, 1700000200)

	available, err = tracker.AvailableQuizzes(ctx, 200)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"alpha", "gamma"}, available)
}

func Test_AvailableQuizzes_BatchNotFound(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	_, err := tracker.AvailableQuizzes(context.Background(), 999)
	require.ErrorIs(t, err, types.ErrBatchNotFound)
}

func Test_LedgerUnavailableSurfaces(t *testing.T) {
	tracker, ledger, _ := newTestTracker(t)
	ledger.Unavailable = true

	_, err := tracker.IsSolved(context.Background(), leafcodec.HashAnswer("x"))
	require.ErrorIs(t, err, types.ErrLedgerUnavailable)
}
