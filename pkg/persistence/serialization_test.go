package persistence

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/quizchain/quizchain-go/pkg/types"
)

func TestBatchSerializationRoundTrip(t *testing.T) {
	batch := &types.Batch{
		ID:             1717171717,
		TotalQuestions: 50,
		SubBatchSize:   10,
		SubBatchDelay:  2 * time.Second,
		Status:         types.BatchStatusReady,
		Progress:       100,
		MerkleRoot:     common.HexToHash("0xdeadbeef00000000000000000000000000000000000000000000000000000001"),
		TxHashes:       []string{"0xaaa", "0xbbb"},
		CreatedAt:      1717171700,
		ReadyAt:        1717171800,
	}

	data, err := MarshalBatch(batch)
	require.NoError(t, err)

	decoded, err := UnmarshalBatch(data)
	require.NoError(t, err)
	require.Equal(t, batch, decoded)
}

func TestLeafSerializationRoundTrip(t *testing.T) {
	leaf := &types.Leaf{
		BatchID:  1717171717,
		QuizID:   "b4b1c2f0-1111-2222-3333-444455556666",
		LeafHash: common.HexToHash("0xabadcafe00000000000000000000000000000000000000000000000000000002"),
	}

	data, err := MarshalLeaf(leaf)
	require.NoError(t, err)

	decoded, err := UnmarshalLeaf(data)
	require.NoError(t, err)
	require.Equal(t, leaf, decoded)
}

func TestQuestionSerializationRoundTrip(t *testing.T) {
	question := &types.Question{
		QuizID:     "b4b1c2f0-1111-2222-3333-444455556666",
		BatchID:    1717171717,
		Text:       "What is the capital of France?",
		Options:    []string{"Paris", "London", "Berlin", "Madrid"},
		Answer:     "Paris",
		Difficulty: 1,
		Category:   "geography",
		CreatedAt:  1717171700,
	}

	data, err := MarshalQuestion(question)
	require.NoError(t, err)

	decoded, err := UnmarshalQuestion(data)
	require.NoError(t, err)
	require.Equal(t, question, decoded)
}

func TestMarshalNilRecords(t *testing.T) {
	_, err := MarshalBatch(nil)
	require.Error(t, err)
	_, err = MarshalLeaf(nil)
	require.Error(t, err)
	_, err = MarshalQuestion(nil)
	require.Error(t, err)
}

func TestUnmarshalEmptyData(t *testing.T) {
	_, err := UnmarshalBatch(nil)
	require.Error(t, err)
	_, err = UnmarshalLeaf([]byte{})
	require.Error(t, err)
	_, err = UnmarshalQuestion(nil)
	require.Error(t, err)
}
