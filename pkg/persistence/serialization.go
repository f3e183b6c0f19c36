package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// MarshalBatch serializes a Batch to JSON bytes.
// common.Hash fields marshal as 0x-prefixed hex strings.
func MarshalBatch(batch *types.Batch) ([]byte, error) {
	if batch == nil {
		return nil, fmt.Errorf("cannot marshal nil Batch")
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Batch to JSON: %w", err)
	}
	return data, nil
}

// UnmarshalBatch deserializes a Batch from JSON bytes.
func UnmarshalBatch(data []byte) (*types.Batch, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var batch types.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to Batch: %w", err)
	}
	return &batch, nil
}

// MarshalLeaf serializes a Leaf to JSON bytes.
func MarshalLeaf(leaf *types.Leaf) ([]byte, error) {
	if leaf == nil {
		return nil, fmt.Errorf("cannot marshal nil Leaf")
	}

	data, err := json.Marshal(leaf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Leaf to JSON: %w", err)
	}
	return data, nil
}

// UnmarshalLeaf deserializes a Leaf from JSON bytes.
func UnmarshalLeaf(data []byte) (*types.Leaf, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var leaf types.Leaf
	if err := json.Unmarshal(data, &leaf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to Leaf: %w", err)
	}
	return &leaf, nil
}

// MarshalQuestion serializes a Question to JSON bytes.
func MarshalQuestion(question *types.Question) ([]byte, error) {
	if question == nil {
		return nil, fmt.Errorf("cannot marshal nil Question")
	}

	data, err := json.Marshal(question)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Question to JSON: %w", err)
	}
	return data, nil
}

// UnmarshalQuestion deserializes a Question from JSON bytes.
func UnmarshalQuestion(data []byte) (*types.Question, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var question types.Question
	if err := json.Unmarshal(data, &question); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to Question: %w", err)
	}
	return &question, nil
}
