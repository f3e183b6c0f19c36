package persistence

import (
	"errors"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// ErrStoreClosed is returned by all operations after Close.
var ErrStoreClosed = errors.New("persistence layer is closed")

// IQuizStore defines the document store for batches, leaves and questions.
// All implementations must be thread-safe.
//
// Write ownership follows the batch lifecycle: the orchestrator is the only
// writer until a batch reaches ready, then the commitment client is the only
// writer until the batch reaches a terminal committed state. The store does
// not enforce this; callers must.
//
// Load* methods return (nil, nil) when the record does not exist; errors are
// reserved for storage failures.
type IQuizStore interface {
	// Batch Records

	// SaveBatch persists a batch keyed by its ID, overwriting any existing
	// record.
	SaveBatch(batch *types.Batch) error

	// LoadBatch retrieves a batch by ID.
	LoadBatch(batchID int64) (*types.Batch, error)

	// ListBatches returns all batches sorted by ID (ascending).
	ListBatches() ([]*types.Batch, error)

	// Leaf Records

	// SaveLeaf persists a leaf keyed by its quiz ID.
	SaveLeaf(leaf *types.Leaf) error

	// ListLeavesByBatch returns a batch's leaves sorted by leaf hash
	// (canonical merkle order). Empty slice if the batch has no leaves.
	ListLeavesByBatch(batchID int64) ([]*types.Leaf, error)

	// GetLeafByQuiz retrieves the leaf committed for a quiz.
	GetLeafByQuiz(quizID string) (*types.Leaf, error)

	// Question Records

	// SaveQuestion persists a question keyed by its quiz ID.
	SaveQuestion(question *types.Question) error

	// LoadQuestion retrieves a question by quiz ID.
	LoadQuestion(quizID string) (*types.Question, error)

	// Lifecycle Management

	// Close cleanly shuts down the store. Idempotent; all other operations
	// return ErrStoreClosed afterwards.
	Close() error

	// HealthCheck verifies the store is operational. Called during startup
	// to fail fast.
	HealthCheck() error
}
