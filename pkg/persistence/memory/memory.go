package memory

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// MemoryStore is an in-memory implementation of IQuizStore.
// This implementation is intended for TESTING and local devnets ONLY.
//
// All data is stored in memory and will be lost when the process exits.
// Thread-safe using sync.RWMutex for concurrent access.
// Deep copies data to prevent external mutation.
type MemoryStore struct {
	mu sync.RWMutex

	// batches: batch ID -> Batch
	batches map[int64]*types.Batch

	// leaves: quiz ID -> Leaf
	leaves map[string]*types.Leaf

	// leavesByBatch: batch ID -> quiz IDs, in insertion order
	leavesByBatch map[int64][]string

	// questions: quiz ID -> Question
	questions map[string]*types.Question

	closed bool
}

var _ persistence.IQuizStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory quiz store.
// Prints a loud warning since batches stored here do not survive a restart.
func NewMemoryStore() *MemoryStore {
	fmt.Println("⚠️  WARNING: Using in-memory persistence - ALL DATA WILL BE LOST ON RESTART")
	fmt.Println("⚠️  Set QUIZ_PERSISTENCE_TYPE=badger for production")

	return &MemoryStore{
		batches:       make(map[int64]*types.Batch),
		leaves:        make(map[string]*types.Leaf),
		leavesByBatch: make(map[int64][]string),
		questions:     make(map[string]*types.Question),
	}
}

// SaveBatch persists a batch, overwriting any existing record.
func (m *MemoryStore) SaveBatch(batch *types.Batch) error {
	if batch == nil {
		return fmt.Errorf("cannot save nil Batch")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrStoreClosed
	}

	m.batches[batch.ID] = deepCopyBatch(batch)
	return nil
}

// LoadBatch retrieves a batch by ID. Returns nil if absent.
func (m *MemoryStore) LoadBatch(batchID int64) (*types.Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrStoreClosed
	}

	batch, exists := m.batches[batchID]
	if !exists {
		return nil, nil // Not found is not an error
	}
	return deepCopyBatch(batch), nil
}

// ListBatches returns all batches sorted by ID.
func (m *MemoryStore) ListBatches() ([]*types.Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrStoreClosed
	}

	batches := make([]*types.Batch, 0, len(m.batches))
	for _, batch := range m.batches {
		batches = append(batches, deepCopyBatch(batch))
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].ID < batches[j].ID
	})
	return batches, nil
}

// SaveLeaf persists a leaf keyed by its quiz ID.
func (m *MemoryStore) SaveLeaf(leaf *types.Leaf) error {
	if leaf == nil {
		return fmt.Errorf("cannot save nil Leaf")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrStoreClosed
	}

	if _, exists := m.leaves[leaf.QuizID]; !exists {
		m.leavesByBatch[leaf.BatchID] = append(m.leavesByBatch[leaf.BatchID], leaf.QuizID)
	}
	copied := *leaf
	m.leaves[leaf.QuizID] = &copied
	return nil
}

// ListLeavesByBatch returns a batch's leaves in canonical hash order.
func (m *MemoryStore) ListLeavesByBatch(batchID int64) ([]*types.Leaf, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrStoreClosed
	}

	quizIDs := m.leavesByBatch[batchID]
	leaves := make([]*types.Leaf, 0, len(quizIDs))
	for _, quizID := range quizIDs {
		copied := *m.leaves[quizID]
		leaves = append(leaves, &copied)
	}
	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].LeafHash[:], leaves[j].LeafHash[:]) < 0
	})
	return leaves, nil
}

// GetLeafByQuiz retrieves the leaf committed for a quiz. Returns nil if absent.
func (m *MemoryStore) GetLeafByQuiz(quizID string) (*types.Leaf, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrStoreClosed
	}

	leaf, exists := m.leaves[quizID]
	if !exists {
		return nil, nil
	}
	copied := *leaf
	return &copied, nil
}

// SaveQuestion persists a question keyed by its quiz ID.
func (m *MemoryStore) SaveQuestion(question *types.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil Question")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrStoreClosed
	}

	m.questions[question.QuizID] = deepCopyQuestion(question)
	return nil
}

// LoadQuestion retrieves a question by quiz ID. Returns nil if absent.
func (m *MemoryStore) LoadQuestion(quizID string) (*types.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, persistence.ErrStoreClosed
	}

	question, exists := m.questions[quizID]
	if !exists {
		return nil, nil
	}
	return deepCopyQuestion(question), nil
}

// Close marks the store closed. Idempotent.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck reports whether the store is usable.
func (m *MemoryStore) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return persistence.ErrStoreClosed
	}
	return nil
}

func deepCopyBatch(batch *types.Batch) *types.Batch {
	copied := *batch
	copied.TxHashes = append([]string(nil), batch.TxHashes...)
	return &copied
}

func deepCopyQuestion(question *types.Question) *types.Question {
	copied := *question
	copied.Options = append([]string(nil), question.Options...)
	return &copied
}
