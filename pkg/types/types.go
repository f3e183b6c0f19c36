package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// BatchStatus tracks a batch through its lifecycle. Statuses only move
// forward: generating -> ready -> one of the committed_* states.
type BatchStatus string

const (
	BatchStatusGenerating BatchStatus = "generating"
	BatchStatusReady      BatchStatus = "ready"

	// BatchStatusCommittedOffchain marks a batch whose root could not be
	// submitted because the ledger was unreachable. Terminal and explicit,
	// never a silent fallback.
	BatchStatusCommittedOffchain BatchStatus = "committed_offchain"

	// BatchStatusCommittedOnchainRootOnly marks a batch whose root was
	// submitted in a single transaction without leaf data.
	BatchStatusCommittedOnchainRootOnly BatchStatus = "committed_onchain_root_only"

	// BatchStatusCommittedOnchain marks a batch whose root and all leaf
	// chunks were confirmed on the ledger.
	BatchStatusCommittedOnchain BatchStatus = "committed_onchain"
)

// IsCommitted returns true once the batch reached any terminal committed state.
func (s BatchStatus) IsCommitted() bool {
	switch s {
	case BatchStatusCommittedOffchain, BatchStatusCommittedOnchainRootOnly, BatchStatusCommittedOnchain:
		return true
	}
	return false
}

// Batch is a frozen set of leaves generated together and committed together.
// The batch ID doubles as the on-chain batch identifier.
type Batch struct {
	// ID is unix seconds at creation, bumped until unique.
	ID int64 `json:"id"`

	TotalQuestions int           `json:"totalQuestions"`
	SubBatchSize   int           `json:"subBatchSize"`
	SubBatchDelay  time.Duration `json:"subBatchDelay"`

	Status BatchStatus `json:"status"`

	// Progress is 0-100 and only increases while Status is generating.
	Progress int `json:"progress"`

	// MerkleRoot is set exactly once, at the transition into ready.
	MerkleRoot common.Hash `json:"merkleRoot"`

	// TxHashes is append-only and records every confirmed commitment
	// transaction, in submission order. Its length is the resume point for
	// an interrupted chunked commit.
	TxHashes []string `json:"txHashes"`

	CreatedAt   int64 `json:"createdAt"`
	ReadyAt     int64 `json:"readyAt,omitempty"`
	CommittedAt int64 `json:"committedAt,omitempty"`
}

// Leaf binds a quiz to its committed answer hash. Immutable once the owning
// batch reaches ready.
type Leaf struct {
	BatchID  int64       `json:"batchId"`
	QuizID   string      `json:"quizId"`
	LeafHash common.Hash `json:"leafHash"`
}

// Question is the server-side record of a generated quiz question. The
// plaintext answer never leaves the server; only its hash is committed.
type Question struct {
	QuizID     string   `json:"quizId"`
	BatchID    int64    `json:"batchId"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty uint8    `json:"difficulty"`
	Category   string   `json:"category"`
	CreatedAt  int64    `json:"createdAt"`
}

// GeneratedQuestion is the content generator's output before persistence.
type GeneratedQuestion struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty uint8    `json:"difficulty"`
	Category   string   `json:"category"`
}

// Proof is an inclusion proof for one leaf against a batch root. Siblings are
// ordered leaf-to-root; sorted-pair hashing makes position flags unnecessary.
type Proof struct {
	Leaf     common.Hash   `json:"leaf"`
	Siblings []common.Hash `json:"siblings"`
	Root     common.Hash   `json:"root"`

	// IsValid reports whether the claimed answer matches the committed leaf
	// and the proof verifies against the root. Derived, never stored.
	IsValid bool `json:"isValid"`
}

// CommitResult summarizes the outcome of a commit attempt.
type CommitResult struct {
	BatchID         int64       `json:"batchId"`
	Status          BatchStatus `json:"status"`
	TxHashes        []string    `json:"txHashes"`
	ChunksSubmitted int         `json:"chunksSubmitted"`
}

// LeafInfo mirrors the ledger's per-leaf door state. It is read through on
// every query; the ledger is the single source of truth for solve status.
type LeafInfo struct {
	LeafHash   common.Hash    `json:"leafHash"`
	IsSolved   bool           `json:"isSolved"`
	Solver     common.Address `json:"solver"`
	SolveTime  int64          `json:"solveTime"`
	QuestionID uint64         `json:"questionId"`
}
