package generator

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// questionBank is the built-in content used when no external content service
// is configured. Deterministic rotation keeps local runs reproducible.
var questionBank = []types.GeneratedQuestion{
	{
		Question:   "Which hash function does Ethereum use for its addresses?",
		Options:    []string{"SHA-256", "Keccak-256", "BLAKE2b", "RIPEMD-160"},
		Answer:     "Keccak-256",
		Difficulty: 1,
		Category:   "cryptography",
	},
	{
		Question:   "What is the block gas limit primarily designed to bound?",
		Options:    []string{"Block size in bytes", "Computation per block", "Transaction count", "Uncle rate"},
		Answer:     "Computation per block",
		Difficulty: 2,
		Category:   "ethereum",
	},
	{
		Question:   "In a Merkle tree, what does an inclusion proof consist of?",
		Options:    []string{"All leaves", "Sibling hashes along the path to the root", "The root only", "Every internal node"},
		Answer:     "Sibling hashes along the path to the root",
		Difficulty: 1,
		Category:   "data-structures",
	},
	{
		Question:   "Which opcode reverts execution and refunds remaining gas?",
		Options:    []string{"STOP", "INVALID", "REVERT", "SELFDESTRUCT"},
		Answer:     "REVERT",
		Difficulty: 2,
		Category:   "evm",
	},
	{
		Question:   "What does EIP-1559 introduce to transaction pricing?",
		Options:    []string{"A fixed gas price", "A burned base fee plus a priority tip", "Free transactions", "Miner-set prices"},
		Answer:     "A burned base fee plus a priority tip",
		Difficulty: 2,
		Category:   "ethereum",
	},
	{
		Question:   "What property makes a cryptographic hash suitable for commitments?",
		Options:    []string{"Reversibility", "Preimage resistance", "Short output", "Linearity"},
		Answer:     "Preimage resistance",
		Difficulty: 1,
		Category:   "cryptography",
	},
	{
		Question:   "How many bytes is a Keccak-256 digest?",
		Options:    []string{"16", "20", "32", "64"},
		Answer:     "32",
		Difficulty: 1,
		Category:   "cryptography",
	},
	{
		Question:   "What does a transaction nonce prevent?",
		Options:    []string{"Front-running", "Replay of the same transaction", "Gas griefing", "Reorgs"},
		Answer:     "Replay of the same transaction",
		Difficulty: 1,
		Category:   "ethereum",
	},
	{
		Question:   "Which structure lets a light client verify a leaf without the full dataset?",
		Options:    []string{"Bloom filter", "Merkle proof", "Patricia key", "State diff"},
		Answer:     "Merkle proof",
		Difficulty: 1,
		Category:   "data-structures",
	},
	{
		Question:   "What is the status field of a transaction receipt when execution reverted?",
		Options:    []string{"0", "1", "2", "255"},
		Answer:     "0",
		Difficulty: 2,
		Category:   "evm",
	},
}

// LocalGenerator serves questions from the built-in bank, round-robin.
type LocalGenerator struct {
	logger *zap.Logger

	mu   sync.Mutex
	next int
}

func NewLocalGenerator(logger *zap.Logger) *LocalGenerator {
	return &LocalGenerator{logger: logger}
}

var _ IQuestionGenerator = (*LocalGenerator)(nil)

func (lg *LocalGenerator) GenerateQuestion(ctx context.Context) (*types.GeneratedQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lg.mu.Lock()
	q := questionBank[lg.next%len(questionBank)]
	lg.next++
	lg.mu.Unlock()

	// Copy options so callers cannot mutate the bank
	out := q
	out.Options = append([]string(nil), q.Options...)
	return &out, nil
}
