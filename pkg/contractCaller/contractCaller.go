package contractCaller

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// ILedgerCaller wraps all reads and writes against the on-chain quiz ledger.
// Write operations return the mined receipt; implementations must not return
// a receipt for a reverted transaction.
type ILedgerCaller interface {
	// Ping verifies the ledger is reachable. Returns an error wrapping
	// types.ErrLedgerUnavailable when the RPC endpoint cannot be reached.
	Ping(ctx context.Context) error

	// SubmitMerkleRoot anchors a batch root on chain without revealing leaves
	SubmitMerkleRoot(
		ctx context.Context,
		batchId uint64,
		root [32]byte,
	) (*ethereumTypes.Receipt, error)

	// SubmitMerkleRootWithLeaves anchors a batch root together with one chunk
	// of its leaves. Called once per chunk; every call repeats the same root.
	SubmitMerkleRootWithLeaves(
		ctx context.Context,
		batchId uint64,
		root [32]byte,
		leaves [][32]byte,
	) (*ethereumTypes.Receipt, error)

	// CreateQuestion registers a question on the ledger and returns the
	// question id assigned by the contract, parsed from the LeafRegistered
	// event in the receipt logs.
	CreateQuestion(
		ctx context.Context,
		answerLeaf [32]byte,
		hintHash [32]byte,
		difficulty uint8,
		mode uint8,
	) (uint64, *ethereumTypes.Receipt, error)

	// RegisterLeaf binds a leaf to an existing question id
	RegisterLeaf(
		ctx context.Context,
		questionId uint64,
		leaf [32]byte,
	) (*ethereumTypes.Receipt, error)

	// ResetLeaf clears the solved state of a leaf. Only the contract owner
	// may call this; authorization is enforced above this layer as well.
	ResetLeaf(
		ctx context.Context,
		leaf [32]byte,
	) (*ethereumTypes.Receipt, error)

	GetMerkleRoot(ctx context.Context, batchId uint64) ([32]byte, error)

	IsLeafSolved(ctx context.Context, leaf [32]byte) (bool, error)

	// GetLeafInfo aggregates the per-leaf view calls into a single snapshot
	GetLeafInfo(ctx context.Context, leaf [32]byte) (*types.LeafInfo, error)

	// GetLeafSolver returns the zero address for unsolved leaves
	GetLeafSolver(ctx context.Context, leaf [32]byte) (common.Address, error)
}
