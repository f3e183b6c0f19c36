package contractCaller

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/quizchain/quizchain-go/pkg/types"
)

type fakeLeafState struct {
	questionId uint64
	solved     bool
	solver     common.Address
	solveTime  int64
}

// FakeLedgerCaller is an in-memory ILedgerCaller for testing. Failure modes
// are configurable: set Unavailable to simulate an unreachable RPC endpoint,
// or RevertAtSubmission to make the nth root submission revert.
type FakeLedgerCaller struct {
	mu sync.Mutex

	// Unavailable makes Ping and all reads fail with types.ErrLedgerUnavailable
	Unavailable bool

	// RevertAtSubmission makes the submission with this zero-based sequence
	// number fail with types.ErrTransactionReverted. Negative disables it.
	RevertAtSubmission int

	roots          map[uint64][32]byte
	chunks         map[uint64][][][32]byte
	leaves         map[[32]byte]*fakeLeafState
	submissions    int
	registrations  int
	nextQuestionId uint64
	txCounter      uint64
}

func NewFakeLedgerCaller() *FakeLedgerCaller {
	return &FakeLedgerCaller{
		RevertAtSubmission: -1,
		roots:              make(map[uint64][32]byte),
		chunks:             make(map[uint64][][][32]byte),
		leaves:             make(map[[32]byte]*fakeLeafState),
		nextQuestionId:     1,
	}
}

var _ ILedgerCaller = (*FakeLedgerCaller)(nil)

func (f *FakeLedgerCaller) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	return nil
}

func (f *FakeLedgerCaller) SubmitMerkleRoot(ctx context.Context, batchId uint64, root [32]byte) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkSubmission(); err != nil {
		return nil, err
	}
	f.roots[batchId] = root
	return f.newReceipt(), nil
}

func (f *FakeLedgerCaller) SubmitMerkleRootWithLeaves(ctx context.Context, batchId uint64, root [32]byte, leaves [][32]byte) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkSubmission(); err != nil {
		return nil, err
	}
	f.roots[batchId] = root
	chunk := make([][32]byte, len(leaves))
	copy(chunk, leaves)
	f.chunks[batchId] = append(f.chunks[batchId], chunk)
	return f.newReceipt(), nil
}

func (f *FakeLedgerCaller) CreateQuestion(ctx context.Context, answerLeaf [32]byte, hintHash [32]byte, difficulty uint8, mode uint8) (uint64, *ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return 0, nil, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	questionId := f.nextQuestionId
	f.nextQuestionId++
	f.leaves[answerLeaf] = &fakeLeafState{questionId: questionId}
	return questionId, f.newReceipt(), nil
}

func (f *FakeLedgerCaller) RegisterLeaf(ctx context.Context, questionId uint64, leaf [32]byte) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return nil, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	f.registrations++
	f.leaves[leaf] = &fakeLeafState{questionId: questionId}
	return f.newReceipt(), nil
}

func (f *FakeLedgerCaller) ResetLeaf(ctx context.Context, leaf [32]byte) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return nil, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	if state, ok := f.leaves[leaf]; ok {
		state.solved = false
		state.solver = common.Address{}
		state.solveTime = 0
	}
	return f.newReceipt(), nil
}

func (f *FakeLedgerCaller) GetMerkleRoot(ctx context.Context, batchId uint64) ([32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return [32]byte{}, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	return f.roots[batchId], nil
}

func (f *FakeLedgerCaller) IsLeafSolved(ctx context.Context, leaf [32]byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return false, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	state, ok := f.leaves[leaf]
	return ok && state.solved, nil
}

func (f *FakeLedgerCaller) GetLeafSolver(ctx context.Context, leaf [32]byte) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return common.Address{}, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	if state, ok := f.leaves[leaf]; ok {
		return state.solver, nil
	}
	return common.Address{}, nil
}

func (f *FakeLedgerCaller) GetLeafInfo(ctx context.Context, leaf [32]byte) (*types.LeafInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return nil, fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	info := &types.LeafInfo{LeafHash: leaf}
	if state, ok := f.leaves[leaf]; ok {
		info.IsSolved = state.solved
		info.Solver = state.solver
		info.SolveTime = state.solveTime
		info.QuestionID = state.questionId
	}
	return info, nil
}

// MarkSolved records a leaf as solved, for tests exercising solved-state reads
func (f *FakeLedgerCaller) MarkSolved(leaf [32]byte, solver common.Address, solveTime int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.leaves[leaf]
	if !ok {
		state = &fakeLeafState{}
		f.leaves[leaf] = state
	}
	state.solved = true
	state.solver = solver
	state.solveTime = solveTime
}

// RootFor returns the last root recorded for a batch
func (f *FakeLedgerCaller) RootFor(batchId uint64) [32]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roots[batchId]
}

// ChunksFor returns the leaf chunks recorded for a batch in submission order
func (f *FakeLedgerCaller) ChunksFor(batchId uint64) [][][32]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chunks[batchId]
}

// Submissions returns how many root submissions were attempted
func (f *FakeLedgerCaller) Submissions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submissions
}

// Registrations returns how many RegisterLeaf transactions were sent
func (f *FakeLedgerCaller) Registrations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrations
}

func (f *FakeLedgerCaller) checkSubmission() error {
	if f.Unavailable {
		return fmt.Errorf("%w: connection refused", types.ErrLedgerUnavailable)
	}
	seq := f.submissions
	f.submissions++
	if f.RevertAtSubmission >= 0 && seq == f.RevertAtSubmission {
		return fmt.Errorf("%w: status 0", types.ErrTransactionReverted)
	}
	return nil
}

// newReceipt fabricates a distinct mined receipt per transaction
func (f *FakeLedgerCaller) newReceipt() *ethereumTypes.Receipt {
	f.txCounter++
	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], f.txCounter)
	return &ethereumTypes.Receipt{
		Status: ethereumTypes.ReceiptStatusSuccessful,
		TxHash: crypto.Keccak256Hash(seed[:]),
	}
}
