package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// SubmitMerkleRoot anchors a batch root on chain in root-only mode
func (lc *LedgerCaller) SubmitMerkleRoot(
	ctx context.Context,
	batchId uint64,
	root [32]byte,
) (*ethereumTypes.Receipt, error) {
	txOpts, err := lc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := lc.ledger.SubmitMerkleRoot(txOpts, batchId, root)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	lc.logger.Sugar().Infow("Submitting merkle root to ledger",
		"batchId", batchId,
		"root", common.Bytes2Hex(root[:]),
	)

	return lc.signAndSendTransaction(ctx, tx, "SubmitMerkleRoot")
}

// SubmitMerkleRootWithLeaves anchors a batch root plus one leaf chunk
func (lc *LedgerCaller) SubmitMerkleRootWithLeaves(
	ctx context.Context,
	batchId uint64,
	root [32]byte,
	leaves [][32]byte,
) (*ethereumTypes.Receipt, error) {
	txOpts, err := lc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := lc.ledger.SubmitMerkleRoot0(txOpts, batchId, root, leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	lc.logger.Sugar().Infow("Submitting merkle root with leaves to ledger",
		"batchId", batchId,
		"root", common.Bytes2Hex(root[:]),
		"leafCount", len(leaves),
	)

	return lc.signAndSendTransaction(ctx, tx, "SubmitMerkleRootWithLeaves")
}

// CreateQuestion registers a question and returns the contract-assigned
// question id parsed from the LeafRegistered event
func (lc *LedgerCaller) CreateQuestion(
	ctx context.Context,
	answerLeaf [32]byte,
	hintHash [32]byte,
	difficulty uint8,
	mode uint8,
) (uint64, *ethereumTypes.Receipt, error) {
	txOpts, err := lc.signer.GetTransactOpts(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := lc.ledger.CreateQuestion(txOpts, answerLeaf, hintHash, difficulty, mode)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	lc.logger.Sugar().Infow("Creating question on ledger",
		"answerLeaf", common.Bytes2Hex(answerLeaf[:]),
		"difficulty", difficulty,
	)

	receipt, err := lc.signAndSendTransaction(ctx, tx, "CreateQuestion")
	if err != nil {
		return 0, nil, err
	}

	questionId, err := lc.parseQuestionIdFromReceipt(receipt)
	if err != nil {
		return 0, receipt, err
	}
	return questionId, receipt, nil
}

// RegisterLeaf binds a leaf to an existing question id
func (lc *LedgerCaller) RegisterLeaf(
	ctx context.Context,
	questionId uint64,
	leaf [32]byte,
) (*ethereumTypes.Receipt, error) {
	txOpts, err := lc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := lc.ledger.RegisterLeaf(txOpts, new(big.Int).SetUint64(questionId), leaf)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	lc.logger.Sugar().Infow("Registering leaf on ledger",
		"questionId", questionId,
		"leaf", common.Bytes2Hex(leaf[:]),
	)

	return lc.signAndSendTransaction(ctx, tx, "RegisterLeaf")
}

// ResetLeaf clears the solved state of a leaf
func (lc *LedgerCaller) ResetLeaf(
	ctx context.Context,
	leaf [32]byte,
) (*ethereumTypes.Receipt, error) {
	txOpts, err := lc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := lc.ledger.ResetLeaf(txOpts, leaf)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	lc.logger.Sugar().Infow("Resetting leaf on ledger",
		"leaf", common.Bytes2Hex(leaf[:]),
	)

	return lc.signAndSendTransaction(ctx, tx, "ResetLeaf")
}

func (lc *LedgerCaller) GetMerkleRoot(ctx context.Context, batchId uint64) ([32]byte, error) {
	root, err := lc.ledger.GetMerkleRoot(&bind.CallOpts{Context: ctx}, batchId)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to get merkle root: %w", err)
	}
	return root, nil
}

func (lc *LedgerCaller) IsLeafSolved(ctx context.Context, leaf [32]byte) (bool, error) {
	solved, err := lc.ledger.IsLeafSolved(&bind.CallOpts{Context: ctx}, leaf)
	if err != nil {
		return false, fmt.Errorf("failed to check leaf solved state: %w", err)
	}
	return solved, nil
}

func (lc *LedgerCaller) GetLeafSolver(ctx context.Context, leaf [32]byte) (common.Address, error) {
	solver, err := lc.ledger.GetLeafSolver(&bind.CallOpts{Context: ctx}, leaf)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get leaf solver: %w", err)
	}
	return solver, nil
}

// GetLeafInfo aggregates the per-leaf view calls into one snapshot
func (lc *LedgerCaller) GetLeafInfo(ctx context.Context, leaf [32]byte) (*types.LeafInfo, error) {
	opts := &bind.CallOpts{Context: ctx}

	solved, err := lc.ledger.IsLeafSolved(opts, leaf)
	if err != nil {
		return nil, fmt.Errorf("failed to check leaf solved state: %w", err)
	}

	questionId, err := lc.ledger.GetLeafQuestionId(opts, leaf)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaf question id: %w", err)
	}

	info := &types.LeafInfo{
		LeafHash:   leaf,
		IsSolved:   solved,
		QuestionID: questionId.Uint64(),
	}

	if solved {
		solver, err := lc.ledger.GetLeafSolver(opts, leaf)
		if err != nil {
			return nil, fmt.Errorf("failed to get leaf solver: %w", err)
		}
		solveTime, err := lc.ledger.GetLeafSolveTime(opts, leaf)
		if err != nil {
			return nil, fmt.Errorf("failed to get leaf solve time: %w", err)
		}
		info.Solver = solver
		info.SolveTime = solveTime.Int64()
	}

	return info, nil
}

func (lc *LedgerCaller) parseQuestionIdFromReceipt(receipt *ethereumTypes.Receipt) (uint64, error) {
	for _, log := range receipt.Logs {
		if log.Address != lc.ledgerAddress {
			continue
		}
		registered, err := lc.ledger.ParseLeafRegistered(*log)
		if err != nil {
			continue
		}
		return registered.QuestionId.Uint64(), nil
	}
	return 0, fmt.Errorf("no LeafRegistered event in receipt %s", receipt.TxHash.Hex())
}
