package types

import "errors"

var (
	// ErrBatchNotFound is returned when no batch exists for the given ID.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrBatchNotReady is returned when an operation requires a finalized
	// batch but the batch has not reached the ready status.
	ErrBatchNotReady = errors.New("batch is not ready")

	// ErrRootMismatch signals that a root recomputed from persisted leaves
	// disagrees with the stored merkle root. This is a data corruption
	// signal; the batch must not be committed.
	ErrRootMismatch = errors.New("recomputed merkle root does not match stored root")

	// ErrLedgerUnavailable is returned when the ledger RPC endpoint cannot
	// be reached.
	ErrLedgerUnavailable = errors.New("ledger is unavailable")

	// ErrTransactionReverted is returned when a submitted transaction was
	// mined but reverted.
	ErrTransactionReverted = errors.New("transaction reverted")
)
