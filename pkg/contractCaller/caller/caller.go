package caller

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/bindings/QuizLedger"
	"github.com/quizchain/quizchain-go/pkg/transactionSigner"
	"github.com/quizchain/quizchain-go/pkg/types"
)

type LedgerCaller struct {
	ethclient     *ethclient.Client
	logger        *zap.Logger
	signer        transactionSigner.ITransactionSigner
	ledgerAddress common.Address

	ledger *QuizLedger.QuizLedger
}

func NewLedgerCaller(
	ethclient *ethclient.Client,
	ledgerAddress common.Address,
	signer transactionSigner.ITransactionSigner,
	logger *zap.Logger,
) (*LedgerCaller, error) {
	ledger, err := QuizLedger.NewQuizLedger(ledgerAddress, ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz ledger contract instance: %w", err)
	}
	logger.Sugar().Infow("Using quiz ledger contract",
		zap.String("address", ledgerAddress.Hex()),
	)

	return &LedgerCaller{
		ethclient:     ethclient,
		logger:        logger,
		signer:        signer,
		ledgerAddress: ledgerAddress,
		ledger:        ledger,
	}, nil
}

// Ping checks RPC reachability with a cheap chain id call
func (lc *LedgerCaller) Ping(ctx context.Context) error {
	if _, err := lc.ethclient.ChainID(ctx); err != nil {
		return fmt.Errorf("%w: %v", types.ErrLedgerUnavailable, err)
	}
	return nil
}

// signAndSendTransaction hands a prepared, unsent transaction to the signer,
// which owns fee estimation, nonce assignment and confirmation.
func (lc *LedgerCaller) signAndSendTransaction(ctx context.Context, tx *ethereumTypes.Transaction, operation string) (*ethereumTypes.Receipt, error) {
	lc.logger.Sugar().Infow("Sending ledger transaction",
		"operation", operation,
		"from", lc.signer.GetFromAddress().Hex(),
		"to", tx.To().Hex(),
	)
	return lc.signer.SignAndSendTransaction(ctx, tx)
}
