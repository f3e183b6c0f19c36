package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/config"
	quiztypes "github.com/quizchain/quizchain-go/pkg/types"
)

// sendMu serializes SignAndSendTransaction across all signer instances in the
// process. One signer account means one nonce sequence.
var sendMu sync.Mutex

// PrivateKeyTransactionSigner implements ITransactionSigner using a local ECDSA key
type PrivateKeyTransactionSigner struct {
	ethClient   *ethclient.Client
	logger      *zap.Logger
	chainID     *big.Int
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
}

// NewPrivateKeySigner creates a new PrivateKeyTransactionSigner
func NewPrivateKeySigner(privateKeyHex string, ethClient *ethclient.Client, logger *zap.Logger) (*PrivateKeyTransactionSigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	// Get chain ID during initialization
	chainID, err := ethClient.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &PrivateKeyTransactionSigner{
		ethClient:   ethClient,
		logger:      logger,
		chainID:     chainID,
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// GetTransactOpts returns transaction options for creating unsigned transactions
func (pks *PrivateKeyTransactionSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	// We need to provide a Signer function that returns the transaction unsigned
	// The actual signing happens in SignAndSendTransaction
	opts := &bind.TransactOpts{
		From:    pks.fromAddress,
		Context: ctx,
		NoSend:  true,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			// Just return the transaction as-is without signing
			// The actual signing will happen in SignAndSendTransaction
			return tx, nil
		},
	}
	return opts, nil
}

// SignAndSendTransaction signs a transaction and sends it to the network
func (pks *PrivateKeyTransactionSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	sendMu.Lock()
	defer sendMu.Unlock()

	var fallbackGasTipCap *big.Int
	var baseFeeMultiplier int64

	if config.IsEthereum(config.ChainId(pks.chainID.Uint64())) {
		fallbackGasTipCap = big.NewInt(1500000000) // 1.5 gwei for Ethereum
		baseFeeMultiplier = 3                      // 3x buffer for Ethereum
	} else {
		fallbackGasTipCap = big.NewInt(1000000) // 0.001 gwei for local devnets
		baseFeeMultiplier = 2
	}

	// Estimate gas tip cap (priority fee)
	gasTipCap, err := pks.ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		// If the transaction failed because the backend does not support
		// eth_maxPriorityFeePerGas, fallback to using the default constant.
		pks.logger.Sugar().Warnw("SignAndSendTransaction: cannot get gasTipCap, using fallback",
			zap.Error(err),
		)
		gasTipCap = fallbackGasTipCap
	}

	// Get the latest block header for base fee calculation
	header, err := pks.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block header: %w", err)
	}

	// Calculate max fee per gas: basefee * multiplier + tip, buffered since
	// base fees can spike between estimation and inclusion
	maxFeePerGas := new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(baseFeeMultiplier)),
		gasTipCap,
	)

	// Estimate gas limit with proper parameters
	gasLimit, err := pks.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From:      pks.fromAddress,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	// Add 20% buffer to gas limit
	gasLimitWithBuffer := addGasBuffer(gasLimit)

	// Get nonce - always fetch from the network since the incoming tx.Nonce() may be 0
	// which is a valid nonce value and we can't distinguish between "no nonce set" and "nonce is 0"
	nonce, err := pks.ethClient.PendingNonceAt(ctx, pks.fromAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	unsignedTx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   pks.chainID,
		Nonce:     nonce,
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Gas:       gasLimitWithBuffer,
		To:        tx.To(),
		Value:     tx.Value(),
		Data:      tx.Data(),
	})

	pks.logger.Info("SignAndSendTransaction: sending transaction",
		zap.String("to", tx.To().Hex()),
		zap.String("maxPriorityFeePerGas", gasTipCap.String()),
		zap.String("maxFeePerGas", maxFeePerGas.String()),
		zap.String("baseFee", header.BaseFee.String()),
		zap.Uint64("gasLimit", gasLimitWithBuffer),
		zap.Uint64("nonce", nonce),
	)

	signedTx, err := types.SignTx(unsignedTx, types.LatestSignerForChainID(pks.chainID), pks.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	// Send the transaction
	err = pks.ethClient.SendTransaction(ctx, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	pks.logger.Info("SignAndSendTransaction: transaction sent",
		zap.String("txHash", signedTx.Hash().Hex()),
	)

	// Wait for receipt and check status
	receipt, err := bind.WaitMined(ctx, pks.ethClient, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction receipt: %w", err)
	}

	// Check transaction status
	if receipt.Status != 1 {
		pks.logger.Error("SignAndSendTransaction: transaction failed",
			zap.String("txHash", receipt.TxHash.Hex()),
			zap.Uint64("status", receipt.Status),
			zap.Uint64("gasUsed", receipt.GasUsed),
		)
		return nil, fmt.Errorf("%w: status %d", quiztypes.ErrTransactionReverted, receipt.Status)
	}

	pks.logger.Info("SignAndSendTransaction: transaction succeeded",
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
	)

	return receipt, nil
}

// GetFromAddress returns the address that will be used for signing
func (pks *PrivateKeyTransactionSigner) GetFromAddress() common.Address {
	return pks.fromAddress
}

// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
func (pks *PrivateKeyTransactionSigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	gasPrice, err := pks.ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gasLimit, err := pks.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From:  pks.fromAddress,
		To:    tx.To(),
		Value: tx.Value(),
		Data:  tx.Data(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return gasPrice, addGasBuffer(gasLimit), nil
}

func addGasBuffer(gasLimit uint64) uint64 {
	return gasLimit * 120 / 100
}
