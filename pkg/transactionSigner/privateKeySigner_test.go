package transactionSigner

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// Anvil's default funded account #0, safe to embed in tests.
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func Test_AddGasBuffer(t *testing.T) {
	require.Equal(t, uint64(120_000), addGasBuffer(100_000))
	require.Equal(t, uint64(25_200), addGasBuffer(21_000))
	require.Equal(t, uint64(0), addGasBuffer(0))
}

func Test_GetTransactOpts_DoesNotSign(t *testing.T) {
	privateKey, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	signer := &PrivateKeyTransactionSigner{
		chainID:     big.NewInt(31337),
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}

	opts, err := signer.GetTransactOpts(context.Background())
	require.NoError(t, err)
	require.True(t, opts.NoSend)
	require.Equal(t, signer.fromAddress, opts.From)

	// The opts signer must be a passthrough: the real signature is attached in
	// SignAndSendTransaction after gas and nonce are resolved.
	to := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID: big.NewInt(31337),
		To:      &to,
		Value:   big.NewInt(1),
	})
	signed, err := opts.Signer(opts.From, tx)
	require.NoError(t, err)
	require.Equal(t, tx.Hash(), signed.Hash())
}

func Test_GetFromAddress(t *testing.T) {
	privateKey, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	signer := &PrivateKeyTransactionSigner{
		chainID:     big.NewInt(31337),
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}

	require.Equal(t,
		common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		signer.GetFromAddress(),
	)
}
