package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.ChainID = ChainId_EthereumAnvil
	cfg.RpcUrl = "http://localhost:8545"
	cfg.LedgerAddress = "0x42583067658071247ec8CE0A516A58f682002d07"
	cfg.PrivateKey = "0x" + "11" + "22334455667788990011223344556677889900112233445566778899001122"
	return cfg
}

func TestValidateDefaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ChainName_EthereumAnvil, cfg.ChainName)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown chain", func(c *Config) { c.ChainID = 42 }},
		{"missing rpc url", func(c *Config) { c.RpcUrl = "" }},
		{"bad ledger address", func(c *Config) { c.LedgerAddress = "not-an-address" }},
		{"short private key", func(c *Config) { c.PrivateKey = "0xabcd" }},
		{"badger without data path", func(c *Config) {
			c.PersistenceType = PersistenceTypeBadger
			c.DataPath = ""
		}},
		{"redis without address", func(c *Config) {
			c.PersistenceType = PersistenceTypeRedis
			c.RedisAddress = ""
		}},
		{"unknown persistence type", func(c *Config) { c.PersistenceType = "cassandra" }},
		{"zero sub-batch size", func(c *Config) { c.Batch.SubBatchSize = 0 }},
		{"zero concurrency", func(c *Config) { c.Batch.GenerationConcurrency = 0 }},
		{"zero chunk size with leaves enabled", func(c *Config) { c.Commit.SubmitChunkSize = 0 }},
		{"http generator without url", func(c *Config) {
			c.Generator.Mode = GeneratorModeHTTP
			c.Generator.URL = ""
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAllowsEmptyOptionalFields(t *testing.T) {
	cfg := validTestConfig()
	cfg.PrivateKey = ""
	cfg.AdminAddress = ""
	cfg.LedgerAddress = ""
	require.NoError(t, cfg.Validate())
}
