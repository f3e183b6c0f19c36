package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for the quizchain services
const (
	EnvRPCURL          = "QUIZ_RPC_URL"
	EnvChainID         = "QUIZ_CHAIN_ID"
	EnvPrivateKey      = "QUIZ_PRIVATE_KEY"
	EnvLedgerAddress   = "QUIZ_LEDGER_ADDRESS"
	EnvAdminAddress    = "QUIZ_ADMIN_ADDRESS"
	EnvPersistenceType = "QUIZ_PERSISTENCE_TYPE"
	EnvDataPath        = "QUIZ_DATA_PATH"
	EnvRedisAddress    = "QUIZ_REDIS_ADDRESS"
	EnvGeneratorURL    = "QUIZ_GENERATOR_URL"
	EnvVerbose         = "QUIZ_VERBOSE"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}

func IsEthereum(chainId ChainId) bool {
	return chainId == ChainId_EthereumMainnet || chainId == ChainId_EthereumSepolia
}

// GetSupportedChainIDsString returns supported chain IDs as a string for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}

// PersistenceType selects the document store backing the batch records.
type PersistenceType string

const (
	PersistenceTypeMemory PersistenceType = "memory"
	PersistenceTypeBadger PersistenceType = "badger"
	PersistenceTypeRedis  PersistenceType = "redis"
)

// GeneratorMode selects where generated question content comes from.
type GeneratorMode string

const (
	GeneratorModeLocal GeneratorMode = "local"
	GeneratorModeHTTP  GeneratorMode = "http"
)

// BatchConfig holds the generation parameters for new batches.
type BatchConfig struct {
	TotalQuestions int           `json:"totalQuestions"`
	SubBatchSize   int           `json:"subBatchSize"`
	SubBatchDelay  time.Duration `json:"subBatchDelay"`

	// GenerationConcurrency bounds the number of in-flight content
	// generator requests within one round.
	GenerationConcurrency int `json:"generationConcurrency"`

	// RoundRetryBudget is how many times a round that produced zero leaves
	// is retried before the batch is abandoned in the generating state.
	RoundRetryBudget int `json:"roundRetryBudget"`
}

// CommitConfig holds the on-chain submission parameters.
type CommitConfig struct {
	// SubmitLeaves enables chunked leaf submission alongside the root.
	SubmitLeaves bool `json:"submitLeaves"`

	// SubmitChunkSize is the number of leaves per transaction.
	SubmitChunkSize int `json:"submitChunkSize"`

	// TxDelay is the pause between confirmed transactions, a courtesy to
	// ledger rate limits.
	TxDelay time.Duration `json:"txDelay"`
}

// GeneratorConfig holds content generator settings.
type GeneratorConfig struct {
	Mode           GeneratorMode `json:"mode"`
	URL            string        `json:"url,omitempty"`
	RequestTimeout time.Duration `json:"requestTimeout"`

	// RequestsPerSecond caps the request rate to the content service.
	RequestsPerSecond float64 `json:"requestsPerSecond"`
}

// Config is the complete configuration for the quizchain services.
type Config struct {
	ChainID   ChainId   `json:"chainId"`
	ChainName ChainName `json:"chainName"`

	RpcUrl        string `json:"rpcUrl"`
	PrivateKey    string `json:"privateKey"`
	LedgerAddress string `json:"ledgerAddress"`

	// AdminAddress is the only address allowed to reset leaf doors.
	AdminAddress string `json:"adminAddress"`

	PersistenceType PersistenceType `json:"persistenceType"`
	DataPath        string          `json:"dataPath"`
	RedisAddress    string          `json:"redisAddress,omitempty"`

	Verbose bool `json:"verbose"`

	Batch     BatchConfig     `json:"batch"`
	Commit    CommitConfig    `json:"commit"`
	Generator GeneratorConfig `json:"generator"`
}

// DefaultConfig returns a config with operational defaults filled in.
// Chain, RPC and key material must still be provided by the caller.
func DefaultConfig() *Config {
	return &Config{
		PersistenceType: PersistenceTypeMemory,
		Batch: BatchConfig{
			TotalQuestions:        50,
			SubBatchSize:          10,
			SubBatchDelay:         2 * time.Second,
			GenerationConcurrency: 4,
			RoundRetryBudget:      3,
		},
		Commit: CommitConfig{
			SubmitLeaves:    true,
			SubmitChunkSize: 50,
			TxDelay:         time.Second,
		},
		Generator: GeneratorConfig{
			Mode:              GeneratorModeLocal,
			RequestTimeout:    30 * time.Second,
			RequestsPerSecond: 2,
		},
	}
}

// Validate checks the configuration and resolves the chain name.
func (c *Config) Validate() error {
	var allErrors field.ErrorList

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("chainId"), c.ChainID,
			[]string{"1", "11155111", "31337"}))
	} else {
		c.ChainName = chainName
	}

	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpc url is required"))
	}

	if c.LedgerAddress != "" && !common.IsHexAddress(c.LedgerAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("ledgerAddress"), c.LedgerAddress,
			"must be a hex contract address"))
	}

	if c.AdminAddress != "" && !common.IsHexAddress(c.AdminAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("adminAddress"), c.AdminAddress,
			"must be a hex address"))
	}

	if c.PrivateKey != "" {
		key := strings.TrimPrefix(c.PrivateKey, "0x")
		if len(key) != 64 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("privateKey"), "<redacted>",
				fmt.Sprintf("must be 32 bytes (64 hex chars), got %d chars", len(key))))
		}
	}

	switch c.PersistenceType {
	case PersistenceTypeMemory:
	case PersistenceTypeBadger:
		if c.DataPath == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("dataPath"),
				"data path is required for badger persistence"))
		}
	case PersistenceTypeRedis:
		if c.RedisAddress == "" {
			allErrors = append(allErrors, field.Required(field.NewPath("redisAddress"),
				"redis address is required for redis persistence"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("persistenceType"), c.PersistenceType,
			[]string{string(PersistenceTypeMemory), string(PersistenceTypeBadger), string(PersistenceTypeRedis)}))
	}

	allErrors = append(allErrors, c.Batch.validate(field.NewPath("batch"))...)
	allErrors = append(allErrors, c.Commit.validate(field.NewPath("commit"))...)
	allErrors = append(allErrors, c.Generator.validate(field.NewPath("generator"))...)

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (bc *BatchConfig) validate(path *field.Path) field.ErrorList {
	var errs field.ErrorList
	if bc.TotalQuestions <= 0 {
		errs = append(errs, field.Invalid(path.Child("totalQuestions"), bc.TotalQuestions, "must be positive"))
	}
	if bc.SubBatchSize <= 0 {
		errs = append(errs, field.Invalid(path.Child("subBatchSize"), bc.SubBatchSize, "must be positive"))
	}
	if bc.GenerationConcurrency <= 0 {
		errs = append(errs, field.Invalid(path.Child("generationConcurrency"), bc.GenerationConcurrency, "must be positive"))
	}
	if bc.RoundRetryBudget < 0 {
		errs = append(errs, field.Invalid(path.Child("roundRetryBudget"), bc.RoundRetryBudget, "must not be negative"))
	}
	return errs
}

func (cc *CommitConfig) validate(path *field.Path) field.ErrorList {
	var errs field.ErrorList
	if cc.SubmitLeaves && cc.SubmitChunkSize <= 0 {
		errs = append(errs, field.Invalid(path.Child("submitChunkSize"), cc.SubmitChunkSize, "must be positive"))
	}
	if cc.TxDelay < 0 {
		errs = append(errs, field.Invalid(path.Child("txDelay"), cc.TxDelay.String(), "must not be negative"))
	}
	return errs
}

func (gc *GeneratorConfig) validate(path *field.Path) field.ErrorList {
	var errs field.ErrorList
	switch gc.Mode {
	case GeneratorModeLocal:
	case GeneratorModeHTTP:
		if gc.URL == "" {
			errs = append(errs, field.Required(path.Child("url"), "url is required for the http generator"))
		}
	default:
		errs = append(errs, field.NotSupported(path.Child("mode"), gc.Mode,
			[]string{string(GeneratorModeLocal), string(GeneratorModeHTTP)}))
	}
	if gc.RequestsPerSecond <= 0 {
		errs = append(errs, field.Invalid(path.Child("requestsPerSecond"), gc.RequestsPerSecond, "must be positive"))
	}
	return errs
}
