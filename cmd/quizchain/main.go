package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/commitment"
	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/contractCaller"
	"github.com/quizchain/quizchain-go/pkg/contractCaller/caller"
	"github.com/quizchain/quizchain-go/pkg/doortracker"
	"github.com/quizchain/quizchain-go/pkg/generator"
	"github.com/quizchain/quizchain-go/pkg/logger"
	"github.com/quizchain/quizchain-go/pkg/orchestrator"
	"github.com/quizchain/quizchain-go/pkg/persistence"
	"github.com/quizchain/quizchain-go/pkg/persistence/badger"
	"github.com/quizchain/quizchain-go/pkg/persistence/memory"
	"github.com/quizchain/quizchain-go/pkg/persistence/redis"
	"github.com/quizchain/quizchain-go/pkg/proofservice"
	"github.com/quizchain/quizchain-go/pkg/transactionSigner"
	"github.com/quizchain/quizchain-go/pkg/types"
)

func main() {
	app := &cli.App{
		Name:  "quizchain",
		Usage: "Batch and merkle commitment pipeline for on-chain quiz answers",
		Description: `Generates batches of quiz questions, commits their answer hashes as a
merkle root to the quiz ledger contract, and serves inclusion proofs
for answer verification.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "chain-id",
				Aliases: []string{"chain"},
				Usage:   fmt.Sprintf("Ethereum chain ID: %s", config.GetSupportedChainIDsString()),
				Value:   uint64(config.ChainId_EthereumAnvil),
				EnvVars: []string{config.EnvChainID},
			},
			&cli.StringFlag{
				Name:    "rpc-url",
				Aliases: []string{"rpc"},
				Usage:   "Ethereum RPC endpoint URL",
				Value:   "http://localhost:8545",
				EnvVars: []string{config.EnvRPCURL},
			},
			&cli.StringFlag{
				Name:    "private-key",
				Usage:   "Hex private key used to sign ledger transactions",
				EnvVars: []string{config.EnvPrivateKey},
			},
			&cli.StringFlag{
				Name:    "ledger-address",
				Usage:   "Quiz ledger contract address",
				EnvVars: []string{config.EnvLedgerAddress},
			},
			&cli.StringFlag{
				Name:    "admin-address",
				Usage:   "Address authorized to reset leaf doors",
				EnvVars: []string{config.EnvAdminAddress},
			},
			&cli.StringFlag{
				Name:    "persistence",
				Usage:   "Persistence backend: memory, badger or redis",
				Value:   string(config.PersistenceTypeMemory),
				EnvVars: []string{config.EnvPersistenceType},
			},
			&cli.StringFlag{
				Name:    "data-path",
				Usage:   "Data directory for badger persistence",
				EnvVars: []string{config.EnvDataPath},
			},
			&cli.StringFlag{
				Name:    "redis-address",
				Usage:   "Redis address for redis persistence",
				EnvVars: []string{config.EnvRedisAddress},
			},
			&cli.StringFlag{
				Name:    "generator-url",
				Usage:   "Content service URL; omit to use the built-in question bank",
				EnvVars: []string{config.EnvGeneratorURL},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "start-batch",
				Usage: "Generate a new batch of questions and finalize its merkle tree",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "total", Usage: "Number of questions to generate", Value: 50},
					&cli.IntFlag{Name: "sub-batch-size", Usage: "Questions per generation round", Value: 10},
					&cli.DurationFlag{Name: "delay", Usage: "Pause between rounds", Value: 2 * time.Second},
				},
				Action: runStartBatch,
			},
			{
				Name:  "commit",
				Usage: "Submit a ready batch's root (and leaf chunks) to the ledger",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "batch-id", Required: true},
					&cli.BoolFlag{Name: "root-only", Usage: "Submit only the root, no leaf chunks"},
					&cli.IntFlag{Name: "chunk-size", Usage: "Leaves per transaction", Value: 50},
					&cli.DurationFlag{Name: "tx-delay", Usage: "Pause between confirmed transactions", Value: time.Second},
				},
				Action: runCommit,
			},
			{
				Name:  "status",
				Usage: "Show a batch record, or all batches when no ID is given",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "batch-id"},
					&cli.BoolFlag{Name: "leaves", Usage: "Include the batch's leaves in merkle order"},
				},
				Action: runStatus,
			},
			{
				Name:  "verify-onchain",
				Usage: "Cross-check a committed batch's stored root against the ledger",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "batch-id", Required: true},
				},
				Action: runVerifyOnChain,
			},
			{
				Name:  "prove",
				Usage: "Build an inclusion proof for a quiz and check a claimed answer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "quiz-id", Required: true},
					&cli.StringFlag{Name: "answer", Required: true},
				},
				Action: runProve,
			},
			{
				Name:      "verify",
				Usage:     "Verify a leaf against a root with the given proof",
				ArgsUsage: "<leaf> <root> [sibling...]",
				Action:    runVerify,
			},
			{
				Name:  "leaf-info",
				Usage: "Show the ledger's door state for a leaf",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "leaf", Required: true, Usage: "Leaf hash (0x-prefixed)"},
				},
				Action: runLeafInfo,
			},
			{
				Name:  "available",
				Usage: "List a batch's quizzes whose doors are still closed",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "batch-id", Required: true},
				},
				Action: runAvailable,
			},
			{
				Name:  "create-question",
				Usage: "Register a quiz's answer leaf as a new on-chain question",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "quiz-id", Required: true},
					&cli.StringFlag{Name: "hint", Usage: "Hint text; only its hash goes on chain"},
					&cli.UintFlag{Name: "difficulty", Value: 1},
					&cli.UintFlag{Name: "mode", Value: 0},
				},
				Action: runCreateQuestion,
			},
			{
				Name:  "register-leaf",
				Usage: "Associate a leaf with an on-chain question id",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "question-id", Required: true},
					&cli.StringFlag{Name: "leaf", Required: true, Usage: "Leaf hash (0x-prefixed)"},
				},
				Action: runRegisterLeaf,
			},
			{
				Name:  "reset-leaf",
				Usage: "Administratively reset a leaf door",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "leaf", Required: true, Usage: "Leaf hash (0x-prefixed)"},
				},
				Action: runResetLeaf,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// appContext bundles the dependencies a command may need. Chain-side pieces
// are built lazily; store-only commands never dial the RPC endpoint.
type appContext struct {
	cfg    *config.Config
	logger *zap.Logger
	store  persistence.IQuizStore
}

func newAppContext(c *cli.Context) (*appContext, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg := parseConfig(c)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	l.Sugar().Infow("Using chain", "name", cfg.ChainName, "chain_id", cfg.ChainID)

	store, err := newStore(cfg, l)
	if err != nil {
		return nil, err
	}
	if err := store.HealthCheck(); err != nil {
		return nil, fmt.Errorf("persistence health check failed: %w", err)
	}

	return &appContext{cfg: cfg, logger: l, store: store}, nil
}

func (ac *appContext) close() {
	if err := ac.store.Close(); err != nil {
		ac.logger.Sugar().Warnw("Failed to close store", "error", err)
	}
	_ = ac.logger.Sync()
}

// newLedger dials the RPC endpoint and wires signer plus contract caller
func (ac *appContext) newLedger(withSigner bool) (contractCaller.ILedgerCaller, transactionSigner.ITransactionSigner, error) {
	if ac.cfg.LedgerAddress == "" {
		return nil, nil, fmt.Errorf("ledger address is required (set %s)", config.EnvLedgerAddress)
	}

	ethClient, err := ethclient.Dial(ac.cfg.RpcUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial RPC endpoint %s: %w", ac.cfg.RpcUrl, err)
	}

	var signer transactionSigner.ITransactionSigner
	if withSigner {
		signer, err = transactionSigner.NewTransactionSigner(
			&transactionSigner.SignerConfig{PrivateKey: ac.cfg.PrivateKey}, ethClient, ac.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create transaction signer: %w", err)
		}
	}

	ledger, err := caller.NewLedgerCaller(ethClient, common.HexToAddress(ac.cfg.LedgerAddress), signer, ac.logger)
	if err != nil {
		return nil, nil, err
	}
	return ledger, signer, nil
}

func runStartBatch(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	questionGenerator, err := generator.NewQuestionGenerator(&ac.cfg.Generator, ac.logger)
	if err != nil {
		return fmt.Errorf("failed to create question generator: %w", err)
	}

	o := orchestrator.NewOrchestrator(ac.store, questionGenerator, &ac.cfg.Batch, ac.logger)
	batchID, err := o.StartBatch(c.Context, c.Int("total"), c.Int("sub-batch-size"), c.Duration("delay"))
	if err != nil {
		return fmt.Errorf("batch %d did not reach ready: %w", batchID, err)
	}

	batch, err := o.BatchStatus(batchID)
	if err != nil {
		return err
	}
	return printJSON(batch)
}

func runCommit(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(true)
	if err != nil {
		return err
	}

	commitConfig := config.CommitConfig{
		SubmitLeaves:    !c.Bool("root-only"),
		SubmitChunkSize: c.Int("chunk-size"),
		TxDelay:         c.Duration("tx-delay"),
	}
	client := commitment.NewClient(ac.store, ledger, &commitConfig, ac.logger)

	result, err := client.Commit(c.Context, c.Int64("batch-id"))
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runStatus(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	o := orchestrator.NewOrchestrator(ac.store, nil, &ac.cfg.Batch, ac.logger)

	if c.IsSet("batch-id") {
		batch, err := o.BatchStatus(c.Int64("batch-id"))
		if err != nil {
			return err
		}
		if c.Bool("leaves") {
			leaves, err := ac.store.ListLeavesByBatch(batch.ID)
			if err != nil {
				return fmt.Errorf("failed to load leaves for batch %d: %w", batch.ID, err)
			}
			return printJSON(struct {
				Batch  *types.Batch  `json:"batch"`
				Leaves []*types.Leaf `json:"leaves"`
			}{batch, leaves})
		}
		return printJSON(batch)
	}

	batches, err := o.ListBatches()
	if err != nil {
		return err
	}
	return printJSON(batches)
}

func runVerifyOnChain(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(false)
	if err != nil {
		return err
	}

	client := commitment.NewClient(ac.store, ledger, &ac.cfg.Commit, ac.logger)
	if err := client.VerifyOnChain(c.Context, c.Int64("batch-id")); err != nil {
		return err
	}
	fmt.Println("verified")
	return nil
}

func runProve(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	service := proofservice.NewService(ac.store, ac.logger)
	proof, err := service.ProofFor(c.Context, c.String("quiz-id"), c.String("answer"))
	if err != nil {
		return err
	}
	return printJSON(proof)
}

func runVerify(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	if c.NArg() < 2 {
		return fmt.Errorf("usage: verify <leaf> <root> [sibling...]")
	}

	leaf := common.HexToHash(c.Args().Get(0))
	root := common.HexToHash(c.Args().Get(1))
	siblings := make([]common.Hash, 0, c.NArg()-2)
	for i := 2; i < c.NArg(); i++ {
		siblings = append(siblings, common.HexToHash(c.Args().Get(i)))
	}

	service := proofservice.NewService(ac.store, ac.logger)
	valid := service.Verify(leaf, siblings, root)
	fmt.Println(valid)
	if !valid {
		os.Exit(1)
	}
	return nil
}

func runLeafInfo(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(false)
	if err != nil {
		return err
	}

	tracker := doortracker.NewTracker(ledger, ac.store, common.HexToAddress(ac.cfg.AdminAddress), ac.logger)
	info, err := tracker.LeafInfo(c.Context, common.HexToHash(c.String("leaf")))
	if err != nil {
		return err
	}
	return printJSON(info)
}

func runAvailable(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(false)
	if err != nil {
		return err
	}

	tracker := doortracker.NewTracker(ledger, ac.store, common.HexToAddress(ac.cfg.AdminAddress), ac.logger)
	quizzes, err := tracker.AvailableQuizzes(c.Context, c.Int64("batch-id"))
	if err != nil {
		return err
	}
	return printJSON(quizzes)
}

func runCreateQuestion(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(true)
	if err != nil {
		return err
	}

	tracker := doortracker.NewTracker(ledger, ac.store, common.HexToAddress(ac.cfg.AdminAddress), ac.logger)
	questionID, err := tracker.CreateQuestion(c.Context,
		c.String("quiz-id"), c.String("hint"), uint8(c.Uint("difficulty")), uint8(c.Uint("mode")))
	if err != nil {
		return err
	}
	return printJSON(struct {
		QuizID     string `json:"quizId"`
		QuestionID uint64 `json:"questionId"`
	}{c.String("quiz-id"), questionID})
}

func runRegisterLeaf(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, _, err := ac.newLedger(true)
	if err != nil {
		return err
	}

	tracker := doortracker.NewTracker(ledger, ac.store, common.HexToAddress(ac.cfg.AdminAddress), ac.logger)
	return tracker.RegisterLeaf(c.Context, c.Uint64("question-id"), common.HexToHash(c.String("leaf")))
}

func runResetLeaf(c *cli.Context) error {
	ac, err := newAppContext(c)
	if err != nil {
		return err
	}
	defer ac.close()

	ledger, signer, err := ac.newLedger(true)
	if err != nil {
		return err
	}

	tracker := doortracker.NewTracker(ledger, ac.store, common.HexToAddress(ac.cfg.AdminAddress), ac.logger)
	return tracker.ResetLeaf(c.Context, signer.GetFromAddress(), common.HexToHash(c.String("leaf")))
}

func parseConfig(c *cli.Context) *config.Config {
	cfg := config.DefaultConfig()
	cfg.ChainID = config.ChainId(c.Uint64("chain-id"))
	cfg.RpcUrl = c.String("rpc-url")
	cfg.PrivateKey = c.String("private-key")
	cfg.LedgerAddress = c.String("ledger-address")
	cfg.AdminAddress = c.String("admin-address")
	cfg.PersistenceType = config.PersistenceType(c.String("persistence"))
	cfg.DataPath = c.String("data-path")
	cfg.RedisAddress = c.String("redis-address")
	cfg.Verbose = c.Bool("verbose")

	if url := c.String("generator-url"); url != "" {
		cfg.Generator.Mode = config.GeneratorModeHTTP
		cfg.Generator.URL = url
	}
	return cfg
}

func newStore(cfg *config.Config, l *zap.Logger) (persistence.IQuizStore, error) {
	switch cfg.PersistenceType {
	case config.PersistenceTypeMemory:
		return memory.NewMemoryStore(), nil
	case config.PersistenceTypeBadger:
		return badger.NewBadgerStore(cfg.DataPath, l)
	case config.PersistenceTypeRedis:
		return redis.NewRedisStore(&redis.RedisConfig{Address: cfg.RedisAddress}, l)
	default:
		return nil, fmt.Errorf("unsupported persistence type: %s", cfg.PersistenceType)
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
