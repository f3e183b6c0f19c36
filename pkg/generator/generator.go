package generator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/types"
)

// ErrContentGeneration is returned when the content source produced no usable
// question. Callers treat it as a per-question failure, not a batch failure.
var ErrContentGeneration = errors.New("content generation failed")

// IQuestionGenerator produces quiz question content. Implementations must be
// safe for concurrent use; the orchestrator fans out generation requests.
type IQuestionGenerator interface {
	GenerateQuestion(ctx context.Context) (*types.GeneratedQuestion, error)
}

func NewQuestionGenerator(cfg *config.GeneratorConfig, logger *zap.Logger) (IQuestionGenerator, error) {
	switch cfg.Mode {
	case config.GeneratorModeLocal:
		return NewLocalGenerator(logger), nil
	case config.GeneratorModeHTTP:
		return NewHTTPGenerator(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported generator mode: %s", cfg.Mode)
	}
}

// validateGenerated rejects content the pipeline cannot commit
func validateGenerated(q *types.GeneratedQuestion) error {
	if q == nil {
		return fmt.Errorf("%w: empty response", ErrContentGeneration)
	}
	if q.Question == "" {
		return fmt.Errorf("%w: missing question text", ErrContentGeneration)
	}
	if q.Answer == "" {
		return fmt.Errorf("%w: missing answer", ErrContentGeneration)
	}
	return nil
}
