package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/types"
)

const maxGenerationRetries = 3

// generateRequest is the wire request to the content service.
type generateRequest struct {
	Count int `json:"count"`
}

// HTTPGenerator fetches question content from an external service. Requests
// are rate limited and retried with exponential backoff; a response that
// still fails after the retry budget surfaces as ErrContentGeneration.
type HTTPGenerator struct {
	logger  *zap.Logger
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

func NewHTTPGenerator(cfg *config.GeneratorConfig, logger *zap.Logger) (*HTTPGenerator, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("generator url cannot be empty")
	}

	return &HTTPGenerator{
		logger:  logger,
		url:     cfg.URL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

var _ IQuestionGenerator = (*HTTPGenerator)(nil)

func (hg *HTTPGenerator) GenerateQuestion(ctx context.Context) (*types.GeneratedQuestion, error) {
	var generated *types.GeneratedQuestion

	operation := func() error {
		if err := hg.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		q, err := hg.fetchQuestion(ctx)
		if err != nil {
			hg.logger.Sugar().Warnw("GenerateQuestion: request failed, retrying",
				zap.String("url", hg.url),
				zap.Error(err),
			)
			return err
		}
		generated = q
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxGenerationRetries), ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentGeneration, err)
	}
	return generated, nil
}

func (hg *HTTPGenerator) fetchQuestion(ctx context.Context) (*types.GeneratedQuestion, error) {
	body, err := json.Marshal(&generateRequest{Count: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hg.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("content service returned status %d", resp.StatusCode)
	}

	var q types.GeneratedQuestion
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if err := validateGenerated(&q); err != nil {
		return nil, err
	}
	return &q, nil
}
