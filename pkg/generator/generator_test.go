package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizchain/quizchain-go/pkg/config"
	"github.com/quizchain/quizchain-go/pkg/types"
)

func Test_LocalGenerator(t *testing.T) {
	lg := NewLocalGenerator(zap.NewNop())
	ctx := context.Background()

	t.Run("produces valid questions", func(t *testing.T) {
		q, err := lg.GenerateQuestion(ctx)
		require.NoError(t, err)
		require.NoError(t, validateGenerated(q))
		require.NotEmpty(t, q.Options)
	})

	t.Run("rotates through the bank", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < len(questionBank); i++ {
			q, err := lg.GenerateQuestion(ctx)
			require.NoError(t, err)
			seen[q.Question] = true
		}
		require.Greater(t, len(seen), 1)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := lg.GenerateQuestion(cancelled)
		require.Error(t, err)
	})

	t.Run("returned options are a copy", func(t *testing.T) {
		q, err := lg.GenerateQuestion(ctx)
		require.NoError(t, err)
		original := q.Options[0]
		q.Options[0] = "mutated"

		// Drain a full rotation to land on the same bank entry again
		for i := 0; i < len(questionBank); i++ {
			next, err := lg.GenerateQuestion(ctx)
			require.NoError(t, err)
			if next.Question == q.Question {
				require.Equal(t, original, next.Options[0])
			}
		}
	})
}

func Test_HTTPGenerator(t *testing.T) {
	newConfig := func(url string) *config.GeneratorConfig {
		return &config.GeneratorConfig{
			Mode:              config.GeneratorModeHTTP,
			URL:               url,
			RequestTimeout:    5 * time.Second,
			RequestsPerSecond: 1000, // no throttling in tests
		}
	}

	t.Run("fetches a question", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			_ = json.NewEncoder(w).Encode(&types.GeneratedQuestion{
				Question:   "What is 2+2?",
				Options:    []string{"3", "4", "5"},
				Answer:     "4",
				Difficulty: 1,
				Category:   "math",
			})
		}))
		defer server.Close()

		hg, err := NewHTTPGenerator(newConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		q, err := hg.GenerateQuestion(context.Background())
		require.NoError(t, err)
		require.Equal(t, "4", q.Answer)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(&types.GeneratedQuestion{
				Question: "Retry me?",
				Answer:   "yes",
			})
		}))
		defer server.Close()

		hg, err := NewHTTPGenerator(newConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		q, err := hg.GenerateQuestion(context.Background())
		require.NoError(t, err)
		require.Equal(t, "yes", q.Answer)
		require.Equal(t, int32(3), calls.Load())
	})

	t.Run("exhausted retries surface ErrContentGeneration", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		hg, err := NewHTTPGenerator(newConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = hg.GenerateQuestion(context.Background())
		require.ErrorIs(t, err, ErrContentGeneration)
	})

	t.Run("rejects incomplete content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(&types.GeneratedQuestion{Question: "No answer here"})
		}))
		defer server.Close()

		hg, err := NewHTTPGenerator(newConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = hg.GenerateQuestion(context.Background())
		require.ErrorIs(t, err, ErrContentGeneration)
	})

	t.Run("requires a url", func(t *testing.T) {
		_, err := NewHTTPGenerator(&config.GeneratorConfig{Mode: config.GeneratorModeHTTP}, zap.NewNop())
		require.Error(t, err)
	})
}

func Test_NewQuestionGenerator(t *testing.T) {
	local, err := NewQuestionGenerator(&config.GeneratorConfig{Mode: config.GeneratorModeLocal}, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, &LocalGenerator{}, local)

	_, err = NewQuestionGenerator(&config.GeneratorConfig{Mode: "carrier-pigeon"}, zap.NewNop())
	require.Error(t, err)
}
