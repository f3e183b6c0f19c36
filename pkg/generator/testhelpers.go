package generator

import (
	"context"
	"fmt"
	"sync"

	"github.com/quizchain/quizchain-go/pkg/types"
)

// FakeGenerator is a scriptable IQuestionGenerator for testing. Indexes in
// FailAt make the corresponding call (zero-based, across the generator's
// lifetime) fail with ErrContentGeneration; FailAll makes every call fail.
type FakeGenerator struct {
	mu sync.Mutex

	FailAll bool
	FailAt  map[int]bool

	calls int
}

func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{FailAt: make(map[int]bool)}
}

var _ IQuestionGenerator = (*FakeGenerator)(nil)

func (fg *FakeGenerator) GenerateQuestion(ctx context.Context) (*types.GeneratedQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fg.mu.Lock()
	seq := fg.calls
	fg.calls++
	failed := fg.FailAll || fg.FailAt[seq]
	fg.mu.Unlock()

	if failed {
		return nil, fmt.Errorf("%w: scripted failure at call %d", ErrContentGeneration, seq)
	}

	return &types.GeneratedQuestion{
		Question:   fmt.Sprintf("What is the answer to question %d?", seq),
		Options:    []string{"alpha", "beta", "gamma", "delta"},
		Answer:     fmt.Sprintf("answer-%d", seq),
		Difficulty: uint8(seq%3 + 1),
		Category:   "test",
	}, nil
}

// Calls returns how many generation attempts were made
func (fg *FakeGenerator) Calls() int {
	fg.mu.Lock()
	defer fg.mu.Unlock()
	return fg.calls
}
