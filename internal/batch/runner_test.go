package batch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratioSolver/dynamic-ac/pkg/dynamicac"
)

func TestRunnerRunAllRunsEveryJob(t *testing.T) {
	r := NewRunner(4)
	defer r.Shutdown()

	var completed atomic.Int64
	jobs := make([]Job, 0, 8)
	for i := 0; i < 8; i++ {
		jobs = append(jobs, func() {
			completed.Add(1)
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, r.RunAll(ctx, jobs))
	assert.EqualValues(t, 8, completed.Load())
}

func TestRunnerRunsIndependentEngines(t *testing.T) {
	r := NewRunner(4)
	defer r.Shutdown()

	results := make([]bool, 4)
	jobs := make([]Job, 0, 4)
	for i := 0; i < 4; i++ {
		i := i
		jobs = append(jobs, func() {
			e := dynamicac.NewEngine()
			a := e.AddVariable([]int{1, 2, 3})
			b := e.AddVariable([]int{2, 3, 4})
			_, err := e.AddEquality(a, b)
			results[i] = err == nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, r.RunAll(ctx, jobs))

	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestRunnerSubmitAfterShutdown(t *testing.T) {
	r := NewRunner(1)
	r.Shutdown()

	err := r.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrRunnerShutdown)
}
