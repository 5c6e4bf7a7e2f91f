package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobBegin_SetsMetadata(t *testing.T) {
	candidateID := uuid.New()
	ctx, cancel := JobBegin(context.Background(), JobMetadata{JobType: "scoring", CandidateID: candidateID, WorkerSlot: 2}, time.Second)
	defer cancel()

	meta := GetJobMetadata(ctx)
	assert.NotEqual(t, uuid.Nil, meta.JobID)
	assert.Equal(t, "scoring", meta.JobType)
	assert.Equal(t, candidateID, meta.CandidateID)
	assert.Equal(t, 2, meta.WorkerSlot)
	assert.False(t, meta.StartTime.IsZero())

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestJobBegin_DefaultTimeout(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), JobMetadata{}, 0)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
}

func TestJobRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		calls := 0
		err := JobRun(context.Background(), func(ctx context.Context) error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("error is not retried", func(t *testing.T) {
		calls := 0
		boom := errors.New("connection refused")
		err := JobRun(context.Background(), func(ctx context.Context) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		err := JobRun(context.Background(), func(ctx context.Context) error {
			panic("nil map")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic recovered")
	})

	t.Run("cancelled context skips job", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		err := JobRun(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestGetters_EmptyContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetJobID(ctx)
	assert.False(t, ok)
	assert.Equal(t, -1, GetWorkerSlot(ctx))
	assert.Zero(t, Elapsed(ctx))
}
