package ai

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	"github.com/johnquangdev/candidate-screening/pkg/jobcontext"
)

const jobTypeScoring = "scoring"

// Scorer scores one candidate
type Scorer interface {
	ScoreCandidate(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error)
}

// Task is the handle of one background scoring run
type Task struct {
	ID          uuid.UUID
	CandidateID uuid.UUID

	done     chan struct{}
	err      error
	analysis *entities.Analysis
}

// Done is closed when the task has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the task error; only meaningful after Done is closed
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Analysis returns the stored analysis once the task succeeded
func (t *Task) Analysis() *entities.Analysis {
	select {
	case <-t.done:
		return t.analysis
	default:
		return nil
	}
}

func (t *Task) finish(analysis *entities.Analysis, err error) {
	t.analysis = analysis
	t.err = err
	close(t.done)
}

// Dispatcher runs scoring in the background of the process that accepted
// the submission. It is not a durable queue: pending tasks die with the process.
type Dispatcher struct {
	scorer    Scorer
	semaphore chan struct{}
	timeout   time.Duration
	logger    *zap.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// NewDispatcher creates a dispatcher running at most workers tasks at once
func NewDispatcher(scorer Scorer, workers int, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		scorer:    scorer,
		semaphore: make(chan struct{}, workers),
		timeout:   timeout,
		logger:    logger,
		baseCtx:   ctx,
		cancel:    cancel,
	}
}

// Enqueue schedules scoring for a candidate and returns immediately.
// After Stop the returned task is already failed with ErrDispatcherStopped.
func (d *Dispatcher) Enqueue(candidateID uuid.UUID) *Task {
	task := &Task{
		ID:          uuid.New(),
		CandidateID: candidateID,
		done:        make(chan struct{}),
	}

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		task.finish(nil, usecaseErrors.ErrDispatcherStopped)
		return task
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(task)
	return task
}

func (d *Dispatcher) run(task *Task) {
	defer d.wg.Done()

	var slot int
	select {
	case d.semaphore <- struct{}{}:
		slot = len(d.semaphore)
	case <-d.baseCtx.Done():
		task.finish(nil, usecaseErrors.ErrDispatcherStopped)
		return
	}
	defer func() { <-d.semaphore }()

	ctx, cancel := jobcontext.JobBegin(d.baseCtx, jobcontext.JobMetadata{
		JobID:       task.ID,
		JobType:     jobTypeScoring,
		CandidateID: task.CandidateID,
		WorkerSlot:  slot,
	}, d.timeout)
	defer cancel()

	var analysis *entities.Analysis
	err := jobcontext.JobRun(ctx, func(ctx context.Context) error {
		var err error
		analysis, err = d.scorer.ScoreCandidate(ctx, task.CandidateID)
		return err
	})

	if d.logger != nil {
		if err != nil {
			d.logger.Error("❌ Background scoring failed",
				zap.String("task_id", task.ID.String()),
				zap.String("candidate_id", task.CandidateID.String()),
				zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
				zap.Error(err),
			)
		} else {
			d.logger.Info("✅ Background scoring finished",
				zap.String("task_id", task.ID.String()),
				zap.String("candidate_id", task.CandidateID.String()),
				zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
			)
		}
	}

	task.finish(analysis, err)
}

// Stop rejects new tasks and waits for in-flight ones. When ctx expires first
// the running jobs are cancelled and Stop returns ctx.Err().
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	d.mu.Unlock()

	if d.logger != nil {
		d.logger.Info("🛑 Stopping scoring dispatcher...")
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		if d.logger != nil {
			d.logger.Info("✅ Scoring dispatcher stopped")
		}
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}
