package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyCandidateID  KeyContext = "candidate_id"
	keyWorkerSlot   KeyContext = "worker_slot"
	keyJobStartTime KeyContext = "job_start_time"
)

// DefaultTimeout bounds a job when the caller passes zero
const DefaultTimeout = 2 * time.Minute

// JobMetadata holds metadata for a job execution
type JobMetadata struct {
	JobID       uuid.UUID
	JobType     string
	CandidateID uuid.UUID
	WorkerSlot  int
	StartTime   time.Time
}

// JobBegin derives a job context with metadata and a timeout.
// The parent should be detached from any request so the job outlives it.
func JobBegin(parentCtx context.Context, meta JobMetadata, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	if meta.JobID == uuid.Nil {
		meta.JobID = uuid.New()
	}
	if meta.StartTime.IsZero() {
		meta.StartTime = time.Now()
	}

	ctx = context.WithValue(ctx, keyJobID, meta.JobID)
	ctx = context.WithValue(ctx, keyJobType, meta.JobType)
	ctx = context.WithValue(ctx, keyCandidateID, meta.CandidateID)
	ctx = context.WithValue(ctx, keyWorkerSlot, meta.WorkerSlot)
	ctx = context.WithValue(ctx, keyJobStartTime, meta.StartTime)

	return ctx, cancel
}

// JobRun executes the job function once with panic recovery.
// Jobs are never retried here; a failed scoring run is re-triggered manually.
func JobRun(ctx context.Context, jobFunc func(context.Context) error) (err error) {
	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before job execution: %w", ctx.Err())
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	return jobFunc(ctx)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetCandidateID extracts the candidate the job works on
func GetCandidateID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyCandidateID).(uuid.UUID)
	return id, ok
}

// GetWorkerSlot extracts the worker slot from context
func GetWorkerSlot(ctx context.Context) int {
	slot, ok := ctx.Value(keyWorkerSlot).(int)
	if !ok {
		return -1
	}
	return slot
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	candidateID, _ := GetCandidateID(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:       jobID,
		JobType:     jobType,
		CandidateID: candidateID,
		WorkerSlot:  GetWorkerSlot(ctx),
		StartTime:   startTime,
	}
}

// Elapsed returns how long the job in ctx has been running
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetJobStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}
