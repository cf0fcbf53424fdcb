package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	executed *int64
	err      error
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.executed, 1)
	return &countingResult{err: j.err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var executed int64
	const jobs = 20
	for i := 0; i < jobs; i++ {
		pool.Submit(&countingJob{executed: &executed})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("got %d results, want %d", len(results), jobs)
	}
	if got := atomic.LoadInt64(&executed); got != jobs {
		t.Errorf("executed %d jobs, want %d", got, jobs)
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int64
	pool.Submit(&countingJob{executed: &executed})
	pool.Submit(&countingJob{executed: &executed, err: errors.New("boom")})
	pool.Submit(&countingJob{executed: &executed})

	results := pool.Wait()
	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("got %d failed results, want 1", failed)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var executed int64
	pool.Submit(&countingJob{executed: &executed})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

type slowJob struct{ started chan struct{} }

func (j *slowJob) Execute(ctx context.Context) Result {
	close(j.started)
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
	return &countingResult{err: ctx.Err()}
}

func TestPool_ShutdownCancelsWork(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	job := &slowJob{started: make(chan struct{})}
	pool.Submit(job)
	<-job.started

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not cancel the running job")
	}
}

func TestEngineLimiter_NilIsUnlimited(t *testing.T) {
	var limiter *EngineLimiter
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	for i := 0; i < 100; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("nil limiter Wait: %v", err)
		}
	}
}

func TestNewEngineLimiter_DisabledForZeroRate(t *testing.T) {
	if l := NewEngineLimiter(0, 4); l != nil {
		t.Error("expected nil limiter for rate 0")
	}
	if l := NewEngineLimiter(2.5, 4); l == nil {
		t.Error("expected limiter for positive rate")
	}
}
