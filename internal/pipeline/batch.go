package pipeline

import (
	"context"

	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/worker"
)

// Analyzer is the interface the batch processor needs from a pipeline
type Analyzer interface {
	Analyze(ctx context.Context, sub Submission) (*model.Report, error)
}

// AnalyzeJob analyzes one submission inside the worker pool
type AnalyzeJob struct {
	Name       string // manifest entry name, used to locate outputs
	Submission Submission
	Analyzer   Analyzer
}

// Execute runs the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) worker.Result {
	report, err := j.Analyzer.Analyze(ctx, j.Submission)
	return &AnalyzeResult{Name: j.Name, Report: report, Error: err}
}

// AnalyzeResult is the outcome of one batch entry
type AnalyzeResult struct {
	Name   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error { return r.Error }

// BatchProcessor analyzes multiple submissions concurrently. Parallelism
// across submissions multiplies with per-submission OCR parallelism, so
// keep concurrency modest.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// Process runs every submission through the pool and returns all results
func (b *BatchProcessor) Process(ctx context.Context, names []string, subs []Submission) []*AnalyzeResult {
	if len(subs) == 0 {
		return nil
	}

	pool := worker.NewPool(b.concurrency)
	pool.Start()

	for i, sub := range subs {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		pool.Submit(&AnalyzeJob{Name: name, Submission: sub, Analyzer: b.analyzer})
	}

	raw := pool.Wait()
	results := make([]*AnalyzeResult, 0, len(raw))
	for _, r := range raw {
		if ar, ok := r.(*AnalyzeResult); ok {
			results = append(results, ar)
		}
	}
	return results
}
