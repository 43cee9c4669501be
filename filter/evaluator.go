package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/clashlens/clashlens/roster"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.batchSize = size
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator interfaces
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate evaluates a single filter against all members
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, members []roster.MemberInfo) ([]roster.MemberInfo, error) {
	if len(members) == 0 {
		return []roster.MemberInfo{}, nil
	}

	// Small rosters are not worth the concurrency overhead
	if len(members) < e.batchSize {
		return e.evaluateSequential(filter, members), nil
	}

	return e.evaluateConcurrent(ctx, filter, members)
}

// EvaluateBatch evaluates multiple filters against members concurrently
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, members []roster.MemberInfo) (map[string][]roster.MemberInfo, error) {
	if len(filters) == 0 || len(members) == 0 {
		return make(map[string][]roster.MemberInfo), nil
	}

	results := make(map[string][]roster.MemberInfo)
	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		name, filter := name, filter // pin per-iteration copies; required while go.mod declares go < 1.22
		wg.Add(1)

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultChan <- BatchResult{
					FilterName: name,
					Error:      ctx.Err(),
				}
				return
			default:
			}

			matches, err := e.Evaluate(ctx, filter, members)
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    matches,
				Error:      err,
			}
		})

		if err != nil {
			wg.Done()
			// Pool is stopped, return early
			return nil, err
		}
	}

	// Close result channel when all work is done
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results
	for result := range resultChan {
		if result.Error != nil {
			// Skip filters that error
			continue
		}
		results[result.FilterName] = result.Matches
	}

	return results, nil
}

// evaluateSequential evaluates a filter against all members sequentially
func (e *ConcurrentEvaluator) evaluateSequential(filter CompiledFilter, members []roster.MemberInfo) []roster.MemberInfo {
	matches := make([]roster.MemberInfo, 0, len(members)/10) // Pre-allocate with estimate
	for _, member := range members {
		if filter.Evaluate(member) {
			matches = append(matches, member)
		}
	}
	return matches
}

// evaluateConcurrent evaluates a filter against members using the worker pool
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, members []roster.MemberInfo) ([]roster.MemberInfo, error) {
	chunkSize := max(len(members)/e.workerCount, e.batchSize)

	type chunkResult struct {
		matches []roster.MemberInfo
		order   int
	}

	resultChan := make(chan chunkResult, (len(members)/chunkSize)+1)
	var wg sync.WaitGroup

	// Process chunks concurrently
	chunkIndex := 0
	for i := 0; i < len(members); i += chunkSize {
		end := min(i+chunkSize, len(members))

		wg.Add(1)
		chunk := members[i:end]
		index := chunkIndex
		chunkIndex++

		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			matches := make([]roster.MemberInfo, 0, len(chunk)/10)
			for _, member := range chunk {
				if filter.Evaluate(member) {
					matches = append(matches, member)
				}
			}

			resultChan <- chunkResult{matches: matches, order: index}
		})

		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	// Wait for completion
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make(map[int][]roster.MemberInfo)
	for result := range resultChan {
		results[result.order] = result.matches
	}

	// Check context one more time
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Combine results in order
	totalMatches := 0
	for i := 0; i < len(results); i++ {
		totalMatches += len(results[i])
	}

	allMatches := make([]roster.MemberInfo, 0, totalMatches)
	for i := 0; i < len(results); i++ {
		allMatches = append(allMatches, results[i]...)
	}

	return allMatches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
