package filter

import (
	"context"

	"github.com/clashlens/clashlens/roster"
)

// Filter defines the basic interface for member filters
type Filter interface {
	// Evaluate checks if a member matches the filter criteria
	Evaluate(member roster.MemberInfo) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string

	// IsThreadSafe indicates if the filter can be evaluated concurrently
	IsThreadSafe() bool
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against roster members
type Evaluator interface {
	// Evaluate evaluates a filter against all members
	Evaluate(ctx context.Context, filter CompiledFilter, members []roster.MemberInfo) ([]roster.MemberInfo, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	// EvaluateBatch evaluates multiple filters against members concurrently
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, members []roster.MemberInfo) (map[string][]roster.MemberInfo, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []roster.MemberInfo
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit submits work to the pool
	Submit(work func()) error

	// Stop gracefully stops the worker pool
	Stop(ctx context.Context) error
}
