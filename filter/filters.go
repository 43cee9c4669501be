package filter

import (
	"context"
	"sync"

	"github.com/clashlens/clashlens/roster"
)

// Package-level convenience surface backed by a shared cached compiler and a
// shared evaluator, for callers that do not need their own Manager.
var (
	defaultCompiler  Compiler
	defaultEvaluator *ConcurrentEvaluator
	defaultOnce      sync.Once
)

func defaults() (Compiler, *ConcurrentEvaluator) {
	defaultOnce.Do(func() {
		defaultCompiler = NewExprCompiler(WithCache(100))
		defaultEvaluator = NewConcurrentEvaluator()
	})
	return defaultCompiler, defaultEvaluator
}

// CompileFilter compiles a filter expression using the shared compiler.
func CompileFilter(expression string) (CompiledFilter, error) {
	compiler, _ := defaults()
	return compiler.Compile(expression)
}

// EvaluateFilters compiles and evaluates a set of named filter expressions
// against the members, returning the matches per filter name.
func EvaluateFilters(ctx context.Context, filters map[string]string, members []roster.MemberInfo) (map[string][]roster.MemberInfo, error) {
	compiler, evaluator := defaults()

	compiled := make(map[string]CompiledFilter, len(filters))
	for name, expression := range filters {
		filter, err := compiler.Compile(expression)
		if err != nil {
			return nil, &CompilationError{
				Expression: expression,
				Reason:     "failed to compile filter '" + name + "'",
				Position:   -1,
				Err:        err,
			}
		}
		compiled[name] = filter
	}

	return evaluator.EvaluateBatch(ctx, compiled, members)
}
