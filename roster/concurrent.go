package roster

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Concurrency bounds for profile enrichment
const (
	DefaultConcurrency = 10
	MaxConcurrency     = 20
)

// EnrichResult contains the results of a batch enrichment operation
type EnrichResult struct {
	Requested int
	Enriched  []string
	Failed    []EnrichError
}

// EnrichError contains information about a failed profile fetch
type EnrichError struct {
	MemberTag  string
	MemberName string
	Err        error
}

// Error implements the error interface
func (e EnrichError) Error() string {
	return fmt.Sprintf("failed to enrich member %s (tag: %s): %v", e.MemberName, e.MemberTag, e.Err)
}

// enrichProfiles fetches member profiles with bounded concurrency and folds
// them into the rows in place. Individual failures are collected, never
// propagated: a roster with a few unenriched rows is still useful.
func (o *Operations) enrichProfiles(ctx context.Context, members []MemberInfo) EnrichResult {
	result := EnrichResult{
		Requested: len(members),
	}

	if len(members) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex

	successChan := make(chan string, len(members))
	errorChan := make(chan EnrichError, len(members))

	for i := range members {
		i := i // pin per-iteration copy; required while go.mod declares go < 1.22
		g.Go(func() error {
			member := members[i]
			profile, err := o.client.GetProfileByTag(ctx, member.Tag)
			if err != nil {
				errorChan <- EnrichError{
					MemberTag:  member.Tag,
					MemberName: member.Name,
					Err:        err,
				}
				return nil // Don't stop on individual errors
			}

			mu.Lock()
			members[i].applyProfile(profile)
			mu.Unlock()

			successChan <- member.Tag
			return nil
		})
	}

	g.Wait()
	close(successChan)
	close(errorChan)

	for tag := range successChan {
		result.Enriched = append(result.Enriched, tag)
	}
	for err := range errorChan {
		result.Failed = append(result.Failed, err)
	}

	return result
}
