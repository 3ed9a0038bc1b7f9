// Package hashing orchestrates the resolve → read → digest pipeline behind a
// pair of entry points: Hash for concurrent batched I/O and HashSync for
// plain one-at-a-time reads. Both run the same pipeline and always produce
// the same digest for the same request and filesystem state.
package hashing

import (
	"context"
	"fmt"

	"fsum/internal/batch"
	"fsum/internal/digest"
	"fsum/internal/observ"
	"fsum/internal/resolve"
)

// Request describes one hashing invocation. It is never mutated by the
// pipeline and carries no state across calls.
type Request struct {
	// Patterns are glob patterns, or verbatim paths when ExactPaths is set.
	Patterns []string

	// Algorithm selects the digest; must be one of the supported set.
	Algorithm digest.Algorithm

	// BatchSize bounds how many files are read concurrently. Must be >= 1.
	BatchSize int

	// ExactPaths disables glob expansion.
	ExactPaths bool

	// Timer, when non-nil, records per-phase durations.
	Timer *observ.Timer
}

// Hash resolves, reads and digests with concurrent batched reads.
func Hash(ctx context.Context, req Request) (string, error) {
	return run(ctx, req, batch.Concurrent)
}

// HashSync is the blocking variant: no goroutines, one read at a time.
func HashSync(req Request) (string, error) {
	return run(context.Background(), req, batch.Sequential)
}

func run(ctx context.Context, req Request, mode batch.Mode) (string, error) {
	// Validate before touching the filesystem: an invalid request must
	// fail identically whether or not the selected files exist.
	if err := req.Algorithm.Validate(); err != nil {
		return "", err
	}
	if req.BatchSize < 1 {
		return "", fmt.Errorf("batch size must be at least 1, got %d", req.BatchSize)
	}

	phase := req.Timer.Begin("resolve")
	paths, err := resolve.Resolve(req.Patterns, req.ExactPaths)
	if err != nil {
		return "", err
	}
	req.Timer.End(phase, fmt.Sprintf("%d files", len(paths)))

	phase = req.Timer.Begin("read")
	contents, err := batch.ReadAll(ctx, paths, req.BatchSize, mode)
	if err != nil {
		return "", err
	}
	var total int
	chunks := make([][]byte, len(contents))
	for i, fc := range contents {
		chunks[i] = fc.Bytes
		total += len(fc.Bytes)
	}
	req.Timer.End(phase, fmt.Sprintf("%d bytes", total))

	phase = req.Timer.Begin("digest")
	sum, err := digest.Compute(chunks, req.Algorithm)
	req.Timer.End(phase, string(req.Algorithm))
	return sum, err
}
