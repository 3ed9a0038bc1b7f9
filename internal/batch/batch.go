// Package batch reads file contents in bounded-size groups so that peak open
// file handles and in-flight memory stay proportional to the batch size, not
// to the total file set.
package batch

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Mode selects how reads inside one call are scheduled.
type Mode int

const (
	// Concurrent reads each group of batchSize paths in parallel,
	// one group at a time.
	Concurrent Mode = iota
	// Sequential reads paths one by one, in order, on the calling goroutine.
	Sequential
)

// FileContent holds the full contents of one selected file. The bytes are
// never mutated after the read and live only for the duration of one call.
type FileContent struct {
	Path  string
	Bytes []byte
}

// ReadError reports a file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ReadAll reads every path and returns the contents in the order given.
//
// In Concurrent mode the paths are split into consecutive groups of at most
// batchSize; all reads within a group run in parallel and the next group does
// not start until every read in the current one has settled, so at most
// batchSize files are open at any instant. In Sequential mode batchSize is
// ignored and no goroutines are spawned.
//
// The first failed read aborts the whole call: no partial result is returned
// and nothing is retried.
func ReadAll(ctx context.Context, paths []string, batchSize int, mode Mode) ([]FileContent, error) {
	if mode == Sequential {
		return readSequential(paths)
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be at least 1, got %d", batchSize)
	}

	contents := make([]FileContent, 0, len(paths))
	for start := 0; start < len(paths); start += batchSize {
		group := paths[start:min(start+batchSize, len(paths))]

		// Indexes are unique per goroutine, so the result slice
		// needs no mutex.
		results := make([]FileContent, len(group))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(len(group))

		for i, path := range group {
			i, path := i, path
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return &ReadError{Path: path, Err: err}
				}
				results[i] = FileContent{Path: path, Bytes: data}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		contents = append(contents, results...)
	}
	return contents, nil
}

func readSequential(paths []string) ([]FileContent, error) {
	contents := make([]FileContent, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		contents = append(contents, FileContent{Path: path, Bytes: data})
	}
	return contents, nil
}
