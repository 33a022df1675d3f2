package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runParallel applies fn to every path with at most jobs goroutines. jobs <= 0
// means GOMAXPROCS. Results are stored by index, so their order matches paths.
func runParallel(ctx context.Context, paths []string, jobs int, fn func(path string) FormatResult) ([]FormatResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = fn(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
