// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OpenMany opens paths concurrently with the same options. Results keep the
// order of paths. The first failure cancels the files not yet started and
// is returned with its path.
//
// Recordings that would share a resampled copy (the same path listed twice,
// or take1.wav next to take1.aiff) are opened one after another, so no two
// goroutines write the same file. Each gets its own SoundFile.
//
// Example:
//
//	files, err := soundgrid.OpenMany(ctx, paths, soundgrid.WithResampleFreq(16000))
//	if err != nil {
//	    return err
//	}
//	for _, sf := range files {
//	    fmt.Println(sf.WavPath(), sf.MsLen())
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*SoundFile, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*SoundFile, len(paths))
	for _, batch := range groupBySibling(paths) {
		g.Go(func() error {
			for _, i := range batch {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				sf, err := Open(paths[i], opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", paths[i], err)
				}

				results[i] = sf
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// groupBySibling returns the indexes of paths grouped by <dir>/<stem>, the
// prefix every resampled copy is named after. Groups keep input order.
func groupBySibling(paths []string) [][]int {
	var groups [][]int
	seen := make(map[string]int, len(paths))

	for i, path := range paths {
		key := filepath.Join(filepath.Dir(path), stem(path))
		if g, ok := seen[key]; ok {
			groups[g] = append(groups[g], i)
			continue
		}

		seen[key] = len(groups)
		groups = append(groups, []int{i})
	}

	return groups
}
