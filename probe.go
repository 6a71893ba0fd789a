// SPDX-License-Identifier: EPL-2.0

package libaiff

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/musicinmybrain/libaiff2/formats/aiff"
)

// Probe returns the format of the AIFF or AIFF-C file at path.
func Probe(path string) (aiff.Format, error) {
	r, err := aiff.Open(path)
	if err != nil {
		return aiff.Format{}, err
	}
	f := r.Format()

	if err := r.Close(); err != nil {
		return aiff.Format{}, err
	}
	return f, nil
}

// ProbeMany probes every path concurrently, at most runtime.NumCPU() at a
// time. Results are in the order of paths. The first failure cancels the
// remaining probes and is returned with the path that caused it.
func ProbeMany(ctx context.Context, paths ...string) ([]aiff.Format, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]aiff.Format, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			f, err := Probe(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
