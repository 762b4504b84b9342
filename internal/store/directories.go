// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-pad-config/internal/config"
	"github.com/MKhiriev/go-pad-config/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm      = 0o750
	probePattern = ".write-probe-*"

	// maxParallelProbes bounds the number of directories checked at once.
	maxParallelProbes = 4
)

type directoryPreparer struct {
	logger *logger.Logger
}

// NewDirectoryPreparer constructs the filesystem-backed [DirectoryPreparer].
func NewDirectoryPreparer(logger *logger.Logger) DirectoryPreparer {
	return &directoryPreparer{logger: logger}
}

func (d *directoryPreparer) Prepare(ctx context.Context, dirs ...config.NamedPath) error {
	errs := make([]error, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelProbes)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if err := prepareDir(dir.Path); err != nil {
				errs[i] = fmt.Errorf("%s %q: %w", dir.Name, dir.Path, err)
				return nil
			}
			d.logger.Debug().
				Str("field", dir.Name).
				Str("path", dir.Path).
				Msg("directory is ready")
			return nil
		})
	}

	// every goroutine reports through errs
	_ = g.Wait()

	return errors.Join(errs...)
}

func prepareDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = os.MkdirAll(path, dirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrNotWritable, err)
		}
	case err != nil:
		return fmt.Errorf("error inspecting directory: %w", err)
	case !info.IsDir():
		return ErrNotDirectory
	}

	probe, err := os.CreateTemp(path, probePattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotWritable, err)
	}
	name := probe.Name()
	if err = probe.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotWritable, err)
	}
	if err = os.Remove(name); err != nil {
		return fmt.Errorf("error removing write probe: %w", err)
	}

	return nil
}
