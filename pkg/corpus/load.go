package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxParallelReads bounds how many corpus files are read at once.
const maxParallelReads = 8

// Document is one corpus file held in memory.
type Document struct {
	Path string
	Text string
}

// LoadDir reads every regular file in dir whose extension matches ext
// (case-insensitive, e.g. ".txt"). Files are read concurrently but returned
// sorted by name, so training on the result is deterministic. Subdirectories
// are not descended into.
func LoadDir(ctx context.Context, dir, ext string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list corpus directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	docs := make([]Document, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read corpus file: %w", err)
			}
			docs[i] = Document{Path: path, Text: string(data)}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
