// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wordfreq

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pierrec/lz4"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/logutil"
)

// ctx is checked once per checkEvery tokens while scanning a file.
const checkEvery = 4096

// Loader reads whitespace separated tokens from files.
type Loader struct {
	fs      afero.Fs
	workers int
}

// NewLoader returns a Loader reading from fs with at most workers files
// open at a time.
func NewLoader(ctx context.Context, fs afero.Fs, workers int) (*Loader, error) {
	if workers <= 0 {
		return nil, moerr.NewInvalidArg(ctx, "workers", workers)
	}
	return &Loader{fs: fs, workers: workers}, nil
}

// Load returns the tokens of every path, in path order and then file
// order. Files ending in .lz4 or .gz are decompressed. The first error in
// path order is returned.
func (l *Loader) Load(ctx context.Context, paths []string) (*array.DynamicArray[string], error) {
	n := l.workers
	if len(paths) < n {
		n = len(paths)
	}
	if n == 0 {
		return array.New[string](0), nil
	}
	pool, err := ants.NewPool(n)
	if err != nil {
		return nil, moerr.NewInternalError(ctx, "create loader pool: %v", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	results := make([][]string, len(paths))
	errs := make([]error, len(paths))
	for i := range paths {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = l.readFile(ctx, paths[i])
		}); err != nil {
			wg.Done()
			errs[i] = moerr.NewInternalError(ctx, "submit %s: %v", paths[i], err)
			break
		}
	}
	wg.Wait()

	total := 0
	for i := range paths {
		if errs[i] != nil {
			return nil, errs[i]
		}
		total += len(results[i])
	}
	tokens := array.New[string](total)
	for _, rs := range results {
		for _, tok := range rs {
			tokens.Append(tok)
		}
	}
	logutil.Debug("tokens loaded",
		zap.Int("files", len(paths)),
		zap.Int("tokens", total))
	return tokens, nil
}

func (l *Loader) readFile(ctx context.Context, path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, moerr.ConvertGoError(ctx, err)
	}
	defer f.Close()

	r, err := decompress(path, f)
	if err != nil {
		return nil, moerr.NewInvalidInput(ctx, "%s: %v", path, err)
	}
	return scanTokens(ctx, path, r)
}

func decompress(path string, r io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".lz4"):
		return lz4.NewReader(r), nil
	case strings.HasSuffix(path, ".gz"), strings.HasSuffix(path, ".gzip"):
		return gzip.NewReader(r)
	default:
		return r, nil
	}
}

func scanTokens(ctx context.Context, path string, r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
		if len(tokens)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, moerr.NewUnexpectedEOF(ctx, path)
		}
		return nil, moerr.NewInvalidInput(ctx, "%s: %v", path, err)
	}
	return tokens, nil
}
