// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/dmdpanel/vntext/encoding/unicode"
)

const stdinName = "<stdin>"

// A converter turns the contents of one input into one output.
type converter func(name string, src []byte) ([]byte, error)

// run converts stdin, or every file in files, with conv. Files are converted
// concurrently; the conversions share nothing but the read-only code tables.
// Without an output directory the results are written to stdout in the order
// of files.
func (g *Globals) run(stdin io.Reader, stdout io.Writer, files []string, ext string, conv converter) error {
	format := g.format(stdout)
	if len(files) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, err := conv(stdinName, src)
		if err != nil {
			return err
		}
		return writeFormatted(stdout, out, format, "text")
	}

	var paths []string
	if g.Output != "" {
		var err error
		if paths, err = g.outputPaths(files, ext, format); err != nil {
			return err
		}
		if err := os.MkdirAll(g.Output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	results := make([][]byte, len(files))
	var eg errgroup.Group
	eg.SetLimit(max(g.Jobs, 1))
	for i, name := range files {
		i, name := i, name
		eg.Go(func() error {
			src, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			out, err := conv(name, src)
			if err != nil {
				return err
			}
			Logger().Debug("converted",
				zap.String("input", name),
				zap.Int("in", len(src)),
				zap.Int("out", len(out)))
			if g.Output == "" {
				results[i] = out
				return nil
			}
			return writeFile(paths[i], name, out, format)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if g.Output != "" {
		return nil
	}
	for i, out := range results {
		if err := writeFormatted(stdout, out, format, files[i]); err != nil {
			return err
		}
	}
	return nil
}

// outputPaths maps every input file to its file in the output directory.
// Inputs whose names differ only in their directory or extension would write
// the same file, so they are rejected.
func (g *Globals) outputPaths(files []string, ext, format string) ([]string, error) {
	paths := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, name := range files {
		base := filepath.Base(name)
		path := filepath.Join(g.Output, strings.TrimSuffix(base, filepath.Ext(base))+outputExt(ext, format))
		if prev, ok := seen[path]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, name, path)
		}
		seen[path] = name
		paths[i] = path
	}
	return paths, nil
}

func writeFile(path, name string, data []byte, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeFormatted(f, data, format, name); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Logger().Info("wrote output", zap.String("input", name), zap.String("output", path))
	return nil
}

// format resolves "auto" to hex for terminals and raw bytes otherwise.
func (g *Globals) format(stdout io.Writer) string {
	if g.Format != "" && g.Format != "auto" {
		return g.Format
	}
	if g.Output != "" {
		return "raw"
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "hex"
	}
	return "raw"
}

func (g *Globals) checkUTF8(name string, src []byte) error {
	err := unicode.CheckUTF8(src)
	if err == nil {
		return nil
	}
	if g.Strict {
		return fmt.Errorf("%s: %w", name, err)
	}
	Logger().Warn("malformed input replaced", zap.String("input", name), zap.Error(err))
	return nil
}
