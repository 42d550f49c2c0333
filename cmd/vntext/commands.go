// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/dmdpanel/vntext/encoding/unicode"
	"github.com/dmdpanel/vntext/encoding/viscii"
)

type encodeCmd struct {
	Upper bool     `short:"u" help:"Uppercase the VISCII result."`
	NUL   bool     `name:"nul" help:"Append a terminating zero byte for display drivers."`
	Files []string `arg:"" optional:"" type:"existingfile" help:"UTF-8 input files."`
}

func (c *encodeCmd) Run(g *Globals) error {
	return g.run(os.Stdin, os.Stdout, c.Files, ".viscii", func(name string, src []byte) ([]byte, error) {
		if err := g.checkUTF8(name, src); err != nil {
			return nil, err
		}
		return encodeVISCII(src, c.Upper, c.NUL)
	})
}

func encodeVISCII(src []byte, upper, nul bool) ([]byte, error) {
	if nul {
		return viscii.DisplayBytes(src, upper), nil
	}
	var t transform.Transformer = viscii.VISCII.NewEncoder()
	if upper {
		t = transform.Chain(t, viscii.UpperCaser())
	}
	return io.ReadAll(transform.NewReader(bytes.NewReader(src), t))
}

type decodeCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"VISCII input files."`
}

func (c *decodeCmd) Run(g *Globals) error {
	return g.run(os.Stdin, os.Stdout, c.Files, ".txt", func(name string, src []byte) ([]byte, error) {
		return decodeVISCII(src)
	})
}

func decodeVISCII(src []byte) ([]byte, error) {
	return io.ReadAll(transform.NewReader(bytes.NewReader(src), viscii.VISCII.NewDecoder()))
}

type toUTF16Cmd struct {
	Order string   `default:"le" enum:"le,be" help:"Byte order of the output (${enum})."`
	BOM   bool     `name:"bom" help:"Start the output with a byte order mark."`
	Files []string `arg:"" optional:"" type:"existingfile" help:"UTF-8 input files."`
}

func (c *toUTF16Cmd) Run(g *Globals) error {
	return g.run(os.Stdin, os.Stdout, c.Files, ".utf16", func(name string, src []byte) ([]byte, error) {
		if err := g.checkUTF8(name, src); err != nil {
			return nil, err
		}
		return toUTF16(src, byteOrder(c.Order), c.BOM), nil
	})
}

func toUTF16(src []byte, order binary.ByteOrder, bom bool) []byte {
	units := make([]uint16, unicode.UTF8ToUTF16Len(src))
	n := unicode.UTF8ToUTF16(units, src)
	return unicode.AppendUTF16Bytes(nil, units[:n], order, bom)
}

type fromUTF16Cmd struct {
	Order string   `default:"le" enum:"le,be" help:"Byte order assumed when the input has no byte order mark (${enum})."`
	Files []string `arg:"" optional:"" type:"existingfile" help:"UTF-16 input files."`
}

func (c *fromUTF16Cmd) Run(g *Globals) error {
	return g.run(os.Stdin, os.Stdout, c.Files, ".txt", func(name string, src []byte) ([]byte, error) {
		return g.fromUTF16(name, src, byteOrder(c.Order))
	})
}

func (g *Globals) fromUTF16(name string, src []byte, def binary.ByteOrder) ([]byte, error) {
	order, n := unicode.SniffByteOrder(src, def)
	src = src[n:]
	if len(src)%2 != 0 {
		Logger().Warn("odd trailing byte ignored", zap.String("input", name), zap.Int("size", len(src)))
	}
	units := unicode.DecodeUTF16Bytes(src, order)
	if err := unicode.CheckUTF16(units); err != nil {
		if g.Strict {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		Logger().Warn("malformed input replaced", zap.String("input", name), zap.Error(err))
	}
	dst := make([]byte, unicode.UTF16ToUTF8Len(units))
	m := unicode.UTF16ToUTF8(dst, units)
	return dst[:m], nil
}

type upperCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"VISCII input files."`
}

func (c *upperCmd) Run(g *Globals) error {
	return g.run(os.Stdin, os.Stdout, c.Files, ".viscii", func(name string, src []byte) ([]byte, error) {
		return upperVISCII(src)
	})
}

func upperVISCII(src []byte) ([]byte, error) {
	return io.ReadAll(transform.NewReader(bytes.NewReader(src), viscii.UpperCaser()))
}

type measureCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"UTF-8 input files."`
}

func (c *measureCmd) Run(g *Globals) error {
	return g.measure(os.Stdin, os.Stdout, c.Files)
}

// measure prints, for every input, the sizes reported by the measuring entry
// points of each conversion.
func (g *Globals) measure(stdin io.Reader, stdout io.Writer, files []string) error {
	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tUTF-8\tVISCII\tUTF-16 UNITS\tVALID")
	row := func(name string, src []byte) {
		units := unicode.UTF8ToUTF16Len(src)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%t\n", name, len(src), viscii.UTF8ToVISCIILen(src), units, unicode.ValidUTF8(src))
	}
	if len(files) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		row(stdinName, src)
	}
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		row(name, src)
	}
	return tw.Flush()
}

func byteOrder(s string) binary.ByteOrder {
	if s == "be" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
