// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Vntext converts text between UTF-8, UTF-16 and VISCII for LED matrix
// displays.
//
// Usage:
//
//	vntext encode [--upper] [--nul] [file ...]
//	vntext decode [file ...]
//	vntext to-utf16 [--order=le|be] [--bom] [file ...]
//	vntext from-utf16 [--order=le|be] [file ...]
//	vntext upper [file ...]
//	vntext measure [file ...]
//
// With no files, standard input is converted to standard output. With
// --output, each input file is converted concurrently into that directory.
package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Globals holds the flags shared by every command.
type Globals struct {
	LogLevel string `default:"warn" enum:"debug,info,warn,error" env:"VNTEXT_LOG_LEVEL" help:"Log level (${enum})."`
	LogJSON  bool   `name:"log-json" help:"Log JSON lines instead of console text."`
	Format   string `short:"f" default:"auto" enum:"auto,raw,hex,c" env:"VNTEXT_FORMAT" help:"Output format (${enum}). auto writes hex to a terminal and raw bytes elsewhere."`
	Output   string `short:"o" type:"path" help:"Write one result per input file into this directory."`
	Strict   bool   `help:"Fail on malformed input instead of substituting U+FFFD."`
	Jobs     int    `short:"j" default:"4" help:"Number of files converted concurrently."`
}

var cli struct {
	Globals

	Encode    encodeCmd    `cmd:"" help:"Convert UTF-8 text to VISCII."`
	Decode    decodeCmd    `cmd:"" help:"Convert VISCII text to UTF-8."`
	ToUTF16   toUTF16Cmd   `cmd:"" name:"to-utf16" help:"Convert UTF-8 text to UTF-16."`
	FromUTF16 fromUTF16Cmd `cmd:"" name:"from-utf16" help:"Convert UTF-16 text to UTF-8."`
	Upper     upperCmd     `cmd:"" help:"Uppercase VISCII text."`
	Measure   measureCmd   `cmd:"" help:"Print the converted size of UTF-8 input in every encoding."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("vntext"),
		kong.Description("Convert text between UTF-8, UTF-16 and VISCII."),
		kong.UsageOnError(),
	)

	l, err := newLogger(cli.LogLevel, cli.LogJSON)
	ctx.FatalIfErrorf(err)
	SetLogger(l)
	defer l.Sync()

	if err := ctx.Run(&cli.Globals); err != nil {
		Logger().Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		ctx.FatalIfErrorf(err)
	}
}
