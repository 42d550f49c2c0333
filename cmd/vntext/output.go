// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

func writeFormatted(w io.Writer, data []byte, format, name string) error {
	var err error
	switch format {
	case "hex":
		_, err = io.WriteString(w, hex.Dump(data))
	case "c":
		_, err = io.WriteString(w, cArray(data, name))
	default:
		_, err = w.Write(data)
	}
	return err
}

func outputExt(ext, format string) string {
	switch format {
	case "hex":
		return ext + ".hex"
	case "c":
		return ".h"
	}
	return ext
}

// cArray renders data as a C array definition for firmware sources.
func cArray(data []byte, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "static const uint8_t %s[%d] = {", cIdent(name), len(data))
	for i, c := range data {
		if i%12 == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02x,", c)
	}
	b.WriteString("\n};\n")
	return b.String()
}

// cIdent derives a C identifier from a file name.
func cIdent(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	id := []byte(base)
	for i, c := range id {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_') {
			id[i] = '_'
		}
	}
	if len(id) == 0 || '0' <= id[0] && id[0] <= '9' {
		id = append([]byte{'_'}, id...)
	}
	return string(id)
}
