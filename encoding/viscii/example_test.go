// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscii_test

import (
	"fmt"

	"github.com/dmdpanel/vntext/encoding/viscii"
)

func ExampleUTF8ToVISCII() {
	src := []byte("Việt Nam 😀")

	dst := make([]byte, viscii.UTF8ToVISCIILen(src))
	n := viscii.UTF8ToVISCII(dst, src)
	fmt.Printf("%d % x\n", n, dst)
	// Output: 10 56 69 ae 74 20 4e 61 6d 20 3f
}

func ExampleUpper() {
	buf := []byte("vi\xaet")
	viscii.Upper(buf)
	fmt.Printf("% x\n", buf)
	// Output: 56 49 8e 54
}
