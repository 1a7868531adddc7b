// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats_test

import (
	"fmt"

	"github.com/aclements/likesplot/stats"
)

func ExampleSummarize() {
	f, err := stats.Summarize([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%+v\n", f)
	// Output:
	// {Min:1 Q1:3.25 Median:5.5 Q3:7.75 Max:10}
}
