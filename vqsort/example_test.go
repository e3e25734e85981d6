// Copyright 2025 go-vqsort Authors
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

package vqsort_test

import (
	"fmt"

	"github.com/ajroetker/go-vqsort/vqsort"
)

func ExampleSort() {
	keys := []int32{5, 3, 1, 4, 1, 5, 9, 2, 6}
	vqsort.Sort(keys)
	fmt.Println(keys)
	// Output: [1 1 2 3 4 5 5 6 9]
}

func ExampleSortDescending() {
	keys := []int32{5, 3, 1, 4, 1, 5, 9, 2, 6}
	vqsort.SortDescending(keys)
	fmt.Println(keys)
	// Output: [9 6 5 5 4 3 2 1 1]
}

// A 32-bit key with a 32-bit payload packs into one uint64 with the key
// in the high bits; the built-in orders then sort by key first, so no
// custom Order implementation is needed for this common adapter shape.
func Example_keyValuePairs() {
	pack := func(key, value uint32) uint64 {
		return uint64(key)<<32 | uint64(value)
	}

	pairs := []uint64{
		pack(30, 300),
		pack(10, 100),
		pack(20, 200),
	}
	vqsort.Sort(pairs)

	for _, p := range pairs {
		fmt.Printf("key=%d value=%d\n", p>>32, uint32(p))
	}
	// Output:
	// key=10 value=100
	// key=20 value=200
	// key=30 value=300
}

func ExampleMedian() {
	samples := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	fmt.Println(vqsort.Median(samples))
	// Output: 5
}
