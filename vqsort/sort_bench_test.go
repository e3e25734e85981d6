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

package vqsort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func generateUint64(n int) []uint64 {
	data := make([]uint64, n)
	for i := range data {
		data[i] = rand.Uint64()
	}
	return data
}

func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31()
	}
	return data
}

func benchmarkSort[T hwy.Lanes](b *testing.B, ref []T) {
	data := make([]T, len(ref))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

func BenchmarkSort_Int32_1000(b *testing.B) {
	benchmarkSort(b, generateInt32(1000))
}

func BenchmarkSort_Int32_100000(b *testing.B) {
	benchmarkSort(b, generateInt32(100000))
}

func BenchmarkSort_Uint64_1000(b *testing.B) {
	benchmarkSort(b, generateUint64(1000))
}

func BenchmarkSort_Uint64_100000(b *testing.B) {
	benchmarkSort(b, generateUint64(100000))
}

func BenchmarkSort_Uint64_1000000(b *testing.B) {
	benchmarkSort(b, generateUint64(1000000))
}

// Duplicate-heavy input exercises the all-equal fast path.
func BenchmarkSort_Uint64_FewDistinct_100000(b *testing.B) {
	ref := make([]uint64, 100000)
	for i := range ref {
		ref[i] = uint64(rand.Intn(4))
	}
	benchmarkSort(b, ref)
}

// Stdlib comparison point, same data shape as Uint64_100000.
func BenchmarkStdlibSlices_Uint64_100000(b *testing.B) {
	ref := generateUint64(100000)
	data := make([]uint64, len(ref))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func BenchmarkPartition_Uint64_100000(b *testing.B) {
	ref := generateUint64(100000)
	data := make([]uint64, len(ref))
	pivot := ref[len(ref)/2]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		partition(data, pivot, Ascending[uint64]{})
	}
}

func BenchmarkSortSmall_Int32_32(b *testing.B) {
	ref := generateInt32(32)
	var data [32]int32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data[:], ref)
		sortSmall(data[:], Ascending[int32]{})
	}
}
