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

// checkPartition verifies the split contract and the multiset invariant.
func checkPartition[T hwy.Lanes](t *testing.T, input []T, pivot T, ord Order[T]) {
	t.Helper()
	data := slices.Clone(input)
	split := partition(data, pivot, ord)

	for i := 0; i < split; i++ {
		if !ord.Less(data[i], pivot) {
			t.Fatalf("n=%d split=%d: data[%d]=%v does not sort before pivot %v", len(data), split, i, data[i], pivot)
		}
	}
	for i := split; i < len(data); i++ {
		if ord.Less(data[i], pivot) {
			t.Fatalf("n=%d split=%d: data[%d]=%v sorts before pivot %v", len(data), split, i, data[i], pivot)
		}
	}

	want := sortedWith(input, ord)
	got := sortedWith(data, ord)
	if !slices.Equal(want, got) {
		t.Fatalf("n=%d: partition changed the multiset of keys", len(data))
	}
}

// Every length from empty up to several vectors exercises the scalar
// fallback, the remainder boundary pass and the vector main loop.
func TestPartitionAllLengths(t *testing.T) {
	lanes := hwy.MaxLanes[int32]()
	maxN := 6*lanes + 3
	if maxN < 40 {
		maxN = 40
	}

	for n := 0; n <= maxN; n++ {
		data := make([]int32, n)
		for i := range data {
			data[i] = int32(rand.Intn(16))
		}
		checkPartition(t, data, 8, Ascending[int32]{})
		checkPartition(t, data, 8, Descending[int32]{})
		checkPartition(t, data, 0, Ascending[int32]{})
		checkPartition(t, data, 15, Ascending[int32]{})
	}
}

func TestPartitionLarge(t *testing.T) {
	for _, n := range []int{1000, 4096, 65537} {
		data := make([]int64, n)
		for i := range data {
			data[i] = rand.Int63n(1 << 20)
		}
		pivot := data[rand.Intn(n)]
		checkPartition(t, data, pivot, Ascending[int64]{})
		checkPartition(t, data, pivot, Descending[int64]{})
	}
}

func TestPartitionScalarTierMatches(t *testing.T) {
	restore := setBindingForTest(binding{level: hwy.CurrentLevel(), width: hwy.CurrentWidth(), useVector: false})
	defer restore()

	for _, n := range []int{0, 1, 37, 512, 5000} {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rand.Uint32() % 64
		}
		checkPartition(t, data, 32, Ascending[uint32]{})
	}
}

func TestEqualPrefix(t *testing.T) {
	// All keys >= pivot, which is the precondition equalPrefix runs under.
	data := []int32{5, 9, 5, 7, 5, 5, 8, 5, 6, 5, 5, 5, 9, 5, 5, 5, 5, 7}
	eq := equalPrefix(data, 5, Ascending[int32]{})
	if eq != 12 {
		t.Fatalf("equalPrefix = %d, want 12", eq)
	}
	for i := 0; i < eq; i++ {
		if data[i] != 5 {
			t.Fatalf("data[%d] = %d, want 5", i, data[i])
		}
	}
	for i := eq; i < len(data); i++ {
		if data[i] == 5 {
			t.Fatalf("data[%d] = 5 beyond the equal prefix", i)
		}
	}
}

func TestEqualPrefixLongRun(t *testing.T) {
	data := make([]uint64, 10000)
	for i := range data {
		data[i] = 3
	}
	data[9000] = 4
	eq := equalPrefix(data, 3, Ascending[uint64]{})
	if eq != 9999 {
		t.Fatalf("equalPrefix = %d, want 9999", eq)
	}
}

func TestRangeAllEquiv(t *testing.T) {
	same := make([]int32, 1000)
	for i := range same {
		same[i] = -4
	}
	if !rangeAllEquiv(same, -4, Ascending[int32]{}) {
		t.Fatal("rangeAllEquiv(constant) = false")
	}
	same[999] = -3
	if rangeAllEquiv(same, -4, Ascending[int32]{}) {
		t.Fatal("rangeAllEquiv missed a differing key in the tail")
	}
	same[999] = -4
	same[0] = 0
	if rangeAllEquiv(same, -4, Ascending[int32]{}) {
		t.Fatal("rangeAllEquiv missed a differing key at the front")
	}
}
