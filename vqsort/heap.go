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

import "github.com/ajroetker/go-highway/hwy"

// heapSort is the guaranteed O(n log n) fallback the driver switches to
// when the recursion budget runs out. It never looks at pivots, so no
// input can degrade it further.
func heapSort[T hwy.Lanes](data []T, ord Order[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, ord)
	}

	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, ord)
	}
}

// siftDown restores the heap property below index i; the "largest" slot
// is the key that sorts last under ord.
func siftDown[T hwy.Lanes](data []T, i, n int, ord Order[T]) {
	for {
		last := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && ord.Less(data[last], data[left]) {
			last = left
		}
		if right < n && ord.Less(data[last], data[right]) {
			last = right
		}
		if last == i {
			return
		}

		data[i], data[last] = data[last], data[i]
		i = last
	}
}
