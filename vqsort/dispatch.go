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
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// binding is the process-wide dispatch decision: which tier of the
// vector layer the kernels run on. It is resolved once, on the first
// sort in the process, and read-only afterward.
type binding struct {
	// level and width mirror what the vector layer bound at startup.
	level hwy.DispatchLevel
	width int

	// useVector gates the vectorized partitioner and scan kernels.
	// False means every kernel takes its scalar path; the result is
	// identical either way.
	useVector bool
}

var (
	bindOnce sync.Once
	bound    binding
)

// activeBinding returns the process-wide binding, probing on first use.
// The probe is deterministic for a given machine and never re-runs.
func activeBinding() *binding {
	bindOnce.Do(func() {
		bound = probeBinding()
	})
	return &bound
}

// name returns a human-readable tier name, e.g. "avx2" or "scalar".
func (b *binding) name() string {
	if !b.useVector {
		return "scalar"
	}
	return b.level.String()
}

// setBindingForTest replaces the binding and returns a restore func.
// Only tests use this, to force the scalar tier and compare outputs
// across tiers; it must not run concurrently with sorts.
func setBindingForTest(b binding) (restore func()) {
	activeBinding()
	prev := bound
	bound = b
	return func() { bound = prev }
}
