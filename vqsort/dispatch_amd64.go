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

//go:build amd64

package vqsort

import (
	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
)

// probeBinding cross-checks the tier the vector layer chose against the
// CPU feature flags before enabling the vector kernels. HWY_NO_SIMD
// forces the scalar tier, same as in the vector layer itself.
func probeBinding() binding {
	b := binding{level: hwy.CurrentLevel(), width: hwy.CurrentWidth()}
	if hwy.NoSimdEnv() || b.width < 16 {
		return b
	}

	switch b.level {
	case hwy.DispatchAVX512:
		b.useVector = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
	case hwy.DispatchAVX2:
		b.useVector = cpu.X86.HasAVX2
	case hwy.DispatchSSE2:
		// SSE2 is the amd64 baseline.
		b.useVector = true
	}
	return b
}
