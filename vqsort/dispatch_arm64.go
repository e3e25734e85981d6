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

//go:build arm64

package vqsort

import (
	"runtime"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
)

func probeBinding() binding {
	b := binding{level: hwy.CurrentLevel(), width: hwy.CurrentWidth()}
	if hwy.NoSimdEnv() || b.width < 16 {
		return b
	}

	switch b.level {
	case hwy.DispatchSVE, hwy.DispatchSME:
		b.useVector = cpu.ARM64.HasSVE
	case hwy.DispatchNEON:
		// x/sys/cpu does not populate feature flags on darwin; NEON is
		// architecturally guaranteed on arm64 there.
		b.useVector = cpu.ARM64.HasASIMD || runtime.GOOS == "darwin"
	}
	return b
}
