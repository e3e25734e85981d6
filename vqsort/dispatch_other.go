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

//go:build !amd64 && !arm64

package vqsort

import "github.com/ajroetker/go-highway/hwy"

// Other architectures: take the vector layer at its word; its scalar
// fallback still satisfies the lane-count contract.
func probeBinding() binding {
	b := binding{level: hwy.CurrentLevel(), width: hwy.CurrentWidth()}
	b.useVector = !hwy.NoSimdEnv() && b.width >= 16
	return b
}
