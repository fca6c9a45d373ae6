// Copyright 2014 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quantile

import "fmt"

// DebugInvariants gates a post-mutation self-check of Summary's structural
// invariants (P1-P4). It is off by default: the check walks every sample
// and is only meant for tests and development, not the hot insert path.
var DebugInvariants = false

// InvalidEpsilonError reports a Summary constructed with epsilon outside
// (0, 1).
type InvalidEpsilonError struct {
	Epsilon float64
}

func (e *InvalidEpsilonError) Error() string {
	return fmt.Sprintf("quantile: invalid epsilon %v: must satisfy 0 < epsilon < 1", e.Epsilon)
}

// InvalidQuantileError reports a query quantile outside [0, 1].
type InvalidQuantileError struct {
	Quantile float64
}

func (e *InvalidQuantileError) Error() string {
	return fmt.Sprintf("quantile: invalid quantile %v: must satisfy 0 <= q <= 1", e.Quantile)
}

// IncompatibleEpsilonError reports a Merge where the operand's error bound
// is looser than the receiver's.
type IncompatibleEpsilonError struct {
	Self, Other float64
}

func (e *IncompatibleEpsilonError) Error() string {
	return fmt.Sprintf("quantile: cannot merge summary with epsilon %v into summary with epsilon %v", e.Other, e.Self)
}

// InvariantViolationError reports a debug-time structural check failure.
// Seeing one means the algorithm implementation has a bug.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "quantile: invariant violation: " + e.Detail
}
