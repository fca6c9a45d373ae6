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

import "math"

// QuantileToRank converts a quantile q in [0, 1] to the 1-indexed rank it
// names out of n total values. Panics with *InvalidQuantileError if q is
// out of range.
//
// For n = 4:
//
//	q range    -> rank
//	[0, 1/4]   -> 1
//	(1/4, 2/4] -> 2
//	(2/4, 3/4] -> 3
//	(3/4, 1]   -> 4
func QuantileToRank(q float64, n uint64) uint64 {
	if q < 0 || q > 1 {
		panic(&InvalidQuantileError{Quantile: q})
	}
	r := uint64(math.Ceil(q * float64(n)))
	if r < 1 {
		r = 1
	}
	return r
}

// RankToQuantile converts a 1-indexed rank back to its fractional quantile
// out of n. Used only by generators and tests; it is the inverse of
// QuantileToRank up to rounding.
func RankToQuantile(r, n uint64) float64 {
	return float64(r) / float64(n)
}

// CapFor returns cap = floor(2 * epsilon * n), the bound on g+delta for any
// non-extreme sample once n values have been observed. Shared by this
// package and gkref, which must agree on the same cap formula.
func CapFor(epsilon float64, n uint64) uint64 {
	return uint64(math.Floor(2 * epsilon * float64(n)))
}
