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

import "cmp"

// Sample is a single retained element of a Summary's sample sequence,
// together with its rank envelope.
//
// G is the number of stream values represented by this sample since the
// preceding retained sample (min-rank delta). Delta is the worst-case
// uncertainty in this sample's rank. Ordering and equality of samples are
// defined solely by Value; G and Delta are metadata, not identity.
type Sample[T cmp.Ordered] struct {
	Value T
	G     uint64
	Delta uint64
}

// exactSample builds the Sample for a value known with zero rank
// uncertainty, as used for brand new minima and maxima.
func exactSample[T cmp.Ordered](value T) Sample[T] {
	return Sample[T]{Value: value, G: 1, Delta: 0}
}
