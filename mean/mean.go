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

// Package mean is the trivial reference aggregation named in the parent
// module's scope as an out-of-scope collaborator: a plain streaming mean,
// useful as a sanity baseline next to Summary.Query(0.5) in benchmarks and
// example programs.
package mean

// Aggregator computes a streaming arithmetic mean.
type Aggregator struct {
	count uint64
	sum   float64
}

// New creates an empty Aggregator.
func New() *Aggregator { return &Aggregator{} }

// Update folds a single value into the running mean.
func (a *Aggregator) Update(value float64) {
	a.count++
	a.sum += value
}

// MergeWith folds other's accumulated state into a, consuming other.
func (a *Aggregator) MergeWith(other *Aggregator) {
	a.count += other.count
	a.sum += other.sum
}

// Finish returns the mean of all observed values. NaN if none were
// observed.
func (a *Aggregator) Finish() float64 {
	return a.sum / float64(a.count)
}
