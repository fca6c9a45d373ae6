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

import (
	"cmp"
	"sort"
)

// DefaultBatchCapacity is the default size of a BatchWriter's buffer before
// it automatically flushes into the underlying Summary.
const DefaultBatchCapacity = 1000

// BatchWriter buffers raw values and flushes them into a Summary in
// sorted batches, which is considerably cheaper than inserting one at a
// time for bulk loads.
type BatchWriter[T cmp.Ordered] struct {
	summary  *Summary[T]
	buffer   []T
	capacity int
}

// NewBatchWriter creates a BatchWriter around a fresh Summary with the
// given epsilon.
func NewBatchWriter[T cmp.Ordered](epsilon float64) *BatchWriter[T] {
	return WrapSummary(New[T](epsilon))
}

// WrapSummary creates a BatchWriter around an existing Summary, which may
// already contain data.
func WrapSummary[T cmp.Ordered](summary *Summary[T]) *BatchWriter[T] {
	return &BatchWriter[T]{
		summary:  summary,
		capacity: DefaultBatchCapacity,
		buffer:   make([]T, 0, DefaultBatchCapacity),
	}
}

// UpdateCapacity changes the buffer capacity. Must be called before the
// first insert.
func (w *BatchWriter[T]) UpdateCapacity(capacity int) {
	if len(w.buffer) != 0 {
		panic("quantile: BatchWriter.UpdateCapacity called after inserts began")
	}
	w.capacity = capacity
	w.buffer = make([]T, 0, capacity)
}

// InsertOne buffers a single value, flushing automatically once the buffer
// is full.
func (w *BatchWriter[T]) InsertOne(value T) {
	w.buffer = append(w.buffer, value)
	if len(w.buffer) >= w.capacity {
		w.flush()
	}
}

// Extend inserts every value from values, in order.
func (w *BatchWriter[T]) Extend(values []T) {
	for _, value := range values {
		w.InsertOne(value)
	}
}

// flush sorts the pending buffer and merges it into the underlying Summary
// in one linear streaming pass.
func (w *BatchWriter[T]) flush() {
	if len(w.buffer) == 0 {
		return
	}
	sort.Slice(w.buffer, func(i, j int) bool { return w.buffer[i] < w.buffer[j] })

	sorted := make([]Sample[T], len(w.buffer))
	for i, value := range w.buffer {
		sorted[i] = exactSample(value)
	}
	w.summary.mergeSortedSamples(sorted, uint64(len(w.buffer)))
	w.buffer = w.buffer[:0]
}

// IntoSummary flushes any pending values and returns the owned Summary.
// The BatchWriter must not be used afterwards.
func (w *BatchWriter[T]) IntoSummary() *Summary[T] {
	w.flush()
	summary := w.summary
	w.summary = nil
	return summary
}
