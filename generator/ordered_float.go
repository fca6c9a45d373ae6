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

// Package generator provides deterministic value-stream generators used to
// drive quantile.Summary tests and benchmarks: each generator places a
// chosen value at a chosen quantile of a stream of known length.
package generator

import (
	"fmt"
	"math"
)

// OrderedFloat64 is a float64 with NaN excluded at construction, giving it
// a total order suitable for use as a quantile.Summary[OrderedFloat64]
// value. Built-in <, >, == all work on it directly since its underlying
// type is float64.
type OrderedFloat64 float64

// NewOrderedFloat64 wraps v, returning an error if v is NaN.
func NewOrderedFloat64(v float64) (OrderedFloat64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("generator: %v is not totally ordered (NaN)", v)
	}
	return OrderedFloat64(v), nil
}

// Float64 unwraps the underlying value.
func (o OrderedFloat64) Float64() float64 { return float64(o) }
