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

package generator

import (
	"math"
	"testing"
)

func TestNewOrderedFloat64RejectsNaN(t *testing.T) {
	if _, err := NewOrderedFloat64(math.NaN()); err == nil {
		t.Error("NewOrderedFloat64(NaN) returned nil error")
	}
}

func TestNewOrderedFloat64RoundTrips(t *testing.T) {
	v, err := NewOrderedFloat64(3.5)
	if err != nil {
		t.Fatalf("NewOrderedFloat64(3.5) returned error: %v", err)
	}
	if v.Float64() != 3.5 {
		t.Errorf("Float64() = %v, want 3.5", v.Float64())
	}
}

func TestOrderedFloat64IsTotallyOrdered(t *testing.T) {
	a, _ := NewOrderedFloat64(1)
	b, _ := NewOrderedFloat64(2)
	if !(a < b) {
		t.Error("1 < 2 did not hold for OrderedFloat64")
	}
	if a == b {
		t.Error("distinct OrderedFloat64 values compared equal")
	}
}
