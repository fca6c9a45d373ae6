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

// Package quantile implements a modified Greenwald-Khanna online quantile
// summary: an epsilon-approximate rank sketch over a stream of totally
// ordered values, with single-pass insertion, streaming merge of two
// summaries, and micro-compression to keep the common case allocation-free.
//
// Summary is not safe for concurrent mutation; external synchronization is
// required if more than one goroutine writes to the same Summary, and
// writers must not overlap with readers.
package quantile
