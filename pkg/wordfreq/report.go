// Copyright 2024 Matrix Origin
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

package wordfreq

import (
	"fmt"
	"io"
	"strings"

	hll "github.com/axiomhq/hyperloglog"
	"github.com/google/btree"

	"github.com/4Looped/hash-map/pkg/config"
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/container/hashtable"
)

type modeItem string

func (m modeItem) Less(than btree.Item) bool {
	return m < than.(modeItem)
}

// Report summarises a token stream and, for stats, the map it was
// counted into.
type Report struct {
	// Modes is sorted.
	Modes          []string
	Frequency      int
	Tokens         int
	Distinct       int
	ApproxDistinct uint64

	// Map statistics, left zero by NewModeReport.
	Kind         string
	Size         int
	Capacity     int
	Load         float64
	EmptyBuckets int
	UsedBuckets  uint64
	Tombstones   int
}

// NewModeReport finds the modes of tokens.
func NewModeReport(tokens *array.DynamicArray[string]) *Report {
	counts, highest := hashtable.CountFrequencies(tokens, hashtable.SumHash)
	return &Report{
		Modes:          sortModes(hashtable.ModesOf(counts, highest)),
		Frequency:      highest,
		Tokens:         tokens.Length(),
		Distinct:       counts.Size(),
		ApproxDistinct: approxDistinct(tokens),
	}
}

// NewStatsReport describes m, which holds the counts of tokens.
func NewStatsReport(kind string, m hashtable.HashMap[int], tokens *array.DynamicArray[string]) *Report {
	r := &Report{
		Tokens:         tokens.Length(),
		Distinct:       m.Size(),
		ApproxDistinct: approxDistinct(tokens),
		Kind:           kind,
		Size:           m.Size(),
		Capacity:       m.Capacity(),
		Load:           m.TableLoad(),
		EmptyBuckets:   m.EmptyBuckets(),
		UsedBuckets:    m.Occupancy().GetCardinality(),
	}
	if ts, ok := m.(interface{ Tombstones() int }); ok {
		r.Tombstones = ts.Tombstones()
	}

	modes := array.New[string](0)
	pairs := m.KeysAndValues()
	for i := 0; i < pairs.Length(); i++ {
		p := pairs.Get(i)
		switch {
		case p.Value > r.Frequency:
			r.Frequency = p.Value
			modes.Clear()
			modes.Append(p.Key)
		case p.Value == r.Frequency:
			modes.Append(p.Key)
		}
	}
	r.Modes = sortModes(modes)
	return r
}

func sortModes(modes *array.DynamicArray[string]) []string {
	tree := btree.New(8)
	for i := 0; i < modes.Length(); i++ {
		tree.ReplaceOrInsert(modeItem(modes.Get(i)))
	}
	sorted := make([]string, 0, tree.Len())
	tree.Ascend(func(i btree.Item) bool {
		sorted = append(sorted, string(i.(modeItem)))
		return true
	})
	return sorted
}

func approxDistinct(tokens *array.DynamicArray[string]) uint64 {
	sk := hll.New()
	for i := 0; i < tokens.Length(); i++ {
		sk.Insert([]byte(tokens.Get(i)))
	}
	return sk.Estimate()
}

// WriteTo prints one "name: value" line per field.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	line := func(name string, v any) {
		fmt.Fprintf(&b, "%-16s %v\n", name+":", v)
	}
	line("modes", strings.Join(r.Modes, ", "))
	line("frequency", r.Frequency)
	line("tokens", r.Tokens)
	line("distinct", r.Distinct)
	line("approx distinct", r.ApproxDistinct)
	if r.Kind != "" {
		line("map", r.Kind)
		line("size", r.Size)
		line("capacity", r.Capacity)
		line("load", fmt.Sprintf("%.4f", r.Load))
		line("empty buckets", r.EmptyBuckets)
		line("used buckets", r.UsedBuckets)
		if r.Kind == config.KindOpenAddressing {
			line("tombstones", r.Tombstones)
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
