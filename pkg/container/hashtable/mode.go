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

package hashtable

import (
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/container/list"
)

// kModeMaxLoad is the load factor past which the frequency map is doubled.
const kModeMaxLoad = 8

// FindMode returns every most frequent element of seq and its count. The
// order of the modes follows bucket order, not input order. An empty seq
// yields no modes and a count of 0.
func FindMode(seq *array.DynamicArray[string]) (*array.DynamicArray[string], int) {
	return FindModeWithHasher(seq, SumHash)
}

// FindModeWithHasher is FindMode with an explicit hash function.
func FindModeWithHasher(seq *array.DynamicArray[string], hasher Hasher) (*array.DynamicArray[string], int) {
	counts, highest := CountFrequencies(seq, hasher)
	return ModesOf(counts, highest), highest
}

// CountFrequencies counts every element of seq in a new ChainedMap and
// returns it with the highest count seen.
func CountFrequencies(seq *array.DynamicArray[string], hasher Hasher) (*ChainedMap[int], int) {
	counts := NewChainedMap[int](DefaultChainedCapacity, hasher)
	return counts, CountInto(counts, seq)
}

// CountInto adds one to the count of every element of seq and returns the
// highest count reached by an element of seq. The map is doubled whenever
// a new key pushes its load factor past 8.
func CountInto(counts *ChainedMap[int], seq *array.DynamicArray[string]) int {
	highest := 0
	for i := 0; i < seq.Length(); i++ {
		key := seq.Get(i)
		count, _ := counts.Get(key)
		count++
		counts.Put(key, count)
		if count > highest {
			highest = count
		}
		if count == 1 && counts.TableLoad() > kModeMaxLoad {
			counts.ResizeTable(counts.Capacity() * 2)
		}
	}
	return highest
}

// ModesOf returns, in bucket order, the keys whose count equals highest.
func ModesOf(counts *ChainedMap[int], highest int) *array.DynamicArray[string] {
	modes := array.New[string](0)
	if highest == 0 {
		return modes
	}
	for i := 0; i < counts.Capacity(); i++ {
		counts.Bucket(i).Iter(func(n *list.Node[int]) bool {
			if n.Value == highest {
				modes.Append(n.Key)
			}
			return true
		})
	}
	return modes
}
