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
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/container/list"
	"github.com/4Looped/hash-map/pkg/logutil"
)

// DefaultChainedCapacity is the capacity FindMode starts from.
const DefaultChainedCapacity = 11

// ChainedMap resolves collisions with one linked list per bucket. It never
// resizes on its own; callers drive ResizeTable.
type ChainedMap[V any] struct {
	buckets  *array.DynamicArray[*list.LinkedList[V]]
	capacity int
	size     int
	hasher   Hasher
}

// NewChainedMap returns an empty map whose capacity is the smallest prime
// >= capacity.
func NewChainedMap[V any](capacity int, hasher Hasher) *ChainedMap[V] {
	capacity = NextPrime(capacity)
	return &ChainedMap[V]{
		buckets:  newBucketLists[V](capacity),
		capacity: capacity,
		hasher:   hasher,
	}
}

func newBucketLists[V any](capacity int) *array.DynamicArray[*list.LinkedList[V]] {
	buckets := array.New[*list.LinkedList[V]](capacity)
	for i := 0; i < capacity; i++ {
		buckets.Append(list.New[V]())
	}
	return buckets
}

func (ht *ChainedMap[V]) Size() int {
	return ht.size
}

func (ht *ChainedMap[V]) Capacity() int {
	return ht.capacity
}

func (ht *ChainedMap[V]) bucket(key string) *list.LinkedList[V] {
	return ht.buckets.Get(int(bucketIndex(ht.hasher, key, ht.capacity)))
}

// Bucket returns the list at index i.
func (ht *ChainedMap[V]) Bucket(i int) *list.LinkedList[V] {
	return ht.buckets.Get(i)
}

func (ht *ChainedMap[V]) Put(key string, value V) {
	b := ht.bucket(key)
	if n := b.Find(key); n != nil {
		n.Value = value
		return
	}
	b.Insert(key, value)
	ht.size++
}

func (ht *ChainedMap[V]) Get(key string) (V, bool) {
	if n := ht.bucket(key).Find(key); n != nil {
		return n.Value, true
	}
	var zero V
	return zero, false
}

func (ht *ChainedMap[V]) ContainsKey(key string) bool {
	return ht.bucket(key).Find(key) != nil
}

func (ht *ChainedMap[V]) Remove(key string) {
	if ht.bucket(key).Remove(key) {
		ht.size--
	}
}

// ResizeTable rehashes every node into capacity buckets, rounded up to a
// prime. Capacities below 1 are ignored. The size may exceed the capacity.
func (ht *ChainedMap[V]) ResizeTable(capacity int) {
	if capacity < 1 {
		return
	}
	capacity = normalizeCapacity(capacity)

	from := ht.capacity
	buckets := newBucketLists[V](capacity)
	for i := 0; i < ht.capacity; i++ {
		ht.buckets.Get(i).Iter(func(n *list.Node[V]) bool {
			idx := bucketIndex(ht.hasher, n.Key, capacity)
			buckets.Get(int(idx)).Insert(n.Key, n.Value)
			return true
		})
	}
	ht.buckets = buckets
	ht.capacity = capacity

	if logutil.Enabled(zapcore.DebugLevel) {
		logutil.Debug("chained map resized",
			zap.Int("from", from),
			zap.Int("to", ht.capacity),
			zap.Int("entries", ht.size))
	}
}

func (ht *ChainedMap[V]) TableLoad() float64 {
	return float64(ht.size) / float64(ht.capacity)
}

// EmptyBuckets counts buckets whose list is empty.
func (ht *ChainedMap[V]) EmptyBuckets() int {
	empty := 0
	for i := 0; i < ht.capacity; i++ {
		if ht.buckets.Get(i).Len() == 0 {
			empty++
		}
	}
	return empty
}

func (ht *ChainedMap[V]) Clear() {
	for i := 0; i < ht.capacity; i++ {
		ht.buckets.Set(i, list.New[V]())
	}
	ht.size = 0
}

func (ht *ChainedMap[V]) KeysAndValues() *array.DynamicArray[Pair[V]] {
	pairs := array.New[Pair[V]](ht.size)
	for i := 0; i < ht.capacity; i++ {
		ht.buckets.Get(i).Iter(func(n *list.Node[V]) bool {
			pairs.Append(Pair[V]{Key: n.Key, Value: n.Value})
			return true
		})
	}
	return pairs
}

func (ht *ChainedMap[V]) Occupancy() *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < ht.capacity; i++ {
		if ht.buckets.Get(i).Len() != 0 {
			bm.Add(uint32(i))
		}
	}
	return bm
}

func (ht *ChainedMap[V]) String() string {
	var b strings.Builder
	for i := 0; i < ht.buckets.Length(); i++ {
		fmt.Fprintf(&b, "%d: %s\n", i, ht.buckets.Get(i))
	}
	return b.String()
}
