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

	"github.com/RoaringBitmap/roaring"

	"github.com/4Looped/hash-map/pkg/container/array"
)

// HashMap is the common surface of OpenAddressingMap and ChainedMap.
// Implementations are not safe for concurrent use.
type HashMap[V any] interface {
	// Put inserts key or overwrites its value.
	Put(key string, value V)
	// Get returns the value of key, false if it is absent.
	Get(key string) (V, bool)
	ContainsKey(key string) bool
	// Remove deletes key; removing an absent key does nothing.
	Remove(key string)
	Clear()
	// ResizeTable rehashes every entry into a table of the given capacity,
	// rounded up to a prime.
	ResizeTable(capacity int)
	TableLoad() float64
	EmptyBuckets() int
	Size() int
	Capacity() int
	// KeysAndValues returns the live pairs in bucket order.
	KeysAndValues() *array.DynamicArray[Pair[V]]
	// Occupancy returns the indices of buckets holding live entries.
	Occupancy() *roaring.Bitmap
	String() string
}

var (
	_ HashMap[int] = (*OpenAddressingMap[int])(nil)
	_ HashMap[int] = (*ChainedMap[int])(nil)
)

// Pair is a key and its value.
type Pair[V any] struct {
	Key   string
	Value V
}

func (p Pair[V]) String() string {
	return fmt.Sprintf("(%s, %v)", p.Key, p.Value)
}

func bucketIndex(h Hasher, key string, capacity int) uint64 {
	return h.Hash(key) % uint64(capacity)
}
