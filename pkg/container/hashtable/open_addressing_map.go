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
	"github.com/4Looped/hash-map/pkg/logutil"
)

const (
	// kMaxLoadFactor bounds size/capacity after every Put.
	kMaxLoadFactor = 0.5
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot is a tagged variant: Empty carries nothing, Occupied carries a live
// entry, Tombstone carries the dead entry it replaced. A slot only becomes
// a tombstone through bury, so a tombstone always had an entry.
type slot[V any] struct {
	state slotState
	key   string
	value V
}

func (s *slot[V]) occupy(key string, value V) {
	s.state = slotOccupied
	s.key = key
	s.value = value
}

func (s *slot[V]) bury() {
	s.state = slotTombstone
}

func (s *slot[V]) reset() {
	*s = slot[V]{}
}

func (s *slot[V]) holds(key string) bool {
	return s.state == slotOccupied && s.key == key
}

func (s *slot[V]) String() string {
	switch s.state {
	case slotOccupied:
		return fmt.Sprintf("K: %s V: %v TS: false", s.key, s.value)
	case slotTombstone:
		return fmt.Sprintf("K: %s V: %v TS: true", s.key, s.value)
	default:
		return "None"
	}
}

// OpenAddressingMap resolves collisions by quadratic probing over a prime
// number of slots and deletes by leaving tombstones.
type OpenAddressingMap[V any] struct {
	buckets  *array.DynamicArray[slot[V]]
	capacity int
	size     int
	hasher   Hasher
}

// NewOpenAddressingMap returns an empty map whose capacity is the smallest
// prime >= capacity.
func NewOpenAddressingMap[V any](capacity int, hasher Hasher) *OpenAddressingMap[V] {
	ht := &OpenAddressingMap[V]{hasher: hasher}
	ht.init(NextPrime(capacity))
	return ht
}

func (ht *OpenAddressingMap[V]) init(capacity int) {
	ht.capacity = capacity
	ht.size = 0
	ht.buckets = array.New[slot[V]](capacity)
	for i := 0; i < capacity; i++ {
		ht.buckets.Append(slot[V]{})
	}
}

func (ht *OpenAddressingMap[V]) Size() int {
	return ht.size
}

func (ht *OpenAddressingMap[V]) Capacity() int {
	return ht.capacity
}

// probe returns the i-th slot index of key's quadratic sequence.
func (ht *OpenAddressingMap[V]) probe(initial uint64, i int) int {
	step := uint64(i) * uint64(i)
	return int((initial + step) % uint64(ht.capacity))
}

// find returns the slot index holding key, -1 if key is absent. Probing
// stops at the first empty slot and skips tombstones. The sequence is cut
// after capacity steps, which already visits every slot reachable by
// quadratic probing over a prime table.
func (ht *OpenAddressingMap[V]) find(key string) int {
	initial := bucketIndex(ht.hasher, key, ht.capacity)
	for i := 0; i < ht.capacity; i++ {
		idx := ht.probe(initial, i)
		s := ht.buckets.Ptr(idx)
		switch {
		case s.state == slotEmpty:
			return -1
		case s.holds(key):
			return idx
		}
	}
	return -1
}

// Put inserts key or overwrites its value. Overwrites never resize. If
// inserting one more key would push the load factor past 0.5 the table is
// first doubled.
func (ht *OpenAddressingMap[V]) Put(key string, value V) {
	if idx := ht.find(key); idx >= 0 {
		ht.buckets.Ptr(idx).value = value
		return
	}
	if float64(ht.size+1)/float64(ht.capacity) > kMaxLoadFactor {
		ht.ResizeTable(ht.capacity * 2)
	}

	// key is absent, take the first empty slot or tombstone
	initial := bucketIndex(ht.hasher, key, ht.capacity)
	for i := 0; i < ht.capacity; i++ {
		s := ht.buckets.Ptr(ht.probe(initial, i))
		if s.state != slotOccupied {
			s.occupy(key, value)
			ht.size++
			return
		}
	}

	// every reachable slot is live, grow and retry
	ht.ResizeTable(ht.capacity * 2)
	ht.Put(key, value)
}

// Get returns the value of key, false if it is absent.
func (ht *OpenAddressingMap[V]) Get(key string) (V, bool) {
	if idx := ht.find(key); idx >= 0 {
		return ht.buckets.Get(idx).value, true
	}
	var zero V
	return zero, false
}

func (ht *OpenAddressingMap[V]) ContainsKey(key string) bool {
	return ht.find(key) >= 0
}

// Remove marks the slot of key as a tombstone.
func (ht *OpenAddressingMap[V]) Remove(key string) {
	if idx := ht.find(key); idx >= 0 {
		ht.buckets.Ptr(idx).bury()
		ht.size--
	}
}

// ResizeTable rebuilds the table with the given capacity, rounded up to a
// prime. Capacities below the current size are ignored. Only live entries
// move; tombstones are dropped. The new table still grows on demand, so
// the load factor stays at most 0.5.
func (ht *OpenAddressingMap[V]) ResizeTable(capacity int) {
	if capacity < ht.size {
		return
	}
	capacity = normalizeCapacity(capacity)

	from := ht.capacity
	next := NewOpenAddressingMap[V](capacity, ht.hasher)
	for i := 0; i < ht.capacity; i++ {
		if s := ht.buckets.Ptr(i); s.state == slotOccupied {
			next.Put(s.key, s.value)
		}
	}
	ht.buckets = next.buckets
	ht.capacity = next.capacity
	ht.size = next.size

	if logutil.Enabled(zapcore.DebugLevel) {
		logutil.Debug("open addressing map resized",
			zap.Int("from", from),
			zap.Int("to", ht.capacity),
			zap.Int("entries", ht.size))
	}
}

func (ht *OpenAddressingMap[V]) TableLoad() float64 {
	return float64(ht.size) / float64(ht.capacity)
}

// EmptyBuckets returns capacity - size. Tombstones count as empty since
// they are free for insertion.
func (ht *OpenAddressingMap[V]) EmptyBuckets() int {
	return ht.capacity - ht.size
}

// Clear resets every slot to empty.
func (ht *OpenAddressingMap[V]) Clear() {
	for i := 0; i < ht.capacity; i++ {
		ht.buckets.Ptr(i).reset()
	}
	ht.size = 0
}

func (ht *OpenAddressingMap[V]) KeysAndValues() *array.DynamicArray[Pair[V]] {
	pairs := array.New[Pair[V]](ht.size)
	for i := 0; i < ht.capacity; i++ {
		if s := ht.buckets.Ptr(i); s.state == slotOccupied {
			pairs.Append(Pair[V]{Key: s.key, Value: s.value})
		}
	}
	return pairs
}

func (ht *OpenAddressingMap[V]) Occupancy() *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < ht.capacity; i++ {
		if ht.buckets.Ptr(i).state == slotOccupied {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Tombstones counts buried slots. It scans the table.
func (ht *OpenAddressingMap[V]) Tombstones() int {
	n := 0
	for i := 0; i < ht.capacity; i++ {
		if ht.buckets.Ptr(i).state == slotTombstone {
			n++
		}
	}
	return n
}

// String dumps one "index: slot" line per bucket.
func (ht *OpenAddressingMap[V]) String() string {
	var b strings.Builder
	for i := 0; i < ht.buckets.Length(); i++ {
		fmt.Fprintf(&b, "%d: %s\n", i, ht.buckets.Ptr(i))
	}
	return b.String()
}
