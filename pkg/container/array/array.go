// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"fmt"
	"strings"
)

// DynamicArray is a resizable contiguous array. Index access out of range
// panics like a slice.
type DynamicArray[T any] struct {
	data []T
}

// New returns an empty DynamicArray with room for capacity elements.
func New[T any](capacity int) *DynamicArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &DynamicArray[T]{data: make([]T, 0, capacity)}
}

// From copies vs into a new DynamicArray.
func From[T any](vs ...T) *DynamicArray[T] {
	da := New[T](len(vs))
	da.data = append(da.data, vs...)
	return da
}

func (da *DynamicArray[T]) Append(v T) {
	da.data = append(da.data, v)
}

func (da *DynamicArray[T]) Get(i int) T {
	return da.data[i]
}

func (da *DynamicArray[T]) Set(i int, v T) {
	da.data[i] = v
}

// Ptr returns the address of element i, valid until the next Append.
func (da *DynamicArray[T]) Ptr(i int) *T {
	return &da.data[i]
}

func (da *DynamicArray[T]) Length() int {
	return len(da.data)
}

// Clear drops every element but keeps the allocation.
func (da *DynamicArray[T]) Clear() {
	var zero T
	for i := range da.data {
		da.data[i] = zero
	}
	da.data = da.data[:0]
}

// Slice exposes the backing storage; callers must not append to it.
func (da *DynamicArray[T]) Slice() []T {
	return da.data
}

func (da *DynamicArray[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range da.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
