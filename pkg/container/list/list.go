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

package list

import (
	"fmt"
	"strings"
)

// Node is a key/value element of a LinkedList.
type Node[V any] struct {
	// The next node, nil at the tail.
	next *Node[V]

	Key   string
	Value V
}

// Next returns the next node or nil.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// LinkedList is a singly linked list of key/value nodes. The zero value
// is an empty list ready to use.
type LinkedList[V any] struct {
	head *Node[V]
	len  int
}

// New returns an empty LinkedList.
func New[V any]() *LinkedList[V] {
	return &LinkedList[V]{}
}

// Len returns the number of nodes of the list.
// The complexity is O(1).
func (l *LinkedList[V]) Len() int { return l.len }

// Front returns the first node, nil if the list is empty.
func (l *LinkedList[V]) Front() *Node[V] { return l.head }

// Insert prepends a new node and returns it. Keys are not checked for
// uniqueness.
func (l *LinkedList[V]) Insert(key string, value V) *Node[V] {
	n := &Node[V]{next: l.head, Key: key, Value: value}
	l.head = n
	l.len++
	return n
}

// Find returns the first node holding key, nil if there is none.
func (l *LinkedList[V]) Find(key string) *Node[V] {
	for n := l.head; n != nil; n = n.next {
		if n.Key == key {
			return n
		}
	}
	return nil
}

// Remove unlinks the first node holding key and reports whether one was
// found.
func (l *LinkedList[V]) Remove(key string) bool {
	var prev *Node[V]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.Key != key {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		l.len--
		return true
	}
	return false
}

// Iter calls fn on every node in list order, stopped if false returned.
func (l *LinkedList[V]) Iter(fn func(*Node[V]) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n) {
			return
		}
	}
}

// Clear drops every node.
func (l *LinkedList[V]) Clear() {
	l.head = nil
	l.len = 0
}

func (l *LinkedList[V]) String() string {
	var b strings.Builder
	b.WriteString("SLL [")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "(%s: %v)", n.Key, n.Value)
	}
	b.WriteByte(']')
	return b.String()
}
