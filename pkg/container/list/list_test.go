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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertPrepends(t *testing.T) {
	l := New[int]()
	require.Nil(t, l.Front())
	l.Insert("a", 1)
	l.Insert("b", 2)
	l.Insert("c", 3)
	require.Equal(t, 3, l.Len())
	checkKeys(t, l, "c", "b", "a")
	require.Equal(t, "SLL [(c: 3) -> (b: 2) -> (a: 1)]", l.String())
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		ok     bool
		want   []string
	}{
		{name: "head", remove: "c", ok: true, want: []string{"b", "a"}},
		{name: "middle", remove: "b", ok: true, want: []string{"c", "a"}},
		{name: "tail", remove: "a", ok: true, want: []string{"c", "b"}},
		{name: "missing", remove: "z", ok: false, want: []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			l.Insert("a", 1)
			l.Insert("b", 2)
			l.Insert("c", 3)
			assert.Equal(t, tt.ok, l.Remove(tt.remove))
			assert.Equal(t, len(tt.want), l.Len())
			checkKeys(t, l, tt.want...)
		})
	}
}

func TestFindAndIterStop(t *testing.T) {
	var l LinkedList[string]
	l.Insert("k1", "v1")
	l.Insert("k2", "v2")
	require.Equal(t, "v1", l.Find("k1").Value)
	require.Nil(t, l.Find("k3"))

	l.Find("k1").Value = "v1'"
	require.Equal(t, "v1'", l.Find("k1").Value)

	visited := 0
	l.Iter(func(*Node[string]) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Equal(t, "SLL []", l.String())
}

func checkKeys[V any](t *testing.T, l *LinkedList[V], keys ...string) {
	t.Helper()
	got := make([]string, 0, l.Len())
	for n := l.Front(); n != nil; n = n.Next() {
		got = append(got, n.Key)
	}
	require.Equal(t, keys, got)
}
