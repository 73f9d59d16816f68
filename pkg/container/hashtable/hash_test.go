// Copyright 2021 Matrix Origin
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
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/container/hashtable/mock_hashtable"
)

var golden = []string{
	"Discard medicine more than two years old.",
	"He who has a shady past knows that nice guys finish last.",
	"I wouldn't marry him with a ten foot pole.",
	"Free! Free!/A trip/to Mars/for 900/empty jars/Burma Shave",
	"The days of the digital watch are numbered.  -Tom Stoppard",
	"Nepal premier won't resign.",
	"For every action there is an equal and opposite government program.",
	"His money is twice tainted: 'taint yours and 'taint mine.",
	"There is no reason for any individual to have a computer in their home. -Ken Olsen, 1977",
	"It's a tiny change to the code and not completely disgusting. - Bob Manchek",
	"size:  a.out:  bad magic",
	"The major problem is with sendmail.  -Mark Horton",
	"Give me a rock, paper and scissors and I will move the world.  CCFestoon",
	"If the enemy is within range, then so are you.",
	"C is as portable as Stonehedge!!",
}

func TestSumHashes(t *testing.T) {
	require.Equal(t, uint64(0), SumHash.Hash(""))
	require.Equal(t, uint64(294), SumHash.Hash("abc"))
	require.Equal(t, SumHash.Hash("abc"), SumHash.Hash("cba"))

	require.Equal(t, uint64(0), WeightedSumHash.Hash(""))
	require.Equal(t, uint64(97+2*98+3*99), WeightedSumHash.Hash("abc"))
	require.NotEqual(t, WeightedSumHash.Hash("abc"), WeightedSumHash.Hash("cba"))
}

func TestXXHashEmpty(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), XXHash.Hash(""))
}

func TestHashDeterministic(t *testing.T) {
	for _, name := range HasherNames() {
		h, err := HasherByName(name)
		require.NoError(t, err)
		for _, g := range golden {
			require.Equal(t, h.Hash(g), h.Hash(strings.Clone(g)), "%s(%s)", name, g)
		}
	}
}

func TestWyHashAllLengths(t *testing.T) {
	seen := make(map[uint64]int)
	base := strings.Repeat("0123456789abcdef", 8)
	for n := 0; n <= len(base); n++ {
		key := base[:n]
		h := WyHash.Hash(key)
		require.Equal(t, h, WyHash.Hash(strings.Clone(key)))
		if prev, ok := seen[h]; ok {
			t.Errorf("wyhash collision between lengths %d and %d", prev, n)
		}
		seen[h] = n
	}
}

func TestHasherByName(t *testing.T) {
	require.Equal(t, []string{"metro", "sum", "weighted", "wyhash", "xxhash"}, HasherNames())

	h, err := HasherByName("weighted")
	require.NoError(t, err)
	require.Equal(t, WeightedSumHash.Hash("key1"), h.Hash("key1"))

	_, err = HasherByName("md5")
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func TestHasherIsConsulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := mock_hashtable.NewMockHasher(ctrl)
	hasher.EXPECT().Hash("a").Return(uint64(3)).Times(4)
	hasher.EXPECT().Hash("b").Return(uint64(14)).Times(3)

	m := NewOpenAddressingMap[int](11, hasher)
	m.Put("a", 1)
	m.Put("b", 2)
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, m.ContainsKey("a"))
	require.True(t, m.ContainsKey("b"))
	require.Equal(t, []uint32{3, 4}, m.Occupancy().ToArray())
}
