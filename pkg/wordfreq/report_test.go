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
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/config"
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/container/hashtable"
)

func fruits() *array.DynamicArray[string] {
	return array.From("melon", "apple", "apple", "grape", "melon", "peach")
}

func TestNewModeReport(t *testing.T) {
	r := NewModeReport(fruits())
	assert.Equal(t, []string{"apple", "melon"}, r.Modes)
	assert.Equal(t, 2, r.Frequency)
	assert.Equal(t, 6, r.Tokens)
	assert.Equal(t, 4, r.Distinct)
	assert.InDelta(t, 4, r.ApproxDistinct, 1)
	assert.Empty(t, r.Kind)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "modes:           apple, melon\n")
	assert.Contains(t, buf.String(), "frequency:       2\n")
	assert.NotContains(t, buf.String(), "capacity:")
}

func TestNewModeReportEmpty(t *testing.T) {
	r := NewModeReport(array.New[string](0))
	assert.Empty(t, r.Modes)
	assert.Zero(t, r.Frequency)
	assert.Zero(t, r.Distinct)
}

func TestBuildMapAndStats(t *testing.T) {
	ctx := context.TODO()
	tokens := fruits()
	for _, kind := range []string{config.KindChaining, config.KindOpenAddressing} {
		t.Run(kind, func(t *testing.T) {
			cfg := config.MapConfig{Kind: kind, Capacity: 11, Hash: "weighted"}
			m, err := BuildMap(ctx, cfg, tokens)
			require.NoError(t, err)
			v, ok := m.Get("apple")
			require.True(t, ok)
			require.Equal(t, 2, v)
			v, _ = m.Get("peach")
			require.Equal(t, 1, v)

			r := NewStatsReport(kind, m, tokens)
			assert.Equal(t, []string{"apple", "melon"}, r.Modes)
			assert.Equal(t, 2, r.Frequency)
			assert.Equal(t, 4, r.Size)
			assert.Equal(t, 11, r.Capacity)
			assert.Equal(t, m.EmptyBuckets(), r.EmptyBuckets)
			assert.LessOrEqual(t, r.UsedBuckets, uint64(4))

			var buf bytes.Buffer
			_, err = r.WriteTo(&buf)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "map:             "+kind+"\n")
			assert.Contains(t, buf.String(), "capacity:        11\n")
		})
	}
}

func TestBuildMapChainedGrows(t *testing.T) {
	tokens := array.New[string](1000)
	for i := 0; i < 1000; i++ {
		tokens.Append("t" + strconv.Itoa(i))
	}
	m, err := BuildMap(context.TODO(), config.MapConfig{Kind: config.KindChaining, Capacity: 5, Hash: "xxhash"}, tokens)
	require.NoError(t, err)
	require.Equal(t, 1000, m.Size())
	require.LessOrEqual(t, m.TableLoad(), 8.0)
	require.IsType(t, &hashtable.ChainedMap[int]{}, m)
}

func TestBuildMapBadConfig(t *testing.T) {
	_, err := BuildMap(context.TODO(), config.MapConfig{Kind: "cuckoo", Capacity: 5, Hash: "sum"}, fruits())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadConfig))
}
