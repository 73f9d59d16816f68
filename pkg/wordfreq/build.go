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
	"context"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/config"
	"github.com/4Looped/hash-map/pkg/container/array"
	"github.com/4Looped/hash-map/pkg/container/hashtable"
)

// BuildMap counts tokens into the map described by cfg. Open addressing
// grows on its own; the chained map is doubled whenever its load passes 8.
func BuildMap(ctx context.Context, cfg config.MapConfig, tokens *array.DynamicArray[string]) (hashtable.HashMap[int], error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	hasher, err := cfg.Hasher()
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.KindChaining:
		m := hashtable.NewChainedMap[int](cfg.Capacity, hasher)
		hashtable.CountInto(m, tokens)
		return m, nil
	case config.KindOpenAddressing:
		m := hashtable.NewOpenAddressingMap[int](cfg.Capacity, hasher)
		for i := 0; i < tokens.Length(); i++ {
			tok := tokens.Get(i)
			count, _ := m.Get(tok)
			m.Put(tok, count+1)
		}
		return m, nil
	default:
		return nil, moerr.NewNotSupported(ctx, "map kind %s", cfg.Kind)
	}
}
