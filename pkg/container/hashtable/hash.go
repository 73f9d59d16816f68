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
	"context"
	"math/bits"
	"math/rand"
	"reflect"
	"sort"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	metro "github.com/dgryski/go-metro"

	"github.com/4Looped/hash-map/pkg/common/moerr"
)

// Hasher maps a key to a non-negative integer. Implementations must be
// deterministic for a given key; they need not be uniform.
type Hasher interface {
	Hash(key string) uint64
}

// HashFunc adapts a plain function to Hasher.
type HashFunc func(key string) uint64

func (f HashFunc) Hash(key string) uint64 {
	return f(key)
}

var (
	// SumHash adds up the bytes of the key.
	SumHash Hasher = HashFunc(sumHash)
	// WeightedSumHash adds up the bytes of the key weighted by position.
	WeightedSumHash Hasher = HashFunc(weightedSumHash)
	// WyHash is wyhash seeded once per process.
	WyHash Hasher = HashFunc(wyhashString)
	XXHash Hasher = HashFunc(xxhash.Sum64String)
	// MetroHash is metrohash64 with a zero seed.
	MetroHash Hasher = HashFunc(metroHash)
)

var hashers = map[string]Hasher{
	"sum":      SumHash,
	"weighted": WeightedSumHash,
	"wyhash":   WyHash,
	"xxhash":   XXHash,
	"metro":    MetroHash,
}

// HasherByName returns the built-in hasher registered under name.
func HasherByName(name string) (Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, moerr.NewInvalidArg(context.TODO(), "hash function", name)
	}
	return h, nil
}

// HasherNames lists the registered hasher names in sorted order.
func HasherNames() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sumHash(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash += uint64(key[i])
	}
	return hash
}

func weightedSumHash(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash += uint64(i+1) * uint64(key[i])
	}
	return hash
}

func metroHash(key string) uint64 {
	return metro.Hash64([]byte(key), 0)
}

var hashkey [4]uint64

func init() {
	hashkey[0] = rand.Uint64()
	hashkey[1] = rand.Uint64()
	hashkey[2] = rand.Uint64()
	hashkey[3] = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m3 = 0x8ebc6af09c88c6e3
	m4 = 0x589965cc75374cc3
	m5 = 0x1d8e4e27c47d124f
)

func wyhashString(key string) uint64 {
	if len(key) == 0 {
		return wyhash(nil, 0, 0)
	}
	data := unsafe.Pointer((*reflect.StringHeader)(unsafe.Pointer(&key)).Data)
	return wyhash(data, 0, uint64(len(key)))
}

func wyhash(data unsafe.Pointer, seed, s uint64) uint64 {
	var a, b uint64
	seed ^= hashkey[0] ^ m1
	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(*(*byte)(data))
		a |= uint64(*(*byte)(unsafe.Add(data, s>>1))) << 8
		a |= uint64(*(*byte)(unsafe.Add(data, s-1))) << 16
	case s == 4:
		a = r4(data, 0)
		b = a
	case s < 8:
		a = r4(data, 0)
		b = r4(data, s-4)
	case s == 8:
		a = r8(data, 0)
		b = a
	case s <= 16:
		a = r8(data, 0)
		b = r8(data, s-8)
	default:
		l := s
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
				seed1 = mix(r8(data, 16)^m3, r8(data, 24)^seed1)
				seed2 = mix(r8(data, 32)^m4, r8(data, 40)^seed2)
				data = unsafe.Add(data, 48)
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
			data = unsafe.Add(data, 16)
		}
		// the tail reads overlap bytes already consumed
		a = r8(unsafe.Add(data, -16), l)
		b = r8(unsafe.Add(data, -8), l)
	}

	return mix(m5^s, mix(a^m2, b^seed))
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func r4(data unsafe.Pointer, p uint64) uint64 {
	return uint64(*(*uint32)(unsafe.Add(data, p)))
}

func r8(data unsafe.Pointer, p uint64) uint64 {
	return *(*uint64)(unsafe.Add(data, p))
}
