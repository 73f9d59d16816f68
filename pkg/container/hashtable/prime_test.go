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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrimes(t *testing.T) {
	Convey("IsPrime", t, func() {
		for _, n := range []int{2, 3, 5, 7, 11, 13, 53, 101, 449, 7919} {
			So(IsPrime(n), ShouldBeTrue)
		}
		for _, n := range []int{-7, 0, 1, 4, 9, 15, 25, 49, 100, 7917} {
			So(IsPrime(n), ShouldBeFalse)
		}
	})

	Convey("NextPrime", t, func() {
		So(NextPrime(-3), ShouldEqual, 2)
		So(NextPrime(0), ShouldEqual, 2)
		So(NextPrime(2), ShouldEqual, 2)
		So(NextPrime(3), ShouldEqual, 3)
		So(NextPrime(8), ShouldEqual, 11)
		So(NextPrime(11), ShouldEqual, 11)
		So(NextPrime(24), ShouldEqual, 29)
		So(NextPrime(30), ShouldEqual, 31)
		So(NextPrime(106), ShouldEqual, 107)
	})

	Convey("normalizeCapacity keeps primes", t, func() {
		So(normalizeCapacity(53), ShouldEqual, 53)
		So(normalizeCapacity(54), ShouldEqual, 59)
	})
}
