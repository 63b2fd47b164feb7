/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tag

import (
	"errors"
	"fmt"
	"hash/maphash"
	"reflect"
)

// EmptyHash is the hash of a Tag that wraps no value.
const EmptyHash = ^uint64(0)

// ErrUncomparable is returned when a value cannot be used as a tag because
// its dynamic type does not support ==.
var ErrUncomparable = errors.New("tagx(tag): value type is not comparable")

// Tag is an opaque, comparable discriminant read from the toolchain.
//
// A Tag wraps exactly one value, or none. Two tags are equal iff their
// wrapped values are equal, so Tag works with ==, as a map key and as a
// switch operand. The zero Tag wraps nothing.
type Tag struct {
	v any
}

// From wraps v. It fails if v cannot be compared with ==, including
// structs and arrays holding uncomparable values in interface fields.
// A nil v yields the empty tag.
func From(v any) (Tag, error) {
	if v != nil && !reflect.ValueOf(v).Comparable() {
		return Tag{}, fmt.Errorf("%w: %T", ErrUncomparable, v)
	}
	return Tag{v: v}, nil
}

// Of is like From but panics if v is not comparable.
func Of(v any) Tag {
	t, err := From(v)
	if err != nil {
		panic(err)
	}
	return t
}

// Value returns the wrapped value, or nil for the empty tag.
func (t Tag) Value() any { return t.v }

// IsZero reports whether t wraps no value.
func (t Tag) IsZero() bool { return t.v == nil }

// Equal reports whether t and o wrap equal values.
func (t Tag) Equal(o Tag) bool { return t == o }

// Hash returns a hash of the wrapped value under seed, or EmptyHash.
func (t Tag) Hash(seed maphash.Seed) uint64 {
	if t.v == nil {
		return EmptyHash
	}
	return maphash.Comparable(seed, t.v)
}

// String formats the wrapped value.
func (t Tag) String() string {
	if t.v == nil {
		return "<none>"
	}
	if s, ok := t.v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(t.v)
}
