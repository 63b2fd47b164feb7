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

package strategy

import (
	"reflect"

	"dirpx.dev/tagx/failure"
	uref "dirpx.dev/tagx/utils/reflect"
)

// Candidate is one strategy to try during a probe.
type Candidate struct {
	Kind Kind
	// Member is the method or field name.
	Member string
}

// Choice is the outcome of a probe.
type Choice struct {
	Kind   Kind
	Member string
}

// Probe tries candidates in order against base and returns the first one
// base supports. Candidates with an empty Member are skipped.
// If none applies, Probe returns a *failure.UnsupportedError.
func Probe(base reflect.Type, candidates ...Candidate) (Choice, error) {
	if base == nil {
		return Choice{}, &failure.UnsupportedError{Reason: "has no probe base type"}
	}
	for _, c := range candidates {
		if c.Member == "" {
			continue
		}
		switch c.Kind {
		case Method:
			if HasMethod(base, c.Member) {
				return Choice(c), nil
			}
		case Field:
			if HasField(base, c.Member) {
				return Choice(c), nil
			}
		}
	}
	return Choice{}, &failure.UnsupportedError{Type: base, Reason: "matches none of " + describe(candidates)}
}

// HasMethod reports whether t (or *t) has an accessor method called name.
func HasMethod(t reflect.Type, name string) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Interface {
		m, ok := t.MethodByName(name)
		return ok && uref.IsAccessor(m.Type, 0)
	}
	if m, ok := t.MethodByName(name); ok && uref.IsAccessor(m.Type, 1) {
		return true
	}
	if t.Kind() != reflect.Ptr {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok && uref.IsAccessor(m.Type, 1) {
			return true
		}
	}
	return false
}

// HasField reports whether t (after following pointers) is a struct with a
// field called name, declared directly or promoted from an embedded struct.
func HasField(t reflect.Type, name string) bool {
	_, _, ok := uref.FieldPath(t, name)
	return ok
}

func describe(cs []Candidate) string {
	s := ""
	for i, c := range cs {
		if i > 0 {
			s += ", "
		}
		s += c.Kind.String() + " " + c.Member
	}
	return "[" + s + "]"
}
