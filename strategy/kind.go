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
	"fmt"
	"strings"
)

// Kind is one way of obtaining a tag from a toolchain object.
//
// The set is closed: a resolver probes the toolchain once, commits to one
// Kind and never re-evaluates it.
type Kind int

const (
	// None means no strategy applies (the toolchain release is unsupported).
	None Kind = iota
	// Method invokes a zero-argument accessor method.
	Method
	// Field reads a named field directly.
	Field
)

// String returns a human-readable representation of the Kind value.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Method:
		return "Method"
	case Field:
		return "Field"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Parse converts a case-insensitive token into a Kind.
func Parse(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None, fmt.Errorf("strategy: empty kind")
	}
	switch strings.ToUpper(s) {
	case "NONE":
		return None, nil
	case "METHOD":
		return Method, nil
	case "FIELD":
		return Field, nil
	default:
		return None, fmt.Errorf("strategy: unknown kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case None, Method, Field:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("strategy: cannot marshal unknown kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *k is left unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
