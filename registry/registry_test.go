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

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
	"dirpx.dev/tagx/registry"
)

type tagStatics struct {
	VOID  int
	CLASS int
}

func TestRegister_IdempotentAndLoad(t *testing.T) {
	reg := registry.New()
	c := apis.Class{Name: "com.sun.tools.javac.code.TypeTag", Statics: &tagStatics{}}

	if err := reg.Register(c); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// idempotent re-register with the same class
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register idempotent: unexpected error: %v", err)
	}

	got, err := reg.Load(c.Name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != c {
		t.Fatalf("Load = %+v, want %+v", got, c)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(apis.Class{Name: "a.B", Statics: &tagStatics{}}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different statics -> conflict
	err := reg.Register(apis.Class{Name: "a.B", Statics: &tagStatics{}})
	if err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()
	var nilStatics *tagStatics

	cases := []struct {
		name string
		c    apis.Class
		want error
	}{
		{"empty name", apis.Class{Statics: &tagStatics{}}, registry.ErrEmptyName},
		{"statics by value", apis.Class{Name: "a.B", Statics: tagStatics{}}, registry.ErrInvalidStatics},
		{"nil statics pointer", apis.Class{Name: "a.B", Statics: nilStatics}, registry.ErrInvalidStatics},
		{"statics not a struct", apis.Class{Name: "a.B", Statics: new(int)}, registry.ErrInvalidStatics},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := reg.Register(tc.c); err != tc.want {
				t.Fatalf("Register: want %v, got %v", tc.want, err)
			}
		})
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", reg.Count())
	}
}

func TestLoad_ClassNotFound(t *testing.T) {
	reg := registry.New()

	_, err := reg.Load("com.sun.tools.javac.tree.JCTree$Tag")
	if !errors.Is(err, failure.ErrClassNotFound) {
		t.Fatalf("Load(unknown): want ErrClassNotFound, got %v", err)
	}
	if c, ok := reg.Lookup("com.sun.tools.javac.tree.JCTree$Tag"); ok || c.Name != "" {
		t.Fatalf("Lookup(unknown): got (%+v,%v), want (zero,false)", c, ok)
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()

	_ = reg.Register(apis.Class{Name: "a.One", Statics: &tagStatics{}})
	_ = reg.Register(apis.Class{Name: "a.Two"})

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if _, ok := reg.Lookup("a.One"); ok {
		t.Fatal("Lookup after Reset: expected miss")
	}
	// snapshot taken before Reset stays usable
	if len(entries) != 2 || entries[0].Name == "" {
		t.Fatal("snapshot contents invalid after reset")
	}
}
