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

// Package registry is the class loader of the toolchain object model:
// it maps fully qualified class names to apis.Class descriptors.
package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
)

var (
	// ErrEmptyName is returned when a class without a name is registered.
	ErrEmptyName = errors.New("tagx(registry): empty class name provided")
	// ErrInvalidStatics is returned when Class.Statics is set but is not a
	// non-nil pointer to a struct.
	ErrInvalidStatics = errors.New("tagx(registry): statics must be a non-nil pointer to a struct")
	// ErrConflictingRegistration indicates an attempt to register a
	// different class under an already registered name.
	ErrConflictingRegistration = errors.New("tagx(registry): conflicting class registration")
)

// New constructs an empty Loader.
func New() apis.Loader {
	return &registry{}
}

// registry is a Loader backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps qualified class name to apis.Class.
	m sync.Map // map[string]apis.Class
	// count tracks the number of registered classes.
	count int
}

// Register makes c loadable under c.Name.
// It is idempotent for the same class.
func (r *registry) Register(c apis.Class) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Statics != nil {
		sv := reflect.ValueOf(c.Statics)
		if sv.Kind() != reflect.Ptr || sv.IsNil() || sv.Elem().Kind() != reflect.Struct {
			return ErrInvalidStatics
		}
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(c.Name); ok {
		return same(old.(apis.Class), c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(c.Name); ok {
		return same(old.(apis.Class), c)
	}

	r.m.Store(c.Name, c)
	r.count++
	return nil
}

func same(old, c apis.Class) error {
	if old == c {
		return nil
	}
	return ErrConflictingRegistration
}

// Load returns the class registered under name.
func (r *registry) Load(name string) (apis.Class, error) {
	if c, ok := r.Lookup(name); ok {
		return c, nil
	}
	return apis.Class{}, &failure.ClassNotFoundError{Name: name}
}

// Lookup returns the class registered under name, if any.
func (r *registry) Lookup(name string) (apis.Class, bool) {
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Class), true
	}
	return apis.Class{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Class {
	entries := make([]apis.Class, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Class))
		return true
	})
	return entries
}

// Count returns the number of registered classes.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset removes all registered classes.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
