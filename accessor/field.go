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

package accessor

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/tagx/failure"
	uref "dirpx.dev/tagx/utils/reflect"
)

// field is a resolved instance field accessor.
type field struct {
	index []int
	// elevate is decided once, when the field is resolved.
	elevate bool
}

// fieldNotFound marks a runtime type that lacks the field.
var fieldNotFound = &field{}

// FieldCache reads one named instance field from objects of any runtime type.
type FieldCache struct {
	name   string
	log    *zap.Logger
	m      sync.Map // map[reflect.Type]*field
	probes atomic.Int64
}

// NewFieldCache returns an empty cache for the field called name.
func NewFieldCache(name string, opts ...Option) *FieldCache {
	o := newOptions(opts)
	return &FieldCache{name: name, log: o.log}
}

// Name returns the field name this cache reads.
func (c *FieldCache) Name() string { return c.name }

// Probes returns how many times a runtime type had to be inspected.
func (c *FieldCache) Probes() int64 { return c.probes.Load() }

// Get reads the field from obj.
//
// It fails with failure.ErrNoSuchField if obj's runtime type has no such
// field (also for untyped nil and non-struct values), and with
// failure.ErrIllegalAccess if the field exists but cannot be reached, e.g.
// through a nil pointer.
func (c *FieldCache) Get(obj any) (any, error) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return nil, failure.NoSuchField(nil, c.name)
	}
	f := c.resolve(t)
	if f == fieldNotFound {
		return nil, failure.NoSuchField(t, c.name)
	}
	v, err := uref.Indirect(obj)
	if err != nil {
		return nil, failure.IllegalAccess(t, c.name, err)
	}
	out, err := uref.ReadField(v, f.index, f.elevate)
	if err != nil {
		return nil, failure.IllegalAccess(t, c.name, err)
	}
	return out, nil
}

// Has reports whether objects of runtime type t carry the field.
// The answer is cached like Get's.
func (c *FieldCache) Has(t reflect.Type) bool {
	return t != nil && c.resolve(t) != fieldNotFound
}

// resolve returns the cached accessor for t, computing it on first use.
func (c *FieldCache) resolve(t reflect.Type) *field {
	if v, ok := c.m.Load(t); ok {
		return v.(*field)
	}

	c.probes.Add(1)
	f := fieldNotFound
	if index, elevate, ok := uref.FieldPath(t, c.name); ok {
		f = &field{index: index, elevate: elevate}
	}

	actual, loaded := c.m.LoadOrStore(t, f)
	if !loaded {
		c.log.Debug("field accessor resolved",
			zap.Stringer("type", t),
			zap.String("field", c.name),
			zap.Bool("found", f != fieldNotFound),
			zap.Bool("elevated", f.elevate),
		)
	}
	return actual.(*field)
}
