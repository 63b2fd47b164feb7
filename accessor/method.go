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

// method is a resolved accessor method.
type method struct {
	fn reflect.Value
	// addr is set when the method has a pointer receiver but objects of
	// the runtime type are passed by value.
	addr bool
}

// methodNotFound marks a runtime type that lacks the method.
var methodNotFound = &method{}

// MethodCache invokes one named zero-argument accessor method on objects of
// any runtime type. Only exported methods can be found.
type MethodCache struct {
	name   string
	log    *zap.Logger
	m      sync.Map // map[reflect.Type]*method
	probes atomic.Int64
}

// NewMethodCache returns an empty cache for the method called name.
func NewMethodCache(name string, opts ...Option) *MethodCache {
	o := newOptions(opts)
	return &MethodCache{name: name, log: o.log}
}

// Name returns the method name this cache invokes.
func (c *MethodCache) Name() string { return c.name }

// Probes returns how many times a runtime type had to be inspected.
func (c *MethodCache) Probes() int64 { return c.probes.Load() }

// Call invokes the method on obj and returns its result.
//
// A missing method fails with failure.ErrNoSuchMethod. An error returned
// by the method, or a panic raised inside it, is returned as is.
func (c *MethodCache) Call(obj any) (any, error) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return nil, failure.NoSuchMethod(nil, c.name)
	}
	m := c.resolve(t)
	if m == methodNotFound {
		return nil, failure.NoSuchMethod(t, c.name)
	}

	recv := reflect.ValueOf(obj)
	if m.addr {
		p := reflect.New(t)
		p.Elem().Set(recv)
		recv = p
	}
	return failure.Invoke(func() (any, error) {
		out := m.fn.Call([]reflect.Value{recv})
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	})
}

// Has reports whether objects of runtime type t have the method.
func (c *MethodCache) Has(t reflect.Type) bool {
	return t != nil && c.resolve(t) != methodNotFound
}

func (c *MethodCache) resolve(t reflect.Type) *method {
	if v, ok := c.m.Load(t); ok {
		return v.(*method)
	}

	c.probes.Add(1)
	m := methodNotFound
	if rm, ok := t.MethodByName(c.name); ok && uref.IsAccessor(rm.Type, 1) {
		m = &method{fn: rm.Func}
	} else if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		if rm, ok := reflect.PointerTo(t).MethodByName(c.name); ok && uref.IsAccessor(rm.Type, 1) {
			m = &method{fn: rm.Func, addr: true}
		}
	}

	actual, loaded := c.m.LoadOrStore(t, m)
	if !loaded {
		c.log.Debug("method accessor resolved",
			zap.Stringer("type", t),
			zap.String("method", c.name),
			zap.Bool("found", m != methodNotFound),
		)
	}
	return actual.(*method)
}
