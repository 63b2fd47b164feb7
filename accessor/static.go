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
	"golang.org/x/sync/singleflight"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
	uref "dirpx.dev/tagx/utils/reflect"
)

// StaticCache reads static fields of one toolchain class.
//
// The owning class is fixed per cache, so values are cached by field name
// alone. Failures are not cached: a class registered later becomes visible
// on the next call.
type StaticCache struct {
	class  string
	loader apis.Loader
	log    *zap.Logger
	m      sync.Map // map[string]any
	sf     singleflight.Group
	probes atomic.Int64
}

// NewStaticCache returns an empty cache over the class named class.
func NewStaticCache(class string, loader apis.Loader, opts ...Option) *StaticCache {
	o := newOptions(opts)
	return &StaticCache{class: class, loader: loader, log: o.log}
}

// Class returns the qualified name of the class this cache reads.
func (c *StaticCache) Class() string { return c.class }

// Probes returns how many times the class had to be inspected.
func (c *StaticCache) Probes() int64 { return c.probes.Load() }

// Get returns the value of the static field called name.
//
// It fails with failure.ErrClassNotFound if the class is not loadable and
// with failure.ErrNoSuchField if the class has no such static field.
func (c *StaticCache) Get(name string) (any, error) {
	if v, ok := c.m.Load(name); ok {
		return v, nil
	}
	v, err, _ := c.sf.Do(name, func() (any, error) {
		if v, ok := c.m.Load(name); ok {
			return v, nil
		}
		v, err := c.read(name)
		if err != nil {
			return nil, err
		}
		actual, loaded := c.m.LoadOrStore(name, v)
		if !loaded {
			c.log.Debug("static field resolved",
				zap.String("class", c.class),
				zap.String("field", name),
			)
		}
		return actual, nil
	})
	return v, failure.Propagate(err)
}

func (c *StaticCache) read(name string) (any, error) {
	c.probes.Add(1)
	if c.loader == nil {
		return nil, &failure.ClassNotFoundError{Name: c.class}
	}
	cls, err := c.loader.Load(c.class)
	if err != nil {
		return nil, failure.Propagate(err)
	}
	if cls.Statics == nil {
		return nil, failure.NoSuchField(cls.Type, name)
	}
	sv, err := uref.Indirect(cls.Statics)
	if err != nil {
		return nil, failure.IllegalAccess(reflect.TypeOf(cls.Statics), name, err)
	}
	index, elevate, ok := uref.FieldPath(sv.Type(), name)
	if !ok {
		return nil, failure.NoSuchField(sv.Type(), name)
	}
	v, err := uref.ReadField(sv, index, elevate)
	if err != nil {
		return nil, failure.IllegalAccess(sv.Type(), name, err)
	}
	return v, nil
}
