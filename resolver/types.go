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

package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/tagx/accessor"
	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
	"dirpx.dev/tagx/strategy"
	"dirpx.dev/tagx/tag"
	uref "dirpx.dev/tagx/utils/reflect"
)

// NewType constructs a TypeResolver for p, loading tag constants from ld.
// A nil log disables logging.
func NewType(p apis.Profile, ld apis.Loader, log *zap.Logger) apis.TypeResolver {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("type")
	r := &typeResolver{
		voidName:    p.VoidName,
		fields:      accessor.NewFieldCache(p.TypeTagField, accessor.WithLogger(log)),
		nodeFields:  accessor.NewFieldCache(p.NodeTypeTagField, accessor.WithLogger(log)),
		methods:     accessor.NewMethodCache(p.TypeTagMethod, accessor.WithLogger(log)),
		statics:     accessor.NewStaticCache(p.TypeTagClass, ld, accessor.WithLogger(log)),
		unsupported: fmt.Sprintf("has neither '%s' nor %s()", p.TypeTagField, p.TypeTagMethod),
	}
	r.hasMethod = sync.OnceValue(func() bool {
		// Without a base type the method is looked up per runtime type only.
		ok := p.TypeBase == nil || strategy.HasMethod(p.TypeBase, p.TypeTagMethod)
		log.Debug("type tag accessor probed",
			zap.String("method", p.TypeTagMethod),
			zap.Bool("available", ok),
		)
		return ok
	})
	return r
}

// typeResolver reads type tags, field first and accessor method second.
type typeResolver struct {
	voidName    string
	fields      *accessor.FieldCache
	nodeFields  *accessor.FieldCache
	methods     *accessor.MethodCache
	statics     *accessor.StaticCache
	hasMethod   func() bool
	unsupported string
}

// Ensure typeResolver implements apis.TypeResolver.
var _ apis.TypeResolver = (*typeResolver)(nil)

// Tag returns the type tag of typ, or the void tag if typ is nil.
func (r *typeResolver) Tag(typ any) (tag.Tag, error) {
	if uref.IsNil(typ) {
		return r.Void()
	}

	v, err := r.fields.Get(typ)
	if err == nil {
		return tag.From(v)
	}
	if !errors.Is(err, failure.ErrNoSuchField) {
		return tag.Tag{}, failure.Propagate(err)
	}

	rt := reflect.TypeOf(typ)
	if !r.hasMethod() || !r.methods.Has(rt) {
		return tag.Tag{}, &failure.UnsupportedError{Type: rt, Reason: r.unsupported}
	}
	v, err = r.methods.Call(typ)
	if err != nil {
		return tag.Tag{}, failure.Propagate(err)
	}
	return tag.From(v)
}

// NodeTag returns the type tag stored on node, such as the kind of a literal.
func (r *typeResolver) NodeTag(node any) (tag.Tag, error) {
	v, err := r.nodeFields.Get(node)
	if err != nil {
		return tag.Tag{}, failure.Propagate(err)
	}
	return tag.From(v)
}

// Named returns the type tag constant called id.
func (r *typeResolver) Named(id string) (tag.Tag, error) {
	return named(r.statics, id)
}

// Void returns the void type tag.
func (r *typeResolver) Void() (tag.Tag, error) {
	return r.Named(r.voidName)
}
