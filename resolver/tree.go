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
	"reflect"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/tagx/accessor"
	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
	"dirpx.dev/tagx/strategy"
	"dirpx.dev/tagx/tag"
)

// NewTree constructs a TreeResolver for p, loading tag constants from ld.
// The strategy probe runs lazily on first use. A nil log disables logging.
func NewTree(p apis.Profile, ld apis.Loader, log *zap.Logger) apis.TreeResolver {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("tree")
	r := &treeResolver{
		fields:  accessor.NewFieldCache(p.TreeTagField, accessor.WithLogger(log)),
		methods: accessor.NewMethodCache(p.TreeTagMethod, accessor.WithLogger(log)),
		statics: accessor.NewStaticCache(p.TreeTagClass, ld, accessor.WithLogger(log)),
	}
	r.choice = sync.OnceValues(func() (strategy.Choice, error) {
		return probe(log, p.TreeBase,
			strategy.Candidate{Kind: strategy.Method, Member: p.TreeTagMethod},
			strategy.Candidate{Kind: strategy.Field, Member: p.TreeTagField},
		)
	})
	return r
}

// treeResolver reads tree tags with a strategy fixed at first use.
type treeResolver struct {
	choice  func() (strategy.Choice, error)
	fields  *accessor.FieldCache
	methods *accessor.MethodCache
	statics *accessor.StaticCache
}

// Ensure treeResolver implements apis.TreeResolver.
var _ apis.TreeResolver = (*treeResolver)(nil)

// Tag returns the node kind tag of node.
func (r *treeResolver) Tag(node any) (tag.Tag, error) {
	c, err := r.choice()
	if err != nil {
		return tag.Tag{}, failure.Propagate(err)
	}

	var v any
	switch c.Kind {
	case strategy.Method:
		v, err = r.methods.Call(node)
	default:
		v, err = r.fields.Get(node)
	}
	if err != nil {
		return tag.Tag{}, failure.Propagate(err)
	}
	return tag.From(v)
}

// Named returns the tree tag constant called id.
func (r *treeResolver) Named(id string) (tag.Tag, error) {
	return named(r.statics, id)
}

// Strategy reports the strategy chosen by the probe, or strategy.None if
// the toolchain release is unsupported.
func (r *treeResolver) Strategy() strategy.Kind {
	c, err := r.choice()
	if err != nil {
		return strategy.None
	}
	return c.Kind
}

// probe runs the one-time strategy selection and logs its outcome.
func probe(log *zap.Logger, base reflect.Type, cs ...strategy.Candidate) (strategy.Choice, error) {
	c, err := strategy.Probe(base, cs...)
	if err != nil {
		log.Warn("no tag strategy applies", zap.Error(err))
		return c, err
	}
	log.Debug("tag strategy selected",
		zap.Stringer("kind", c.Kind),
		zap.String("member", c.Member),
	)
	return c, nil
}

func named(statics *accessor.StaticCache, id string) (tag.Tag, error) {
	v, err := statics.Get(id)
	if err != nil {
		return tag.Tag{}, failure.Propagate(err)
	}
	return tag.From(v)
}
