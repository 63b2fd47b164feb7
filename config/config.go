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

package config

import (
	"reflect"

	"dirpx.dev/tagx/apis"
)

const (
	// DefaultTreeTagClass is the class holding the tree tag constants.
	DefaultTreeTagClass = "com.sun.tools.javac.tree.JCTree$Tag"
	// DefaultTypeTagClass is the class holding the type tag constants.
	DefaultTypeTagClass = "com.sun.tools.javac.code.TypeTag"
	// DefaultTreeTagMethod is the tree tag accessor of newer releases.
	DefaultTreeTagMethod = "GetTag"
	// DefaultTreeTagField is the tree tag field of older releases.
	DefaultTreeTagField = "tag"
	// DefaultTypeTagField is the type tag field of older releases.
	DefaultTypeTagField = "tag"
	// DefaultTypeTagMethod is the type tag accessor of newer releases.
	DefaultTypeTagMethod = "GetTag"
	// DefaultNodeTypeTagField is the field carrying a literal's type tag.
	DefaultNodeTypeTagField = "typetag"
	// DefaultVoidName is the name of the void type tag constant.
	DefaultVoidName = "VOID"
)

// NewProfile constructs an apis.Profile from the given options.
// Names left empty by the options fall back to their defaults.
func NewProfile(opts ...Option) apis.Profile {
	p := DefaultProfile()
	for _, opt := range opts {
		opt(&p)
	}
	fill(&p)
	return p
}

// DefaultProfile is the profile used when none is provided.
// It has no probe base types; the embedding toolchain integration sets them.
func DefaultProfile() apis.Profile {
	return apis.Profile{
		TreeTagClass:     DefaultTreeTagClass,
		TypeTagClass:     DefaultTypeTagClass,
		TreeTagMethod:    DefaultTreeTagMethod,
		TreeTagField:     DefaultTreeTagField,
		TypeTagField:     DefaultTypeTagField,
		TypeTagMethod:    DefaultTypeTagMethod,
		NodeTypeTagField: DefaultNodeTypeTagField,
		VoidName:         DefaultVoidName,
	}
}

// fill resets empty names to their defaults.
func fill(p *apis.Profile) {
	type name struct {
		dst *string
		def string
	}
	def := DefaultProfile()
	for _, f := range []name{
		{&p.TreeTagClass, def.TreeTagClass},
		{&p.TypeTagClass, def.TypeTagClass},
		{&p.TreeTagMethod, def.TreeTagMethod},
		{&p.TreeTagField, def.TreeTagField},
		{&p.TypeTagField, def.TypeTagField},
		{&p.TypeTagMethod, def.TypeTagMethod},
		{&p.NodeTypeTagField, def.NodeTypeTagField},
		{&p.VoidName, def.VoidName},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

// Option is a functional option that mutates an apis.Profile during construction.
type Option func(*apis.Profile)

// WithTreeTagClass sets the class holding the tree tag constants.
func WithTreeTagClass(name string) Option {
	return func(p *apis.Profile) { p.TreeTagClass = name }
}

// WithTypeTagClass sets the class holding the type tag constants.
func WithTypeTagClass(name string) Option {
	return func(p *apis.Profile) { p.TypeTagClass = name }
}

// WithTreeTag sets the accessor method and field probed for tree tags.
func WithTreeTag(method, field string) Option {
	return func(p *apis.Profile) {
		p.TreeTagMethod = method
		p.TreeTagField = field
	}
}

// WithTypeTag sets the field and accessor method read for type tags.
func WithTypeTag(field, method string) Option {
	return func(p *apis.Profile) {
		p.TypeTagField = field
		p.TypeTagMethod = method
	}
}

// WithNodeTypeTagField sets the field of a tree node carrying a type tag.
func WithNodeTypeTagField(name string) Option {
	return func(p *apis.Profile) { p.NodeTypeTagField = name }
}

// WithVoidName sets the name of the void type tag constant.
func WithVoidName(name string) Option {
	return func(p *apis.Profile) { p.VoidName = name }
}

// WithTreeBase sets the base type of tree nodes.
func WithTreeBase(t reflect.Type) Option {
	return func(p *apis.Profile) { p.TreeBase = t }
}

// WithTypeBase sets the base type of type objects.
func WithTypeBase(t reflect.Type) Option {
	return func(p *apis.Profile) { p.TypeBase = t }
}
