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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/registry"
	"dirpx.dev/tagx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildLoader builds and returns a new apis.Loader. If a pre-existing loader
// is provided, its classes are copied into the new one.
func (b *builder) BuildLoader(prev apis.Loader) apis.Loader {
	nld := registry.New()
	if prev != nil {
		for _, c := range prev.Entries() {
			_ = nld.Register(c)
		}
	}
	return nld
}

// BuildTree builds a tree tag resolver for p over ld.
func (b *builder) BuildTree(p apis.Profile, ld apis.Loader, log *zap.Logger) apis.TreeResolver {
	return resolver.NewTree(p, ld, log)
}

// BuildType builds a type tag resolver for p over ld.
func (b *builder) BuildType(p apis.Profile, ld apis.Loader, log *zap.Logger) apis.TypeResolver {
	return resolver.NewType(p, ld, log)
}
