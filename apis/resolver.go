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

package apis

import (
	"dirpx.dev/tagx/strategy"
	"dirpx.dev/tagx/tag"
)

// TreeResolver answers "what kind of node is this?".
type TreeResolver interface {
	// Tag returns the node kind tag of node.
	Tag(node any) (tag.Tag, error)
	// Named returns the tree tag constant called id (e.g. "CLASS").
	Named(id string) (tag.Tag, error)
	// Strategy reports how tags are read from nodes. It triggers the
	// one-time probe if it has not run yet.
	Strategy() strategy.Kind
}

// TypeResolver answers "what kind of type is this?".
type TypeResolver interface {
	// Tag returns the type tag of typ. A nil typ yields the void tag.
	Tag(typ any) (tag.Tag, error)
	// NodeTag returns the type tag stored on a tree node.
	NodeTag(node any) (tag.Tag, error)
	// Named returns the type tag constant called id (e.g. "VOID").
	Named(id string) (tag.Tag, error)
	// Void returns the void type tag.
	Void() (tag.Tag, error)
}
