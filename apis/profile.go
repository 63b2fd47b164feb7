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

import "reflect"

// Profile names the members of the toolchain object model that the
// resolvers probe. It is passed by value and should be treated as immutable
// by implementations.
//
// A Profile describes one family of toolchain releases. When a release
// renames a member, a new Profile is all that changes.
type Profile struct {
	// TreeTagClass is the qualified name of the class whose static fields
	// are the tree (node kind) tag constants.
	TreeTagClass string `yaml:"tree_tag_class"`
	// TypeTagClass is the qualified name of the class whose static fields
	// are the type tag constants.
	TypeTagClass string `yaml:"type_tag_class"`

	// TreeTagMethod is the accessor method probed first on TreeBase.
	TreeTagMethod string `yaml:"tree_tag_method"`
	// TreeTagField is the field probed when TreeTagMethod is absent.
	TreeTagField string `yaml:"tree_tag_field"`

	// TypeTagField is the field read first from type objects.
	TypeTagField string `yaml:"type_tag_field"`
	// TypeTagMethod is the accessor used when TypeTagField is absent.
	TypeTagMethod string `yaml:"type_tag_method"`

	// NodeTypeTagField is the field of a tree node carrying a type tag
	// (e.g. the literal kind of a literal node).
	NodeTypeTagField string `yaml:"node_type_tag_field"`

	// VoidName is the type tag constant returned for an absent type.
	VoidName string `yaml:"void_name"`

	// TreeBase is the base type of tree nodes, probed once to pick the
	// tree tag strategy.
	TreeBase reflect.Type `yaml:"-"`
	// TypeBase is the base type of type objects, probed once for
	// TypeTagMethod.
	TypeBase reflect.Type `yaml:"-"`
}
