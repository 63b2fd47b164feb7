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

package javactest

// Field release: tags live in unexported fields.

// FieldTree is the base of every node.
type FieldTree struct {
	tag TreeTag
}

// FieldIdent is an identifier node.
type FieldIdent struct {
	FieldTree
	Name string
}

// FieldSelect is a field access node.
type FieldSelect struct {
	FieldTree
	Selected any
	Name     string
}

// FieldLiteral is a literal node; typetag is its literal kind.
type FieldLiteral struct {
	FieldTree
	typetag TypeTag
	Value   any
}

// FieldType is the base of every type.
type FieldType struct {
	tag TypeTag
}

// FieldClassType is a class type.
type FieldClassType struct {
	FieldType
	Name string
}

// FieldPrimType is a primitive type.
type FieldPrimType struct {
	FieldType
}

// NewFieldIdent returns an identifier node called name.
func NewFieldIdent(name string) *FieldIdent {
	return &FieldIdent{FieldTree: FieldTree{tag: Ident}, Name: name}
}

// NewFieldSelect returns a node selecting name from selected.
func NewFieldSelect(selected any, name string) *FieldSelect {
	return &FieldSelect{FieldTree: FieldTree{tag: Select}, Selected: selected, Name: name}
}

// NewFieldLiteral returns a literal node of the given kind.
func NewFieldLiteral(kind TypeTag, value any) *FieldLiteral {
	return &FieldLiteral{FieldTree: FieldTree{tag: Literal}, typetag: kind, Value: value}
}

// NewFieldClassType returns a class type called name.
func NewFieldClassType(name string) *FieldClassType {
	return &FieldClassType{FieldType: FieldType{tag: Class}, Name: name}
}

// NewFieldPrimType returns a primitive type of the given kind.
func NewFieldPrimType(kind TypeTag) *FieldPrimType {
	return &FieldPrimType{FieldType: FieldType{tag: kind}}
}
