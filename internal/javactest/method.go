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

// Method release: tags are only reachable through GetTag.

// MethodTree is implemented by every node.
type MethodTree interface {
	GetTag() TreeTag
}

// MethodType is implemented by every type.
type MethodType interface {
	GetTag() TypeTag
}

// MethodIdent is an identifier node.
type MethodIdent struct {
	Name string
}

// GetTag returns IDENT.
func (*MethodIdent) GetTag() TreeTag { return Ident }

// MethodSelect is a field access node.
type MethodSelect struct {
	Selected any
	Name     string
}

// GetTag returns SELECT.
func (*MethodSelect) GetTag() TreeTag { return Select }

// MethodLiteral is a literal node; typetag is its literal kind.
type MethodLiteral struct {
	typetag TypeTag
	Value   any
}

// GetTag returns LITERAL.
func (*MethodLiteral) GetTag() TreeTag { return Literal }

// MethodClassType is a class type with a value receiver accessor.
type MethodClassType struct {
	Name string
}

// GetTag returns CLASS.
func (MethodClassType) GetTag() TypeTag { return Class }

// MethodPrimType is a primitive type.
type MethodPrimType struct {
	kind TypeTag
}

// GetTag returns the primitive kind.
func (p *MethodPrimType) GetTag() TypeTag { return p.kind }

// MethodErrType fails to report its tag.
type MethodErrType struct {
	Err error
}

// GetTag returns Err.
func (e *MethodErrType) GetTag() (TypeTag, error) { return 0, e.Err }

// NewMethodIdent returns an identifier node called name.
func NewMethodIdent(name string) *MethodIdent { return &MethodIdent{Name: name} }

// NewMethodSelect returns a node selecting name from selected.
func NewMethodSelect(selected any, name string) *MethodSelect {
	return &MethodSelect{Selected: selected, Name: name}
}

// NewMethodLiteral returns a literal node of the given kind.
func NewMethodLiteral(kind TypeTag, value any) *MethodLiteral {
	return &MethodLiteral{typetag: kind, Value: value}
}

// NewMethodClassType returns a class type called name.
func NewMethodClassType(name string) MethodClassType { return MethodClassType{Name: name} }

// NewMethodPrimType returns a primitive type of the given kind.
func NewMethodPrimType(kind TypeTag) *MethodPrimType { return &MethodPrimType{kind: kind} }

// Broken release: neither tag field nor accessor.

// BrokenTree is the node base of the broken release.
type BrokenTree struct{ Kind int }

// BrokenType is the type base of the broken release.
type BrokenType struct{ Kind int }
