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

// Package javactest provides two fake compiler toolchain releases with
// different internal layouts, for tests of the tag resolvers.
//
// The field release stores tags in unexported fields of embedded base
// structs. The method release exposes them only through GetTag accessors.
// Both use the same tag constants, so a resolver must produce equal tags
// from either layout.
package javactest

import (
	"fmt"
	"reflect"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/config"
)

// Class names of the tag-defining classes.
const (
	TreeTagClass = "com.sun.tools.javac.tree.JCTree$Tag"
	TypeTagClass = "com.sun.tools.javac.code.TypeTag"
)

// TreeTag is the node kind enum of the fake toolchain.
type TreeTag int

// Tree tags.
const (
	NoTag TreeTag = iota
	Ident
	Select
	Literal
	ClassDef
)

var treeTagNames = [...]string{"NO_TAG", "IDENT", "SELECT", "LITERAL", "CLASSDEF"}

// String returns the constant name.
func (t TreeTag) String() string {
	if int(t) < len(treeTagNames) {
		return treeTagNames[t]
	}
	return fmt.Sprintf("TreeTag(%d)", int(t))
}

// TypeTag is the type kind enum of the fake toolchain.
type TypeTag int

// Type tags.
const (
	Void TypeTag = iota
	Int
	Boolean
	Class
	Bot
)

var typeTagNames = [...]string{"VOID", "INT", "BOOLEAN", "CLASS", "BOT"}

// String returns the constant name.
func (t TypeTag) String() string {
	if int(t) < len(typeTagNames) {
		return typeTagNames[t]
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// TreeTags holds the static constants of the tree tag class.
type TreeTags struct {
	NO_TAG   TreeTag
	IDENT    TreeTag
	SELECT   TreeTag
	LITERAL  TreeTag
	CLASSDEF TreeTag
}

// TypeTags holds the static constants of the type tag class. BOT is
// unexported to mirror package-private constants.
type TypeTags struct {
	VOID    TypeTag
	INT     TypeTag
	BOOLEAN TypeTag
	CLASS   TypeTag
	bot     TypeTag
}

// Classes returns fresh descriptors of the tag-defining classes.
func Classes() []apis.Class {
	return []apis.Class{
		{
			Name:    TreeTagClass,
			Type:    reflect.TypeFor[TreeTag](),
			Statics: &TreeTags{NO_TAG: NoTag, IDENT: Ident, SELECT: Select, LITERAL: Literal, CLASSDEF: ClassDef},
		},
		{
			Name:    TypeTagClass,
			Type:    reflect.TypeFor[TypeTag](),
			Statics: &TypeTags{VOID: Void, INT: Int, BOOLEAN: Boolean, CLASS: Class, bot: Bot},
		},
	}
}

// Register registers Classes with ld.
func Register(ld apis.Loader) error {
	for _, c := range Classes() {
		if err := ld.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// FieldProfile describes the field release.
func FieldProfile() apis.Profile {
	return config.NewProfile(
		config.WithTreeBase(reflect.TypeFor[FieldTree]()),
		config.WithTypeBase(reflect.TypeFor[FieldType]()),
	)
}

// MethodProfile describes the method release.
func MethodProfile() apis.Profile {
	return config.NewProfile(
		config.WithTreeBase(reflect.TypeFor[MethodTree]()),
		config.WithTypeBase(reflect.TypeFor[MethodType]()),
	)
}

// BrokenProfile describes a release the resolvers do not support.
func BrokenProfile() apis.Profile {
	return config.NewProfile(
		config.WithTreeBase(reflect.TypeFor[BrokenTree]()),
		config.WithTypeBase(reflect.TypeFor[BrokenType]()),
	)
}
