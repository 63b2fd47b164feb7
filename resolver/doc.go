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

// Package resolver reads tree (node kind) tags and type tags from toolchain
// objects whose layout differs between releases.
//
// Both resolvers follow one pattern: find out once which member of the
// object model carries the tag, then read it the same way on every call,
// and wrap the raw value in a tag.Tag.
//
// The probing order differs per resolver and is kept as is:
//
//   - Tree tags: accessor method first (Profile.TreeTagMethod), else the
//     field (Profile.TreeTagField). The choice is made against
//     Profile.TreeBase on first use and never revisited.
//
//   - Type tags: the field (Profile.TypeTagField) first, looked up per
//     runtime type; if a type lacks it, the accessor method
//     (Profile.TypeTagMethod), whose presence on Profile.TypeBase is
//     checked once. A nil type yields the void constant.
//
// Constants such as "VOID" or "CLASS" are static fields of the tag-defining
// classes named by the profile and are read through an apis.Loader.
//
// Failures are returned as produced by the accessor layer (see package
// failure). None of them is retried: a missing member is a compatibility
// problem with the toolchain release, not a transient condition.
package resolver
