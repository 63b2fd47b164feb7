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

// Package tagx provides a global, process-wide tag resolution service for
// code that inspects a compiler toolchain's object model across releases.
//
// A toolchain tells tree nodes and types apart by a "tag": an enum constant
// read from a node or type object. Between releases the way to read it
// moves around. One release exposes a GetTag accessor, another keeps the
// tag in an unexported field of a base struct. tagx hides the difference
// and hands out tag.Tag values that compare equal no matter which path
// produced them:
//
//	if k, _ := tagx.TreeTag(node); k == classDef {
//		...
//	}
//
// # Design
//
// The core of tagx is a read-mostly global snapshot (state) holding:
//
//   - Profile: the names of the probed members (accessor methods, fields,
//     tag-defining classes) and the base types of nodes and types.
//
//   - Loader: a registry of toolchain classes by qualified name. Tag
//     constants are read from the static fields of these classes.
//
//   - TreeResolver and TypeResolver: read tags from nodes and types. The
//     tree resolver probes the node base type once, preferring the accessor
//     method over the field. The type resolver reads the field first and
//     falls back to the accessor method per runtime type.
//
//   - Builder: a pluggable factory for the loader and both resolvers.
//
// Readers load the current snapshot atomically and never take locks.
// Writers (SetProfile, SetLoader, SetBuilder, SetLogger, SetAll) serialize
// on a build mutex, assemble a new snapshot and publish it with an atomic
// swap. Each rebuild starts with empty accessor caches.
//
// # Pinning
//
// A loader installed with SetLoader or SetAll is pinned: SetBuilder keeps
// it instead of asking the new builder for a fresh one. UnpinLoader lets
// the builder migrate registered classes into a loader of its own again.
//
// # Failures
//
// Every failure raised while reading a tag (missing field or method,
// unloadable class, inaccessible member, unsupported release) reaches the
// caller unchanged and can be matched with errors.Is against the
// sentinels of package failure.
package tagx
