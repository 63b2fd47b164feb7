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

// Package accessor memoizes reflective member lookups on toolchain objects.
//
// Three caches are provided, each bound to one member name:
//
//   - FieldCache reads an instance field. The resolved field (its index
//     path and whether it must be read through visibility elevation) is
//     cached per runtime type. A type lacking the field is cached too, so
//     later calls fail fast with failure.ErrNoSuchField without probing.
//
//   - MethodCache invokes a zero-argument accessor method, cached per
//     runtime type in the same way.
//
//   - StaticCache reads static fields of one toolchain class, loaded by
//     name through an apis.Loader, and caches each value by field name.
//
// # Concurrency
//
// All caches are safe for concurrent use. Entries are append-only: two
// callers racing on the same key may both do the reflective work, but
// sync.Map.LoadOrStore keeps the first stored entry and every caller
// observes it from then on. StaticCache additionally collapses concurrent
// misses for the same field with singleflight, since loading a class may
// be expensive.
package accessor
