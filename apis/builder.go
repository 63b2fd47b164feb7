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

import "go.uber.org/zap"

// Builder composes a Loader and the resolvers from a Profile.
// Implementations may migrate state from previous instances (prev), or ignore them.
type Builder interface {
	// BuildLoader constructs a Loader. May migrate classes from prev.
	BuildLoader(prev Loader) Loader
	// BuildTree constructs a TreeResolver for p over ld.
	BuildTree(p Profile, ld Loader, log *zap.Logger) TreeResolver
	// BuildType constructs a TypeResolver for p over ld.
	BuildType(p Profile, ld Loader, log *zap.Logger) TypeResolver
}
