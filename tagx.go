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

package tagx

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/builder"
	"dirpx.dev/tagx/config"
	"dirpx.dev/tagx/strategy"
	"dirpx.dev/tagx/tag"
)

// init publishes the default snapshot: default profile, default builder,
// an empty loader and a no-op logger.
func init() {
	s := &state{
		profile: config.DefaultProfile(),
		bld:     builder.New(),
		log:     zap.NewNop(),
	}
	s.loader = s.bld.BuildLoader(nil)
	s.tree = s.bld.BuildTree(s.profile, s.loader, s.log)
	s.types = s.bld.BuildType(s.profile, s.loader, s.log)
	st.Store(s)
}

var (
	// ErrNilLoader is returned when a builder returns a nil loader.
	ErrNilLoader = errors.New("tagx: builder returned nil loader")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("tagx: builder returned nil resolver")
)

// TreeTag returns the node kind tag of node using the global tree resolver.
func TreeTag(node any) (tag.Tag, error) {
	return st.Load().tree.Tag(node)
}

// TreeTagNamed returns the tree tag constant called id, e.g. "CLASSDEF".
func TreeTagNamed(id string) (tag.Tag, error) {
	return st.Load().tree.Named(id)
}

// TreeStrategy reports how the global tree resolver reads node kinds.
func TreeStrategy() strategy.Kind {
	return st.Load().tree.Strategy()
}

// TypeTag returns the type tag of typ. A nil typ yields the void tag.
func TypeTag(typ any) (tag.Tag, error) {
	return st.Load().types.Tag(typ)
}

// TypeTagOf returns the type tag stored on a tree node, e.g. the literal
// kind of a literal node.
func TypeTagOf(node any) (tag.Tag, error) {
	return st.Load().types.NodeTag(node)
}

// TypeTagNamed returns the type tag constant called id, e.g. "INT".
func TypeTagNamed(id string) (tag.Tag, error) {
	return st.Load().types.Named(id)
}

// Void returns the void type tag.
func Void() (tag.Tag, error) {
	return st.Load().types.Void()
}

// RegisterClass makes c loadable through the global loader.
// It serializes with writers, so a loader migration by SetBuilder or SetAll
// never drops a class registered concurrently.
func RegisterClass(c apis.Class) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	return st.Load().loader.Register(c)
}

// Profile returns the global profile.
func Profile() apis.Profile {
	return st.Load().profile
}

// SetProfile sets the global profile to p and rebuilds both resolvers.
// Registered classes are kept: the loader does not depend on the profile.
func SetProfile(p apis.Profile) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(snapshot(p, old.loader, old.bld, old.log, old.pld))
}

// SetProfileFile loads a YAML profile from path, fills defaults and applies
// it with SetProfile.
func SetProfileFile(path string, opts ...config.Option) error {
	p, err := config.LoadProfile(path, opts...)
	if err != nil {
		return err
	}
	SetProfile(p)
	return nil
}

// Loader returns the global loader.
func Loader() apis.Loader {
	return st.Load().loader
}

// SetLoader sets the global loader to ld, pins it and rebuilds both
// resolvers over it. A nil ld is ignored.
func SetLoader(ld apis.Loader) {
	if ld == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(snapshot(old.profile, ld, old.bld, old.log, true))
}

// IsLoaderPinned reports whether the global loader survives SetBuilder.
func IsLoaderPinned() bool {
	return st.Load().pld
}

// PinLoader keeps the global loader across SetBuilder calls.
func PinLoader() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.pld = true
	st.Store(&next)
}

// UnpinLoader lets SetBuilder rebuild the global loader again.
func UnpinLoader() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.pld = false
	st.Store(&next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b. The loader is rebuilt by b,
// migrating registered classes, unless it is pinned. Both resolvers are
// rebuilt. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ld := old.loader
	if !old.pld {
		ld = b.BuildLoader(old.loader)
	}
	st.Store(snapshot(old.profile, ld, b, old.log, old.pld))
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger sets the global logger and rebuilds both resolvers so their
// caches log through it. A nil log installs a no-op logger.
func SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(snapshot(old.profile, old.loader, old.bld, log, old.pld))
}

// SetAll replaces the global state in one step.
//
// Nil arguments leave the corresponding component unchanged, except ld:
// a nil ld makes the (new or old) builder build a fresh loader migrating
// the old classes, and unpins it. A non-nil ld is pinned.
func SetAll(p *apis.Profile, ld apis.Loader, bld apis.Builder, log *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	np := old.profile
	if p != nil {
		np = *p
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	nlog := old.log
	if log != nil {
		nlog = log
	}
	nld := ld
	npld := true
	if nld == nil {
		nld = nbld.BuildLoader(old.loader)
		npld = false
	}

	st.Store(snapshot(np, nld, nbld, nlog, npld))
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global tagx state.
var st atomic.Pointer[state]

// state is the global tagx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// profile names the probed toolchain members.
	profile apis.Profile
	// loader resolves tag-defining classes.
	loader apis.Loader
	// tree resolves node kind tags.
	tree apis.TreeResolver
	// types resolves type tags.
	types apis.TypeResolver
	// bld builds loaders and resolvers.
	bld apis.Builder
	// log is handed to every resolver built for this snapshot.
	log *zap.Logger
	// pld indicates whether the loader is pinned.
	pld bool
}

// snapshot builds a new state from the given components, rebuilding both
// resolvers with bld. It panics if bld returns nil components.
func snapshot(p apis.Profile, ld apis.Loader, bld apis.Builder, log *zap.Logger, pld bool) *state {
	if ld == nil {
		panic(ErrNilLoader)
	}
	tree := bld.BuildTree(p, ld, log)
	types := bld.BuildType(p, ld, log)
	if tree == nil || types == nil {
		panic(ErrNilResolver)
	}
	return &state{
		profile: p,
		loader:  ld,
		tree:    tree,
		types:   types,
		bld:     bld,
		log:     log,
		pld:     pld,
	}
}
