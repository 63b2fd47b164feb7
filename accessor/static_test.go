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

package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tagx/accessor"
	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/failure"
	"dirpx.dev/tagx/registry"
)

const treeTagClass = "com.sun.tools.javac.tree.JCTree$Tag"

// treeTags holds the static constants of the tree tag class.
type treeTags struct {
	IDENT  *kind
	SELECT *kind
	hidden *kind
}

func newLoader(t *testing.T) apis.Loader {
	t.Helper()
	ld := registry.New()
	require.NoError(t, ld.Register(apis.Class{
		Name:    treeTagClass,
		Statics: &treeTags{IDENT: kindIdent, SELECT: kindSelect, hidden: kindIdent},
	}))
	return ld
}

func TestStaticCache_Get(t *testing.T) {
	c := accessor.NewStaticCache(treeTagClass, newLoader(t))
	assert.Equal(t, treeTagClass, c.Class())

	got, err := c.Get("IDENT")
	require.NoError(t, err)
	assert.Same(t, kindIdent, got)

	got, err = c.Get("hidden")
	require.NoError(t, err, "unexported statics are read through elevation")
	assert.Same(t, kindIdent, got)

	probes := c.Probes()
	for i := 0; i < 5; i++ {
		got, err = c.Get("IDENT")
		require.NoError(t, err)
		assert.Same(t, kindIdent, got)
	}
	assert.Equal(t, probes, c.Probes())
}

func TestStaticCache_Failures(t *testing.T) {
	t.Run("no such field", func(t *testing.T) {
		c := accessor.NewStaticCache(treeTagClass, newLoader(t))
		_, err := c.Get("NOPE")
		require.ErrorIs(t, err, failure.ErrNoSuchField)
		assert.Contains(t, err.Error(), "NOPE")
	})

	t.Run("class not found", func(t *testing.T) {
		c := accessor.NewStaticCache("com.sun.tools.javac.code.TypeTag", newLoader(t))
		_, err := c.Get("VOID")
		require.ErrorIs(t, err, failure.ErrClassNotFound)
		assert.Contains(t, err.Error(), "com.sun.tools.javac.code.TypeTag")
	})

	t.Run("nil loader", func(t *testing.T) {
		c := accessor.NewStaticCache(treeTagClass, nil)
		_, err := c.Get("IDENT")
		require.ErrorIs(t, err, failure.ErrClassNotFound)
	})

	t.Run("class without statics", func(t *testing.T) {
		ld := registry.New()
		require.NoError(t, ld.Register(apis.Class{Name: treeTagClass}))
		_, err := accessor.NewStaticCache(treeTagClass, ld).Get("IDENT")
		require.ErrorIs(t, err, failure.ErrNoSuchField)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		ld := registry.New()
		c := accessor.NewStaticCache(treeTagClass, ld)
		_, err := c.Get("IDENT")
		require.ErrorIs(t, err, failure.ErrClassNotFound)

		require.NoError(t, ld.Register(apis.Class{Name: treeTagClass, Statics: &treeTags{IDENT: kindIdent}}))
		got, err := c.Get("IDENT")
		require.NoError(t, err)
		assert.Same(t, kindIdent, got)
	})
}
