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
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tagx/accessor"
	"dirpx.dev/tagx/failure"
)

func TestMethodCache_Call(t *testing.T) {
	c := accessor.NewMethodCache("GetTag")

	cases := []struct {
		name string
		obj  any
		want any
	}{
		{"value receiver", valueGetter{t: 1}, 1},
		{"value receiver via pointer", &valueGetter{t: 2}, 2},
		{"pointer receiver", &ptrGetter{t: 3}, 3},
		{"pointer receiver on value", ptrGetter{t: 4}, 4},
		{"value with nil error", okGetterWithError{}, "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Call(tc.obj)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMethodCache_Failures(t *testing.T) {
	c := accessor.NewMethodCache("GetTag")

	t.Run("missing", func(t *testing.T) {
		_, err := c.Call(&ident{})
		require.ErrorIs(t, err, failure.ErrNoSuchMethod)
		assert.False(t, c.Has(reflect.TypeOf(&ident{})))
	})

	t.Run("nil", func(t *testing.T) {
		_, err := c.Call(nil)
		require.ErrorIs(t, err, failure.ErrNoSuchMethod)
	})

	t.Run("returned error keeps identity", func(t *testing.T) {
		_, err := c.Call(failingGetter{})
		assert.Same(t, io.ErrUnexpectedEOF, err)
	})

	t.Run("panic surfaces the cause", func(t *testing.T) {
		_, err := c.Call(panickingGetter{})
		assert.Same(t, errBoom, err)
	})

	t.Run("nil pointer receiver", func(t *testing.T) {
		var p *ptrGetter
		_, err := c.Call(p)
		require.Error(t, err)
	})
}

func TestMethodCache_CachedPerType(t *testing.T) {
	c := accessor.NewMethodCache("GetTag")

	for i := 0; i < 5; i++ {
		_, _ = c.Call(valueGetter{t: i})
		_, _ = c.Call(&ident{})
	}
	assert.EqualValues(t, 2, c.Probes())
	assert.True(t, c.Has(reflect.TypeOf(valueGetter{})))
	assert.EqualValues(t, 2, c.Probes())
}
