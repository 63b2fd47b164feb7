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

package resolver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tagx/failure"
	"dirpx.dev/tagx/internal/javactest"
	"dirpx.dev/tagx/registry"
	"dirpx.dev/tagx/resolver"
	"dirpx.dev/tagx/tag"
)

func TestType_NilIsVoid(t *testing.T) {
	r := resolver.NewType(javactest.FieldProfile(), newLoader(t), nil)

	void := mustTag(t)(r.Named("VOID"))
	assert.Equal(t, tag.Of(javactest.Void), void)
	assert.Equal(t, void, mustTag(t)(r.Void()))

	var typed *javactest.FieldClassType
	for i := 0; i < 3; i++ {
		assert.Equal(t, void, mustTag(t)(r.Tag(nil)))
		assert.Equal(t, void, mustTag(t)(r.Tag(typed)))
	}
}

func TestType_FieldRelease(t *testing.T) {
	r := resolver.NewType(javactest.FieldProfile(), newLoader(t), nil)

	assert.Equal(t, mustTag(t)(r.Named("CLASS")), mustTag(t)(r.Tag(javactest.NewFieldClassType("java.lang.String"))))
	assert.Equal(t, mustTag(t)(r.Named("INT")), mustTag(t)(r.Tag(javactest.NewFieldPrimType(javactest.Int))))
}

func TestType_MethodRelease(t *testing.T) {
	r := resolver.NewType(javactest.MethodProfile(), newLoader(t), nil)

	assert.Equal(t, mustTag(t)(r.Named("CLASS")), mustTag(t)(r.Tag(javactest.NewMethodClassType("java.lang.String"))))
	assert.Equal(t, mustTag(t)(r.Named("BOOLEAN")), mustTag(t)(r.Tag(javactest.NewMethodPrimType(javactest.Boolean))))
}

func TestType_StrategyPathIndependence(t *testing.T) {
	ld := newLoader(t)
	byField := resolver.NewType(javactest.FieldProfile(), ld, nil)
	byMethod := resolver.NewType(javactest.MethodProfile(), ld, nil)

	for _, k := range []javactest.TypeTag{javactest.Int, javactest.Boolean, javactest.Void} {
		a := mustTag(t)(byField.Tag(javactest.NewFieldPrimType(k)))
		b := mustTag(t)(byMethod.Tag(javactest.NewMethodPrimType(k)))
		assert.Equal(t, a, b, "kind %v", k)
	}
}

func TestType_NodeTag(t *testing.T) {
	r := resolver.NewType(javactest.FieldProfile(), newLoader(t), nil)

	assert.Equal(t, mustTag(t)(r.Named("BOOLEAN")), mustTag(t)(r.NodeTag(javactest.NewFieldLiteral(javactest.Boolean, true))))
	assert.Equal(t, mustTag(t)(r.Named("INT")), mustTag(t)(r.NodeTag(javactest.NewMethodLiteral(javactest.Int, 1))))

	_, err := r.NodeTag(javactest.NewFieldIdent("x"))
	require.ErrorIs(t, err, failure.ErrNoSuchField)
	assert.Contains(t, err.Error(), "typetag")
}

func TestType_Unsupported(t *testing.T) {
	t.Run("neither member", func(t *testing.T) {
		r := resolver.NewType(javactest.BrokenProfile(), newLoader(t), nil)
		_, err := r.Tag(javactest.BrokenType{})
		require.ErrorIs(t, err, failure.ErrUnsupported)
		assert.Contains(t, err.Error(), "javactest.BrokenType")
		assert.Contains(t, err.Error(), "has neither 'tag' nor GetTag()")
	})

	t.Run("base without accessor", func(t *testing.T) {
		// The field release base has no GetTag, so method-release types
		// are not readable even though they carry the method.
		r := resolver.NewType(javactest.FieldProfile(), newLoader(t), nil)
		_, err := r.Tag(javactest.NewMethodClassType("x"))
		var ue *failure.UnsupportedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "javactest.MethodClassType", ue.Type.String())
	})
}

func TestType_AccessorFailureKeepsIdentity(t *testing.T) {
	r := resolver.NewType(javactest.MethodProfile(), newLoader(t), nil)
	cause := errors.New("symbol completion failed")

	_, err := r.Tag(&javactest.MethodErrType{Err: cause})
	assert.Same(t, cause, err)
}

func TestType_NamedConstants(t *testing.T) {
	r := resolver.NewType(javactest.FieldProfile(), newLoader(t), nil)

	bot, err := r.Named("bot")
	require.NoError(t, err, "package-private constants are readable")
	assert.Equal(t, tag.Of(javactest.Bot), bot)

	_, err = r.Named("NOPE")
	require.ErrorIs(t, err, failure.ErrNoSuchField)

	_, err = resolver.NewType(javactest.FieldProfile(), registry.New(), nil).Tag(nil)
	require.ErrorIs(t, err, failure.ErrClassNotFound)
}
