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

package reflect

import (
	"errors"
	"reflect"
	"unsafe"
)

// MaxIndirect limits how many pointer levels Indirect follows.
const MaxIndirect = 8

var (
	// ErrReflectNil is returned when a nil value (or nil pointer) is provided.
	ErrReflectNil = errors.New("reflect: nil value provided")
	// ErrReflectNotStruct indicates that the value, after following pointers,
	// is not a struct and therefore has no fields.
	ErrReflectNotStruct = errors.New("reflect: value is not a struct")
	// ErrReflectTooDeep indicates more than MaxIndirect pointer levels.
	ErrReflectTooDeep = errors.New("reflect: pointer chain too deep")
)

var errorType = reflect.TypeFor[error]()

// IsNil reports whether v is nil or a nil pointer, interface, map, slice,
// chan or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// StructType follows pointers on t and returns the struct type underneath.
func StructType(t reflect.Type) (reflect.Type, bool) {
	for i := 0; t != nil && i <= MaxIndirect; i++ {
		switch t.Kind() {
		case reflect.Ptr:
			t = t.Elem()
		case reflect.Struct:
			return t, true
		default:
			return nil, false
		}
	}
	return nil, false
}

// Indirect follows pointers on v and returns an addressable struct value.
//
// Pointer targets are addressable already. A struct passed by value is
// copied into a fresh addressable value so its fields can be read through
// Elevate.
func Indirect(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, ErrReflectNil
	}
	rv := reflect.ValueOf(v)
	for i := 0; ; i++ {
		if i > MaxIndirect {
			return reflect.Value{}, ErrReflectTooDeep
		}
		switch rv.Kind() {
		case reflect.Ptr, reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, ErrReflectNil
			}
			rv = rv.Elem()
			continue
		case reflect.Struct:
			if !rv.CanAddr() {
				cp := reflect.New(rv.Type()).Elem()
				cp.Set(rv)
				rv = cp
			}
			return rv, nil
		default:
			return reflect.Value{}, ErrReflectNotStruct
		}
	}
}

// FieldPath locates the field name on struct type t, including fields
// promoted from embedded structs. It returns the index path and whether
// reading the field requires visibility elevation (some step of the path
// is unexported).
func FieldPath(t reflect.Type, name string) (index []int, elevate bool, ok bool) {
	st, ok := StructType(t)
	if !ok {
		return nil, false, false
	}
	sf, ok := st.FieldByName(name)
	if !ok {
		return nil, false, false
	}
	// Walk the path to learn whether any hop is unexported.
	cur := st
	for _, i := range sf.Index {
		f := cur.Field(i)
		if !f.IsExported() {
			elevate = true
		}
		cur = f.Type
		if cur.Kind() == reflect.Ptr {
			cur = cur.Elem()
		}
	}
	return sf.Index, elevate, true
}

// ReadField reads the field at index from the addressable struct value v.
// When elevate is set, the field is read through its address so that
// unexported fields are visible.
func ReadField(v reflect.Value, index []int, elevate bool) (any, error) {
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		return nil, err
	}
	if elevate {
		f = Elevate(f)
	}
	return f.Interface(), nil
}

// Elevate returns a view of the addressable value f that can be converted
// with Interface even if f was obtained through unexported fields.
func Elevate(f reflect.Value) reflect.Value {
	if f.CanInterface() || !f.CanAddr() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// IsAccessor reports whether fn has the shape of a zero-argument accessor:
// recv receiver parameters, no other inputs, and a single result optionally
// followed by an error.
func IsAccessor(fn reflect.Type, recv int) bool {
	if fn.NumIn() != recv || fn.IsVariadic() {
		return false
	}
	switch fn.NumOut() {
	case 1:
		return true
	case 2:
		return fn.Out(1) == errorType
	}
	return false
}
