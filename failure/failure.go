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

// Package failure carries reflective failures across API boundaries
// without re-wrapping them.
//
// Every error produced while probing the toolchain object model is one of
// the kinds below. Callers match kinds with errors.Is and get the precise
// member or type name from the error text:
//
//	if errors.Is(err, failure.ErrNoSuchField) { ... }
//
// Propagate and Invoke never replace an error with a wrapper of their own,
// so the error observed by the outermost caller is the same value that was
// created where the failure happened.
package failure

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoSuchField indicates the probed type does not declare the field.
	ErrNoSuchField = errors.New("tagx: no such field")
	// ErrNoSuchMethod indicates the probed type does not declare the method.
	ErrNoSuchMethod = errors.New("tagx: no such method")
	// ErrClassNotFound indicates the named toolchain class is not registered.
	ErrClassNotFound = errors.New("tagx: class not found")
	// ErrIllegalAccess indicates a member exists but could not be read.
	ErrIllegalAccess = errors.New("tagx: illegal access")
	// ErrUnsupported indicates no known strategy applies to a type.
	ErrUnsupported = errors.New("tagx: unsupported toolchain shape")
)

// Propagate surfaces err to the caller as is.
//
// It exists so call sites read as an explicit hand-off of a lower-layer
// failure: the returned value is err itself (Propagate(err) == err).
func Propagate(err error) error {
	return err
}

// Invoke runs fn and converts a panic raised inside it into an error.
//
// A panic carrying an error is returned as that very error. Any other panic
// value is returned as a *PanicError. Errors returned by fn pass through
// unchanged.
func Invoke(fn func() (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}

// MemberError reports a field or method missing from (or unreadable on) a type.
type MemberError struct {
	// Kind is one of ErrNoSuchField, ErrNoSuchMethod or ErrIllegalAccess.
	Kind error
	// Type is the runtime type that was probed. It may be nil.
	Type reflect.Type
	// Member is the probed field or method name.
	Member string
	// Err is an optional underlying cause.
	Err error
}

// Error implements error.
func (e *MemberError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Member)
	if e.Type != nil {
		msg = fmt.Sprintf("%v: %s.%s", e.Kind, e.Type, e.Member)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the kind of e.
func (e *MemberError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause, if any.
func (e *MemberError) Unwrap() error {
	return e.Err
}

// NoSuchField returns a MemberError of kind ErrNoSuchField.
func NoSuchField(t reflect.Type, name string) error {
	return &MemberError{Kind: ErrNoSuchField, Type: t, Member: name}
}

// NoSuchMethod returns a MemberError of kind ErrNoSuchMethod.
func NoSuchMethod(t reflect.Type, name string) error {
	return &MemberError{Kind: ErrNoSuchMethod, Type: t, Member: name}
}

// IllegalAccess returns a MemberError of kind ErrIllegalAccess.
func IllegalAccess(t reflect.Type, name string, cause error) error {
	return &MemberError{Kind: ErrIllegalAccess, Type: t, Member: name, Err: cause}
}

// ClassNotFoundError reports a toolchain class that is not registered.
type ClassNotFoundError struct {
	Name string
}

// Error implements error.
func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrClassNotFound, e.Name)
}

// Is matches ErrClassNotFound.
func (e *ClassNotFoundError) Is(target error) bool {
	return target == ErrClassNotFound
}

// UnsupportedError is the configuration error raised when neither known
// strategy applies to an object's runtime type.
type UnsupportedError struct {
	// Type is the offending runtime type.
	Type reflect.Type
	// Reason describes which members were expected.
	Reason string
}

// Error implements error.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: type %v %s", ErrUnsupported, e.Type, e.Reason)
}

// Is matches ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// PanicError wraps a non-error value recovered from an invoked accessor.
type PanicError struct {
	Value any
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("tagx: accessor panicked: %v", e.Value)
}
