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

import "reflect"

// Class describes one class of the toolchain object model.
type Class struct {
	// Name is the fully qualified class name, e.g. "com.sun.tools.javac.code.TypeTag".
	Name string
	// Type is the Go type standing in for the class. Optional.
	Type reflect.Type
	// Statics points to a struct whose fields are the class's static fields.
	Statics any
}

// Loader resolves toolchain classes by qualified name.
// Implementations must be safe for concurrent use.
type Loader interface {
	// Register makes c loadable under c.Name.
	// Re-registering the same class is a no-op; a different class under
	// the same name is rejected.
	Register(c Class) error
	// Load returns the class named name or a failure.ErrClassNotFound error.
	Load(name string) (Class, error)
	// Lookup is Load without the error.
	Lookup(name string) (Class, bool)
	// Entries returns a snapshot of all classes (order is unspecified).
	Entries() []Class
	// Count returns the number of registered classes.
	Count() int
	// Reset removes all classes.
	Reset()
}
