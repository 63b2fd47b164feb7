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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"dirpx.dev/tagx/apis"
	"dirpx.dev/tagx/registry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentRegisterAndLoad verifies that Register/Load/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLoad(t *testing.T) {
	reg := registry.New()

	classes := make([]apis.Class, 10)
	for i := range classes {
		classes[i] = apis.Class{Name: fmt.Sprintf("toolchain.C%d", i), Statics: &tagStatics{VOID: i}}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Writers race on first registration; all must agree.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c := classes[(i+id)%len(classes)]
				if err := reg.Register(c); err != nil {
					t.Errorf("register %s: %v", c.Name, err)
					return
				}
			}
		}(w)
	}

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				c := classes[i%len(classes)]
				if got, ok := reg.Lookup(c.Name); ok && got != c {
					t.Errorf("lookup %s: got %+v, want %+v", c.Name, got, c)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()

	if reg.Count() != len(classes) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(classes))
	}
	got := map[string]int{}
	for _, c := range reg.Entries() {
		got[c.Name] = c.Statics.(*tagStatics).VOID
	}
	want := map[string]int{}
	for i, c := range classes {
		want[c.Name] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Loader = registry.New()
