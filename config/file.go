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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/tagx/apis"
)

// ParseProfile decodes a YAML profile over the defaults, then applies opts.
// Unknown keys are rejected so that a misspelled member name does not
// silently fall back to a default.
//
//	tree_tag_class: com.sun.tools.javac.tree.JCTree$Tag
//	tree_tag_method: GetTag
//	tree_tag_field: tag
func ParseProfile(data []byte, opts ...Option) (apis.Profile, error) {
	p := DefaultProfile()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return apis.Profile{}, fmt.Errorf("tagx(config): decode profile: %w", err)
	}
	for _, opt := range opts {
		opt(&p)
	}
	fill(&p)
	return p, nil
}

// LoadProfile reads and decodes the YAML profile at path.
func LoadProfile(path string, opts ...Option) (apis.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Profile{}, fmt.Errorf("tagx(config): read profile: %w", err)
	}
	p, err := ParseProfile(data, opts...)
	if err != nil {
		return apis.Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
