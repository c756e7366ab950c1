// Copyright (c) 2025, Plateful Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package material

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/plateful/mealgen/pkg/serializer"
)

var (
	//go:embed data/catalog.yaml
	defaultCatalogData []byte

	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Catalog holds an enumerable collection of materials. It is the read-only
// input contract consumed by the generation pipeline; callers are responsible
// for selecting only available materials before generation.
type Catalog struct {
	Materials []Material `json:"materials" yaml:"materials"`
}

// ParseCatalog parses catalog yaml data and validates every entry.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog data: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads and validates a materials catalog from the given file
// path. The format is detected from the file extension, so both yaml and
// json catalogs load.
func LoadCatalog(path string) (*Catalog, error) {
	c, err := serializer.FromFile[Catalog](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the embedded demo catalog. The catalog is parsed
// once and shared; callers must treat the result as read-only.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseCatalog(defaultCatalogData)
	})
	return defaultCatalog, defaultErr
}

// Validate checks that every material has an id, a name, and a supported
// category, and that ids are unique within the catalog.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Materials))
	for i, m := range c.Materials {
		if m.ID == "" {
			return fmt.Errorf("material at index %d has no id", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate material id: %q", m.ID)
		}
		seen[m.ID] = true
		if m.Name == "" {
			return fmt.Errorf("material %q has no name", m.ID)
		}
		if !m.Category.IsValid() {
			return fmt.Errorf("material %q has unsupported category: %q", m.ID, m.Category)
		}
	}
	return nil
}

// Available returns the catalog materials with the availability flag set.
func (c *Catalog) Available() []Material {
	return Available(c.Materials)
}

// ByID returns the material with the given id, or false when absent.
func (c *Catalog) ByID(id string) (Material, bool) {
	for _, m := range c.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}
