package site

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// siteFile is the YAML layout accepted by LoadFile:
//
//	sites:
//	  - id: 1
//	    domain: example.com
//	    name: Example
type siteFile struct {
	Sites []*Site `yaml:"sites"`
}

// ParseYAML builds a MemoryStore from a YAML document.
func ParseYAML(data []byte) (*MemoryStore, error) {
	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidSite, err)
	}

	store := &MemoryStore{
		byID:     make(map[int64]*Site, len(f.Sites)),
		byDomain: make(map[string]*Site, len(f.Sites)),
	}
	for i, s := range f.Sites {
		if err := store.Add(s); err != nil {
			return nil, fmt.Errorf("sites[%d]: %w", i, err)
		}
	}
	return store, nil
}

// LoadFile builds a MemoryStore from a YAML file.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sites file: %w", err)
	}
	return ParseYAML(data)
}
