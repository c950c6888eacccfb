// Package dictionary loads the item dictionary: the YAML resource listing
// every recognized payslip line item together with its two-level category.
package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is one recognized item. Name is the exact label as printed on
// the payslip; Category and Subcategory are the ledger classifications it
// maps to.
type Definition struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Subcategory string `yaml:"subcategory"`
}

// Dictionary maps a section key (e.g. "deduction") to its definitions in
// declaration order. Declaration order is significant: the extractor uses
// it as the first-match-wins tie-break, so it is never reordered here.
type Dictionary struct {
	sections map[string][]Definition
}

// LoadError reports a missing or malformed dictionary resource.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("item dictionary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses the dictionary file. Any failure, including a
// definition missing one of its three required fields, is a *LoadError.
func Load(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// Parse decodes dictionary YAML. Unknown fields on a definition are
// ignored; missing required fields are an error.
func Parse(raw []byte) (*Dictionary, error) {
	sections := map[string][]Definition{}
	if err := yaml.Unmarshal(raw, &sections); err != nil {
		return nil, err
	}
	for key, defs := range sections {
		for i, def := range defs {
			if def.Name == "" || def.Category == "" || def.Subcategory == "" {
				return nil, fmt.Errorf("section %q entry %d: name, category and subcategory are all required", key, i)
			}
		}
	}
	return &Dictionary{sections: sections}, nil
}

// Section returns the definitions under key in declaration order. The
// second result is false when the key is absent.
func (d *Dictionary) Section(key string) ([]Definition, bool) {
	defs, ok := d.sections[key]
	return defs, ok
}
