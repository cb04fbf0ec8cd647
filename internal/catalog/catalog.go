// Package catalog provides the ordered list of menu entries.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is a single menu item. The name doubles as the display label and
// the seed for the generation prompts.
type Entry struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

var defaultEntries = []Entry{
	{ID: 1, Name: "Hyderabadi Chicken Biryani"},
	{ID: 2, Name: "Paneer Butter Masala"},
	{ID: 3, Name: "Masala Dosa"},
	{ID: 4, Name: "Wood-Fired Margherita Pizza"},
	{ID: 5, Name: "Saffron Pistachio Kulfi"},
	{ID: 6, Name: "Artisan Cheese Board"},
}

// Default returns the built-in menu. Callers get a fresh copy so the
// built-in list is never mutated.
func Default() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}

type menuFile struct {
	Items []Entry `yaml:"items"`
}

// Load reads a menu from a YAML file of the form:
//
//	items:
//	  - id: 1
//	    name: Hyderabadi Chicken Biryani
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var doc menuFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}

	if err := validate(doc.Items); err != nil {
		return nil, err
	}

	return doc.Items, nil
}

func validate(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("menu file contains no items")
	}

	seen := make(map[int]bool, len(entries))
	for i, e := range entries {
		if e.ID <= 0 {
			return fmt.Errorf("item %d: id must be a positive integer, got %d", i+1, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("item %d: duplicate id %d", i+1, e.ID)
		}
		seen[e.ID] = true
		if e.Name == "" {
			return fmt.Errorf("item %d: name must not be empty", i+1)
		}
	}
	return nil
}
