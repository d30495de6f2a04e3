// Package conformance loads and runs YAML example-based scenarios against
// pkg/eval, the concrete home for spec.md §8's "Scenarios (input →
// expected)" table. Grounded on the pack's YAML-fixture conformance
// pattern (MongooseMoo-barn/conformance/loader.go): os.ReadFile +
// gopkg.in/yaml.v3, one Suite per file, walked from testdata/.
package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedCase pairs a Case with the file it came from, for test names.
type LoadedCase struct {
	File string
	Case Case
}

// LoadDir walks dir for *.yaml fixtures and returns every case in them.
func LoadDir(dir string) ([]LoadedCase, error) {
	var loaded []LoadedCase

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("conformance: reading %s: %w", path, err)
		}

		var suite Suite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return fmt.Errorf("conformance: parsing %s: %w", path, err)
		}

		rel, _ := filepath.Rel(dir, path)
		for _, c := range suite.Cases {
			loaded = append(loaded, LoadedCase{File: rel, Case: c})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}
