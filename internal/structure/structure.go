// Package structure decodes the JSON project description into the tree value
// the analyzer and scaffolder walk.
//
// A node takes one of three shapes:
//   - an object maps names to child nodes (a directory),
//   - an array lists plain filenames (strings) mixed with nested objects,
//   - a string or empty value marks a leaf file named by its key.
package structure

import (
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
)

// ErrInvalidStructure reports input that cannot be treated as a project tree.
// Malformed entries inside a valid tree are skipped, not rejected; only a
// non-object top level is a hard failure.
var ErrInvalidStructure = errors.New("invalid project structure")

// Parse decodes a JSON document into a project tree.
func Parse(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a JSON object", ErrInvalidStructure)
	}
	return root, nil
}

// Load reads and parses a project description file.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure file: %w", err)
	}
	return Parse(data)
}
