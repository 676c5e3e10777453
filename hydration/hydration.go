// Package hydration restores values that a remote peer sent in truncated ("dehydrated") form.
//
// A peer that cannot send a value whole (too large, cyclic, or not serializable) replaces parts of
// it with small stubs and lists the paths of those stubs next to the truncated data. Hydrate turns
// every listed stub into a *Placeholder that remembers its path, so a consumer can tell it apart from
// ordinary data and ask the peer to expand it later.
package hydration

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned when a cleaned path does not resolve inside the dehydrated data.
var ErrInvalidPath = errors.New("cleaned path does not resolve")

// Dehydrated is a structurally truncated value together with the paths that were stubbed out.
type Dehydrated struct {
	Data    any    `json:"data"`
	Cleaned []Path `json:"cleaned"`
}

// PathError describes a cleaned path that could not be applied to the data.
type PathError struct {
	Path Path
	// Depth is the number of path elements that resolved before the failure.
	Depth  int
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s at %s (depth %d)", ErrInvalidPath, e.Reason, e.Path, e.Depth)
}

func (e *PathError) Unwrap() error { return ErrInvalidPath }

// Hydrate returns a copy of d.Data in which every location listed in d.Cleaned is replaced with a
// *Placeholder. A nil d yields nil. d itself is never modified.
func Hydrate(d *Dehydrated) (any, error) {
	if d == nil {
		return nil, nil
	}
	root := deepCopy(d.Data)
	for _, path := range d.Cleaned {
		var err error
		root, err = replace(root, path)
		if err != nil {
			return nil, err
		}
	}
	return root, nil
}

// MustHydrate is like Hydrate but panics if a cleaned path is invalid.
func MustHydrate(d *Dehydrated) any {
	v, err := Hydrate(d)
	if err != nil {
		panic(err)
	}
	return v
}

// replace swaps the value at path with a placeholder and returns the (possibly new) root.
func replace(root any, path Path) (any, error) {
	if len(path) == 0 {
		return newPlaceholder(path, root), nil
	}
	parent := root
	for i, key := range path[:len(path)-1] {
		next, err := child(parent, key)
		if err != nil {
			return nil, &PathError{Path: path.Clone(), Depth: i, Reason: err.Error()}
		}
		parent = next
	}
	last := path[len(path)-1]
	switch container := parent.(type) {
	case map[string]any:
		k, ok := mapKey(last)
		if !ok {
			return nil, &PathError{Path: path.Clone(), Depth: len(path) - 1, Reason: fmt.Sprintf("invalid key %v", last)}
		}
		stub, exists := container[k]
		if !exists {
			return nil, &PathError{Path: path.Clone(), Depth: len(path) - 1, Reason: fmt.Sprintf("missing key %q", k)}
		}
		container[k] = newPlaceholder(path, stub)
	case []any:
		idx, ok := sliceIndex(last, len(container))
		if !ok {
			return nil, &PathError{Path: path.Clone(), Depth: len(path) - 1, Reason: fmt.Sprintf("index %v out of range", last)}
		}
		container[idx] = newPlaceholder(path, container[idx])
	default:
		return nil, &PathError{Path: path.Clone(), Depth: len(path) - 1, Reason: fmt.Sprintf("cannot descend into %T", parent)}
	}
	return root, nil
}

func child(parent, key any) (any, error) {
	switch container := parent.(type) {
	case map[string]any:
		k, ok := mapKey(key)
		if !ok {
			return nil, fmt.Errorf("invalid key %v", key)
		}
		v, exists := container[k]
		if !exists {
			return nil, fmt.Errorf("missing key %q", k)
		}
		return v, nil
	case []any:
		idx, ok := sliceIndex(key, len(container))
		if !ok {
			return nil, fmt.Errorf("index %v out of range", key)
		}
		return container[idx], nil
	default:
		return nil, fmt.Errorf("cannot descend into %T", parent)
	}
}

// deepCopy copies the containers produced by JSON decoding. Scalars are immutable and shared.
func deepCopy(v any) any {
	switch value := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(value))
		for k, item := range value {
			cp[k] = deepCopy(item)
		}
		return cp
	case []any:
		cp := make([]any, len(value))
		for i, item := range value {
			cp[i] = deepCopy(item)
		}
		return cp
	case *Placeholder:
		return value.clone()
	default:
		return v
	}
}
