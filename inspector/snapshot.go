package inspector

import (
	"fmt"
	"slices"

	"github.com/spacemeshos/go-inspector/common/types"
	"github.com/spacemeshos/go-inspector/hydration"
)

// Snapshot is the hydrated state of an inspected element. It is built once per response and never
// modified afterwards; a newer response replaces it wholesale.
type Snapshot struct {
	ID     types.ElementID
	Source *types.Source
	Owners []types.Owner

	// Context, Hooks, Props and State are nil when the element has none.
	Context any
	Hooks   any
	Props   any
	State   any
}

// newSnapshot hydrates raw into a new snapshot without modifying raw.
func newSnapshot(raw *types.InspectedElement) (*Snapshot, error) {
	s := &Snapshot{
		ID:     raw.ID,
		Owners: slices.Clone(raw.Owners),
	}
	if raw.Source != nil {
		source := *raw.Source
		s.Source = &source
	}
	for _, field := range []struct {
		name string
		from *hydration.Dehydrated
		to   *any
	}{
		{"context", raw.Context, &s.Context},
		{"hooks", raw.Hooks, &s.Hooks},
		{"props", raw.Props, &s.Props},
		{"state", raw.State, &s.State},
	} {
		v, err := hydration.Hydrate(field.from)
		if err != nil {
			return nil, fmt.Errorf("hydrate %s: %w", field.name, err)
		}
		*field.to = v
	}
	return s, nil
}
