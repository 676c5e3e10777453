package inspector

import "github.com/spacemeshos/go-inspector/common/types"

// latest remembers the most recently requested element. Responses about any other element are
// discarded. It is written only by Inspector.Select, with the inspector mutex held.
type latest struct {
	id    types.ElementID
	valid bool
}

func (l *latest) set(id *types.ElementID) {
	if id == nil {
		*l = latest{}
		return
	}
	*l = latest{id: *id, valid: true}
}

func (l *latest) get() *types.ElementID {
	if !l.valid {
		return nil
	}
	id := l.id
	return &id
}

func (l *latest) matches(id types.ElementID) bool {
	return l.valid && l.id == id
}
