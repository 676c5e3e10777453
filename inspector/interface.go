package inspector

import (
	"context"

	"github.com/spacemeshos/go-inspector/bridge"
	"github.com/spacemeshos/go-inspector/common/types"
)

//go:generate mockgen -typed -package=inspector -destination=./mocks.go -source=./interface.go

type messenger interface {
	Send(ctx context.Context, name string, payload any) error
	Subscribe(name string, handler bridge.Handler) *bridge.Subscription
}

type elementStore interface {
	// RendererID returns false if the element is no longer mounted.
	RendererID(types.ElementID) (types.RendererID, bool)
	ElementByID(types.ElementID) (*types.Element, bool)
}
