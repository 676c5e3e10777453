package bridge

import "context"

//go:generate mockgen -typed -package=bridge -destination=./mocks.go -source=./interface.go

// Transport carries encoded messages to the peer. It is supplied by the embedding application and
// must preserve the order of Send calls.
type Transport interface {
	Send(ctx context.Context, name string, data []byte) error
}
