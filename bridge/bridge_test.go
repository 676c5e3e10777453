package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/go-inspector/common/types"
)

func newTestMux(t *testing.T) (*Mux, *MockTransport) {
	ctrl := gomock.NewController(t)
	transport := NewMockTransport(ctrl)
	return New(transport, WithLogger(zaptest.NewLogger(t))), transport
}

func TestSendEncodesPayload(t *testing.T) {
	mux, transport := newTestMux(t)
	transport.EXPECT().
		Send(gomock.Any(), InspectElement, []byte(`{"id":1,"rendererID":2}`)).
		Return(nil)

	before := testutil.ToFloat64(messages.WithLabelValues(InspectElement, "sent"))
	require.NoError(t, mux.Send(context.Background(), InspectElement, types.ElementRef{ID: 1, RendererID: 2}))
	require.Equal(t, before+1, testutil.ToFloat64(messages.WithLabelValues(InspectElement, "sent")))
}

func TestSendErrors(t *testing.T) {
	mux, transport := newTestMux(t)

	errClosed := errors.New("closed")
	transport.EXPECT().Send(gomock.Any(), SelectElement, gomock.Any()).Return(errClosed)
	err := mux.Send(context.Background(), SelectElement, types.ElementRef{ID: 1})
	require.ErrorIs(t, err, errClosed)
	require.ErrorContains(t, err, "send selectElement")

	// not encodable, never reaches the transport
	err = mux.Send(context.Background(), SelectElement, func() {})
	require.ErrorContains(t, err, "encode selectElement")
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	mux, _ := newTestMux(t)

	var calls []string
	first := mux.Subscribe(InspectedElement, func(_ context.Context, data []byte) error {
		calls = append(calls, "first:"+string(data))
		return nil
	})
	mux.Subscribe(InspectedElement, func(_ context.Context, data []byte) error {
		calls = append(calls, "second:"+string(data))
		return nil
	})
	require.Equal(t, InspectedElement, first.Name())
	require.Equal(t, 2, mux.Listeners(InspectedElement))

	require.Equal(t, 2, mux.Dispatch(context.Background(), InspectedElement, []byte("a")))
	require.Equal(t, []string{"first:a", "second:a"}, calls)

	first.Unsubscribe()
	first.Unsubscribe()
	require.Equal(t, 1, mux.Listeners(InspectedElement))

	calls = nil
	require.Equal(t, 1, mux.Dispatch(context.Background(), InspectedElement, []byte("b")))
	require.Equal(t, []string{"second:b"}, calls)
}

func TestDispatchNoListeners(t *testing.T) {
	mux, _ := newTestMux(t)
	dropped := messages.WithLabelValues(InspectedElement, "dropped")
	before := testutil.ToFloat64(dropped)

	require.Zero(t, mux.Dispatch(context.Background(), InspectedElement, []byte("{}")))
	require.Equal(t, before+1, testutil.ToFloat64(dropped))

	sub := mux.Subscribe(InspectedElement, func(context.Context, []byte) error { return nil })
	sub.Unsubscribe()
	require.Zero(t, mux.Listeners(InspectedElement))
	require.Zero(t, mux.Dispatch(context.Background(), InspectedElement, []byte("{}")))
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	mux, _ := newTestMux(t)

	var (
		second *Subscription
		called int
	)
	mux.Subscribe(InspectedElement, func(context.Context, []byte) error {
		second.Unsubscribe()
		return nil
	})
	second = mux.Subscribe(InspectedElement, func(context.Context, []byte) error {
		called++
		return nil
	})

	require.Equal(t, 1, mux.Dispatch(context.Background(), InspectedElement, nil))
	require.Zero(t, called)
	require.Equal(t, 1, mux.Listeners(InspectedElement))
}

func TestHandlerErrorDoesNotStopDispatch(t *testing.T) {
	mux, _ := newTestMux(t)
	rejected := messages.WithLabelValues(InspectedElement, "rejected")
	before := testutil.ToFloat64(rejected)

	var called bool
	mux.Subscribe(InspectedElement, func(context.Context, []byte) error {
		return errors.New("bad payload")
	})
	mux.Subscribe(InspectedElement, func(context.Context, []byte) error {
		called = true
		return nil
	})
	require.Equal(t, 2, mux.Dispatch(context.Background(), InspectedElement, nil))
	require.True(t, called)
	require.Equal(t, before+1, testutil.ToFloat64(rejected))
}

func TestNilSubscription(t *testing.T) {
	var sub *Subscription
	require.NotPanics(t, sub.Unsubscribe)
	require.NotPanics(t, (&Subscription{}).Unsubscribe)
}
