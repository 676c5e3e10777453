package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestServerExposesMetrics(t *testing.T) {
	counter := NewCounter("test_total", "server", "counter for the server test", []string{"kind"})
	counter.WithLabelValues("probe").Add(3)

	srv, err := NewServer("127.0.0.1:0", zaptest.NewLogger(t))
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(func() { require.NoError(t, srv.Stop(context.Background())) })

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", srv.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `inspector_server_test_total{kind="probe"} 3`)
}

func TestServerListenError(t *testing.T) {
	srv, err := NewServer("127.0.0.1:0", zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, srv.Stop(context.Background())) })

	_, err = NewServer(srv.Addr().String(), zaptest.NewLogger(t))
	require.ErrorContains(t, err, "listen metrics")
}
