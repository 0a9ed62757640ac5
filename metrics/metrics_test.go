package metrics

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCounters(t *testing.T) {
	m := New()
	m.StateUpdate(true)
	m.StateUpdate(true)
	m.StateUpdate(false)
	m.InjectionRequest(Granted)
	m.InjectionRequest(Observed)
	m.InjectionRequest(Observed)
	m.NodeStart(false)
	m.TrialId.Set(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StateUpdates.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StateUpdates.WithLabelValues("false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InjectionRequests.WithLabelValues(Observed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeStarts.WithLabelValues("failed")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.TrialId))
}

func TestInterceptor(t *testing.T) {
	m := New()
	intercept := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/gofi.InjectorService/Inject"}
	ok := func(ctx context.Context, req interface{}) (interface{}, error) { return req, nil }
	fail := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Internal, "boom")
	}

	_, err := intercept(context.Background(), 1, info, ok)
	require.NoError(t, err)
	_, err = intercept(context.Background(), 1, info, fail)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rpcs.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rpcs.WithLabelValues(info.FullMethod, "Internal")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Trials.Inc()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "gofi_trials_total 1"))
}
