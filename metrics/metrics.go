package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics of one control plane process.
//
// Every Metrics value has its own registry, so several control planes can run in one process.
type Metrics struct {
	Registry *prometheus.Registry

	StateUpdates      *prometheus.CounterVec
	InjectionRequests *prometheus.CounterVec
	Rpcs              *prometheus.CounterVec
	Trials            prometheus.Counter
	Retries           prometheus.Counter
	NodeStarts        *prometheus.CounterVec
	TrialId           prometheus.Gauge
}

// Outcomes of an injection request
const (
	Granted  = "granted"
	Observed = "observed"
	Skipped  = "skipped"
)

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StateUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "state_updates_total",
			Help:      "Abstract state updates received, by whether they were applied.",
		}, []string{"applied"}),
		InjectionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "injection_requests_total",
			Help:      "Injection requests, by outcome.",
		}, []string{"outcome"}),
		Rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "rpcs_total",
			Help:      "RPCs served, by method and status code.",
		}, []string{"method", "code"}),
		Trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "trials_total",
			Help:      "Trial attempts started.",
		}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "trial_retries_total",
			Help:      "Failed trial attempts that were retried.",
		}),
		NodeStarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gofi",
			Name:      "node_starts_total",
			Help:      "Server node starts, by result.",
		}, []string{"result"}),
		TrialId: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gofi",
			Name:      "trial_id",
			Help:      "Id of the current trial.",
		}),
	}
	m.Registry.MustRegister(
		m.StateUpdates,
		m.InjectionRequests,
		m.Rpcs,
		m.Trials,
		m.Retries,
		m.NodeStarts,
		m.TrialId,
	)
	return m
}

func (m *Metrics) StateUpdate(applied bool) {
	if applied {
		m.StateUpdates.WithLabelValues("true").Inc()
	} else {
		m.StateUpdates.WithLabelValues("false").Inc()
	}
}

func (m *Metrics) InjectionRequest(outcome string) {
	m.InjectionRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) NodeStart(ok bool) {
	if ok {
		m.NodeStarts.WithLabelValues("ok").Inc()
	} else {
		m.NodeStarts.WithLabelValues("failed").Inc()
	}
}

// Create a UnaryServerInterceptor that counts the RPCs served.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		m.Rpcs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve the metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
