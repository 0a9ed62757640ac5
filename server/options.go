package server

import (
	"log"
	"net"

	"gofi/metrics"
)

// Configures the Host
type Option interface {
	HostOpt()
}

// Configures how injection requests resolve abstract state.
// Default value is DefaultMode.
type ModeOption struct{ Mode Mode }

func (ModeOption) HostOpt() {}

// Configures the addresses of the three services.
// Services with the same address share one grpc server.
// Default value is ":1099" for all services.
type AddressOption struct {
	State, Injector, Orchestrator string
}

func (AddressOption) HostOpt() {}

// Configures how listeners are created. Used to serve on in-memory listeners.
// Default value is net.Listen("tcp", addr).
type ListenOption struct {
	Listen func(addr string) (net.Listener, error)
}

func (ListenOption) HostOpt() {}

// Default value logs to stderr.
type LoggerOption struct{ Logger *log.Logger }

func (LoggerOption) HostOpt() {}

// Default value is a new, unexported Metrics.
type MetricsOption struct{ Metrics *metrics.Metrics }

func (MetricsOption) HostOpt() {}

// Configures whether the time of every decision is traced.
// Default value is false.
type TraceDecisionOption struct{ Trace bool }

func (TraceDecisionOption) HostOpt() {}

// Configures whether events are recorded.
// Default value is true.
type RecordStatesOption struct{ Record bool }

func (RecordStatesOption) HostOpt() {}

// Metadata written with the event log of every trial
type MetaOption struct {
	ExperimentId string
	TargetSystem string
}

func (MetaOption) HostOpt() {}

func WithMode(m Mode) Option { return ModeOption{Mode: m} }

func WithAddresses(state, injector, orchestrator string) Option {
	return AddressOption{State: state, Injector: injector, Orchestrator: orchestrator}
}

// All three services on one address
func WithAddress(addr string) Option { return AddressOption{addr, addr, addr} }

func WithListenFunc(f func(addr string) (net.Listener, error)) Option {
	return ListenOption{Listen: f}
}

func WithLogger(l *log.Logger) Option { return LoggerOption{Logger: l} }

func WithMetrics(m *metrics.Metrics) Option { return MetricsOption{Metrics: m} }

func TraceDecision() Option { return TraceDecisionOption{Trace: true} }

func RecordStates(record bool) Option { return RecordStatesOption{Record: record} }

func WithMeta(experimentId, targetSystem string) Option {
	return MetaOption{ExperimentId: experimentId, TargetSystem: targetSystem}
}
