package gofi

import (
	"io"
	"log"

	"gofi/metrics"
	"gofi/orchestrator"
	"gofi/policy"
	"gofi/server"
)

// A option used to configure an Experiment
type ExperimentOption interface {
	// noop method
	ExpOpt()
}

type loggerOption struct{ logger *log.Logger }

func (loggerOption) ExpOpt() {}

// Log to l instead of stderr. Every component gets a logger with its own prefix writing to l.
func WithLogger(l *log.Logger) ExperimentOption { return loggerOption{logger: l} }

type metricsOption struct{ m *metrics.Metrics }

func (metricsOption) ExpOpt() {}

// Count into m instead of a new Metrics
func WithMetrics(m *metrics.Metrics) ExperimentOption { return metricsOption{m: m} }

type policyOption struct {
	name string
	c    policy.Constructor
}

func (policyOption) ExpOpt() {}

// Make the policy available under name. Select it with the injectionPolicy key of the configuration.
func WithPolicy(name string, c policy.Constructor) ExperimentOption {
	return policyOption{name: name, c: c}
}

type targetSystemOption struct {
	name string
	b    orchestrator.Builder
}

func (targetSystemOption) ExpOpt() {}

// Make the ensemble builder available under name. Select it with the targetSystem key of the configuration.
func WithTargetSystem(name string, b orchestrator.Builder) ExperimentOption {
	return targetSystemOption{name: name, b: b}
}

type hostOption struct{ opts []server.Option }

func (hostOption) ExpOpt() {}

// Options applied to the control plane host after the ones derived from the configuration
func WithHostOptions(opts ...server.Option) ExperimentOption { return hostOption{opts: opts} }

type debugOption struct {
	in     io.Reader
	prompt io.Writer
}

func (debugOption) ExpOpt() {}

// Input and prompt of the debug controller. Default value is stdin and stdout.
func WithDebugConsole(in io.Reader, prompt io.Writer) ExperimentOption {
	return debugOption{in: in, prompt: prompt}
}

type noMetricsListenerOption struct{}

func (noMetricsListenerOption) ExpOpt() {}

// Do not serve the metrics even if metricsAddr is configured
func WithoutMetricsListener() ExperimentOption { return noMetricsListenerOption{} }
