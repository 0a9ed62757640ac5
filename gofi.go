// Package gofi runs fault injection experiments.
//
// PrepareExperiment wires the control plane host, the ensemble builder of the target
// system and the trial loop from a config.Config. Run then repeats trials until the
// controller has no next trial, the context is cancelled or the retry budget is spent.
package gofi

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"gofi/config"
	"gofi/controller"
	"gofi/exceptionTable"
	"gofi/metrics"
	"gofi/orchestrator"
	"gofi/policy"
	"gofi/server"
	"gofi/trial"
)

// Prepare an experiment with the provided configuration.
//
// See the ExperimentOptions for the possible options.
// The configuration is validated before anything is created.
func PrepareExperiment(cfg config.Config, opts ...ExperimentOption) (*Experiment, error) {
	var (
		logger        = log.New(os.Stderr, "", log.LstdFlags)
		m             *metrics.Metrics
		policies      = policy.NewRegistry()
		systems       = orchestrator.NewRegistry()
		hostOpts      []server.Option
		debugIn       io.Reader = os.Stdin
		debugOut      io.Writer = os.Stdout
		listenMetrics           = true
	)
	for _, opt := range opts {
		switch t := opt.(type) {
		case loggerOption:
			logger = t.logger
		case metricsOption:
			m = t.m
		case policyOption:
			policies.Register(t.name, t.c)
		case targetSystemOption:
			systems.Register(t.name, t.b)
		case hostOption:
			hostOpts = append(hostOpts, t.opts...)
		case debugOption:
			debugIn, debugOut = t.in, t.prompt
		case noMetricsListenerOption:
			listenMetrics = false
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.New()
	}
	prefixed := func(prefix string) *log.Logger {
		return log.New(logger.Writer(), prefix, logger.Flags())
	}

	exceptions, err := exceptionTable.Load(cfg.ExceptionTable, prefixed("ExceptionTable: "))
	if err != nil {
		return nil, err
	}
	injectionType, err := policy.ParseInjectionType(cfg.InjectionType)
	if err != nil {
		return nil, err
	}
	p, err := policies.New(cfg.InjectionPolicy, injectionType, cfg.PolicyParams)
	if err != nil {
		return nil, err
	}
	var ctrl controller.Controller
	switch cfg.InjectionController {
	case config.DebugController:
		ctrl = controller.NewDebugController(p, debugIn, debugOut)
	default:
		ctrl = controller.NewInjectionController(p, cfg.MaxTrials)
	}

	if cfg.ExperimentId == "" {
		cfg.ExperimentId = uuid.NewString()
	}
	host := server.NewHost(cfg.Workspace, ctrl, exceptions, append([]server.Option{
		server.WithMode(mode(cfg.Mode)),
		server.WithAddresses(cfg.Ports.State, cfg.Ports.Injector, cfg.Ports.Orchestrator),
		server.RecordStates(cfg.RecordStates),
		server.WithMeta(cfg.ExperimentId, cfg.TargetSystem),
		server.WithLogger(logger),
		server.WithMetrics(m),
	}, traceOption(cfg.TraceDecision, hostOpts)...)...)

	orchLogger := prefixed("Orchestrator: ")
	build := func() (orchestrator.Orchestrator, error) {
		return systems.Build(host, cfg, orchLogger)
	}
	runner := trial.NewRunner(host, build, trial.Config{
		TrialTimeout:     cfg.TrialTimeout,
		Cooldown:         cfg.Cooldown,
		FailTrialRetries: cfg.FailTrialRetries,
		MaxTotalRetries:  cfg.MaxTotalRetries,
		StopOnFail:       cfg.StopOnFail,
	}, prefixed("Runner: "), m)

	return &Experiment{
		cfg:          cfg,
		logger:       prefixed("Experiment: "),
		metrics:      m,
		host:         host,
		runner:       runner,
		serveMetrics: listenMetrics && cfg.MetricsAddr != "",
	}, nil
}

func mode(s string) server.Mode {
	switch s {
	case config.MetaInfoMode:
		return server.MetaInfoMode
	case config.FateMode:
		return server.FateMode
	default:
		return server.DefaultMode
	}
}

// Host options given by the caller are applied after the configured ones
func traceOption(trace bool, opts []server.Option) []server.Option {
	if trace {
		opts = append([]server.Option{server.TraceDecision()}, opts...)
	}
	return opts
}

// A prepared experiment. Run can only be called once.
type Experiment struct {
	cfg          config.Config
	logger       *log.Logger
	metrics      *metrics.Metrics
	host         *server.Host
	runner       *trial.Runner
	serveMetrics bool
}

func (e *Experiment) Config() config.Config { return e.cfg }

func (e *Experiment) Host() *server.Host { return e.host }

func (e *Experiment) Metrics() *metrics.Metrics { return e.metrics }

// Every trial attempt made so far
func (e *Experiment) Attempts() []trial.Trial { return e.runner.Attempts() }

// Start the control plane and run trials until the experiment ends.
//
// Returns an error wrapping trial.ErrTooManyRetries or trial.ErrStopOnFail if the experiment is stopped early.
// A cancelled ctx ends the experiment after the current attempt without an error.
func (e *Experiment) Run(ctx context.Context) (err error) {
	if err := e.host.Start(); err != nil {
		return errors.Wrap(err, "gofi: starting the control plane")
	}
	defer func() {
		err = errors.CombineErrors(err, e.host.Close())
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if e.serveMetrics {
		go func() {
			if err := e.metrics.Serve(ctx, e.cfg.MetricsAddr); err != nil {
				e.logger.Printf("Warning: metrics listener on %v stopped: %v", e.cfg.MetricsAddr, err)
			}
		}()
	}

	e.logger.Printf("Starting experiment %v on %v", e.cfg.ExperimentId, e.cfg.TargetSystem)
	err = e.runner.Run(ctx)
	e.logger.Printf("Experiment %v finished after %v attempts", e.cfg.ExperimentId, len(e.runner.Attempts()))
	return err
}
