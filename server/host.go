package server

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"gofi/controller"
	"gofi/event"
	"gofi/exceptionTable"
	"gofi/gofiGrpc"
	pb "gofi/gofiGrpc/proto"
	"gofi/metrics"
	"gofi/recorder"
	"gofi/stateManager"
)

const DefaultAddress = ":1099"

// The Host runs the three control plane services in one process.
//
// The StateServer and the FaultInjectorServer share a single mutex which also guards the event log.
// The OrchestratorServer is synchronized independently.
type Host struct {
	mu sync.Mutex

	logger     *log.Logger
	metrics    *metrics.Metrics
	controller controller.Controller
	exceptions *exceptionTable.Table
	stats      *recorder.Stats
	meta       recorder.Meta
	workspace  string

	States       *StateServer
	Injector     *FaultInjectorServer
	Orchestrator *OrchestratorServer

	addrs   AddressOption
	listen  func(addr string) (net.Listener, error)
	servers map[string]*grpc.Server
	serving *errgroup.Group

	closeOnce sync.Once
	closeErr  error
}

// Create a new Host
//
// workspace is the directory holding the trial directories.
// c makes the injection decisions and exceptions is the table handed to starting nodes.
func NewHost(workspace string, c controller.Controller, exceptions *exceptionTable.Table, opts ...Option) *Host {
	var (
		mode         = DefaultMode
		addrs        = AddressOption{DefaultAddress, DefaultAddress, DefaultAddress}
		listen       = func(addr string) (net.Listener, error) { return net.Listen("tcp", addr) }
		logger       = log.New(os.Stderr, "", log.LstdFlags)
		m            *metrics.Metrics
		trace        = false
		recordStates = true
		meta         MetaOption
	)
	for _, opt := range opts {
		switch t := opt.(type) {
		case ModeOption:
			mode = t.Mode
		case AddressOption:
			addrs = t
		case ListenOption:
			listen = t.Listen
		case LoggerOption:
			logger = t.Logger
		case MetricsOption:
			m = t.Metrics
		case TraceDecisionOption:
			trace = t.Trace
		case RecordStatesOption:
			recordStates = t.Record
		case MetaOption:
			meta = t
		}
	}
	if m == nil {
		m = metrics.New()
	}
	prefixed := func(prefix string) *log.Logger {
		return log.New(logger.Writer(), prefix, logger.Flags())
	}

	h := &Host{
		logger:     prefixed("Host: "),
		metrics:    m,
		controller: c,
		exceptions: exceptions,
		stats:      recorder.NewStats(recordStates),
		meta: recorder.Meta{
			ExperimentId: meta.ExperimentId,
			TargetSystem: meta.TargetSystem,
		},
		workspace: workspace,
		addrs:     addrs,
		listen:    listen,
		servers:   make(map[string]*grpc.Server),
	}
	h.States = NewStateServer(&h.mu, h.stats, m, prefixed("StateServer: "), mode == MetaInfoMode)
	h.Injector = NewFaultInjectorServer(&h.mu, h.stats, h.States, c, m, prefixed("FaultInjectorServer: "), mode)
	h.Orchestrator = NewOrchestratorServer(exceptions.Names(), prefixed("OrchestratorServer: "))
	if trace {
		h.Injector.EnableTrace(h.TrialsDir())
	}
	return h
}

// Start serving the services. Each distinct address gets its own grpc server.
func (h *Host) Start() error {
	byAddr := map[string][]func(*grpc.Server){}
	byAddr[h.addrs.State] = append(byAddr[h.addrs.State], func(s *grpc.Server) { pb.RegisterStateServiceServer(s, h.States) })
	byAddr[h.addrs.Injector] = append(byAddr[h.addrs.Injector], func(s *grpc.Server) { pb.RegisterInjectorServiceServer(s, h.Injector) })
	byAddr[h.addrs.Orchestrator] = append(byAddr[h.addrs.Orchestrator], func(s *grpc.Server) { pb.RegisterOrchestratorServiceServer(s, h.Orchestrator) })

	addrs := maps.Keys(byAddr)
	slices.Sort(addrs)

	listeners := make(map[string]net.Listener, len(addrs))
	for _, addr := range addrs {
		lis, err := h.listen(addr)
		if err != nil {
			for _, l := range listeners {
				l.Close()
			}
			return errors.Wrapf(err, "Host: listening on %v", addr)
		}
		listeners[addr] = lis
	}

	h.serving = new(errgroup.Group)
	for _, addr := range addrs {
		srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
			gofiGrpc.RecoverInterceptor(h.logger),
			h.metrics.UnaryServerInterceptor(),
		))
		for _, register := range byAddr[addr] {
			register(srv)
		}
		h.servers[addr] = srv
		lis := listeners[addr]
		h.serving.Go(func() error {
			return srv.Serve(lis)
		})
		h.logger.Printf("Serving on %v", lis.Addr())
	}
	return nil
}

// Stop all services. Only the first call has an effect.
func (h *Host) Close() error {
	h.closeOnce.Do(func() {
		for _, srv := range h.servers {
			srv.Stop()
		}
		if h.serving != nil {
			h.closeErr = h.serving.Wait()
		}
		h.Injector.OnTrialStopped()
	})
	return h.closeErr
}

func (h *Host) HasNextTrial() bool {
	return h.controller.HasNextTrial()
}

func (h *Host) SetupNewTrial(incrementId bool) {
	h.Injector.SetupNewTrial(incrementId)
	h.metrics.Trials.Inc()
	h.metrics.TrialId.Set(float64(h.controller.TrialId()))
}

func (h *Host) OnTrialStopped() {
	h.Injector.OnTrialStopped()
}

func (h *Host) TrialId() int {
	return h.controller.TrialId()
}

// Record a ready event and enable injection.
func (h *Host) SetReady() {
	h.record(event.NewReadyEvent())
	h.controller.SetReady()
}

func (h *Host) SetStart(serverId int) {
	h.record(event.NewStartEvent(serverId))
}

func (h *Host) SetShutdown(serverId int) {
	h.record(event.NewShutdownEvent(serverId))
}

func (h *Host) record(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Record(e)
}

// Arm the pid handoff for the server and create a fresh state machine manager for it.
func (h *Host) PrepareNodeStart(serverId int) {
	h.Orchestrator.PrepareSid(serverId)
	h.States.CreateAsmManagerForServer(serverId, true)
}

// Wait for the node process prepared last to register its pid.
func (h *Host) RecentPid(timeout time.Duration) (int, bool) {
	pid, ok := h.Orchestrator.RecentPid(timeout)
	h.metrics.NodeStart(ok)
	return pid, ok
}

func (h *Host) SetClientRegistry(r ClientRegistry) {
	h.Orchestrator.SetClientRegistry(r)
}

func (h *Host) GetAsmManagerByServer(serverId int) *stateManager.AbstractStateMachineManager {
	return h.States.GetAsmManagerByServer(serverId)
}

// Clear the event log.
func (h *Host) InitStats() {
	h.stats.Init(h.exceptions.Names())
}

func (h *Host) Stats() *recorder.Stats {
	return h.stats
}

// Dump the event log of the current trial into its trial directory.
func (h *Host) DumpStats() error {
	meta := h.meta
	meta.TrialId = h.TrialId()
	return h.stats.DumpToDir(h.TrialDir(meta.TrialId), meta)
}

func (h *Host) Workspace() string {
	return h.workspace
}

func (h *Host) TrialsDir() string {
	return filepath.Join(h.workspace, "trials")
}

func (h *Host) TrialDir(trialId int) string {
	return filepath.Join(h.TrialsDir(), strconv.Itoa(trialId))
}

func (h *Host) Metrics() *metrics.Metrics {
	return h.metrics
}
