package server

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gofi/controller"
	"gofi/event"
	"gofi/gofiGrpc"
	pb "gofi/gofiGrpc/proto"
	"gofi/metrics"
	"gofi/recorder"
	"gofi/stateManager"
)

// Selects how the abstract state of an injection request is resolved.
type Mode int

const (
	// Resolve the abstract state of the calling thread
	DefaultMode Mode = iota
	// Use the dummy state and attach the last meta-info access
	MetaInfoMode
	// Use the dummy state
	FateMode
)

func (m Mode) String() string {
	switch m {
	case MetaInfoMode:
		return "metainfo"
	case FateMode:
		return "fate"
	}
	return "default"
}

const DecisionTraceFileName = "decision_time.txt"

// The FaultInjectorServer answers injection queries from target threads.
//
// Every query is answered under the mutex shared with the StateServer,
// so a decision never observes a state that is being updated concurrently.
type FaultInjectorServer struct {
	pb.UnimplementedInjectorServiceServer

	mu         *sync.Mutex
	stats      *recorder.Stats
	states     *StateServer
	controller controller.Controller
	metrics    *metrics.Metrics
	logger     *log.Logger
	mode       Mode

	// decision time tracing
	trace     bool
	trialsDir string
	traceFile *os.File
	traceOut  *bufio.Writer
}

func NewFaultInjectorServer(mu *sync.Mutex, stats *recorder.Stats, states *StateServer, c controller.Controller, m *metrics.Metrics, logger *log.Logger, mode Mode) *FaultInjectorServer {
	return &FaultInjectorServer{
		mu:         mu,
		stats:      stats,
		states:     states,
		controller: c,
		metrics:    m,
		logger:     logger,
		mode:       mode,
	}
}

// Write the time spent by the controller on every decision into <trialsDir>/<trial id>/decision_time.txt.
func (s *FaultInjectorServer) EnableTrace(trialsDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trace = true
	s.trialsDir = trialsDir
}

func (s *FaultInjectorServer) Inject(ctx context.Context, m *pb.InjectionQuery) (*pb.InjectionCommand, error) {
	query := gofiGrpc.ToInjectionQuery(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	var req *event.ThreadInjectionRequest
	if s.mode == DefaultMode {
		asmm := s.states.asmManager(query.ServerId)
		if asmm == nil {
			s.logger.Printf("Warning: missing state machine manager for server %v", query.ServerId)
			s.metrics.InjectionRequest(metrics.Skipped)
			return noInjection(), nil
		}
		instanceId := asmm.GetInstanceIdByThreadId(query.ThreadId)
		asm := asmm.GetAsmByInstanceId(instanceId)
		if asm == nil {
			s.logger.Printf("Warning: no state machine for instance %v on server %v, skipping injection", instanceId, query.ServerId)
			s.metrics.InjectionRequest(metrics.Skipped)
			return noInjection(), nil
		}
		req = asm.CreateInjectionRequest(query)
	} else {
		req = event.NewThreadInjectionRequest(query, stateManager.DummyInstanceId, stateManager.DummyName, stateManager.DummyState)
		if s.mode == MetaInfoMode {
			req.LastMetaInfoAccess = s.states.lastMetaInfoAccess()
		}
	}

	var cmd event.InjectionCommand
	if s.traceOut != nil {
		start := time.Now()
		cmd = s.controller.Inject(req)
		if _, err := s.traceOut.WriteString(strconv.FormatInt(int64(time.Since(start)), 10) + "\n"); err != nil {
			s.logger.Printf("Error: failed to write decision time: %v", err)
		}
	} else {
		cmd = s.controller.Inject(req)
	}

	if cmd.Granted() {
		s.stats.Record(event.NewThreadInjectionEvent(req, cmd))
		s.metrics.InjectionRequest(metrics.Granted)
	} else {
		s.stats.Record(req)
		s.metrics.InjectionRequest(metrics.Observed)
	}
	return gofiGrpc.FromInjectionCommand(cmd), nil
}

// Prepare the controller for a new attempt and open the decision trace of the trial.
//
// The policy is reset under the shared mutex, so it never runs next to a decision.
func (s *FaultInjectorServer) SetupNewTrial(incrementId bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.SetupNewTrial(incrementId)
	if !s.trace {
		return
	}
	s.closeTrace()
	dir := filepath.Join(s.trialsDir, strconv.Itoa(s.controller.TrialId()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Printf("Error: failed to create decision time trace directory: %v", err)
		return
	}
	f, err := os.Create(filepath.Join(dir, DecisionTraceFileName))
	if err != nil {
		s.logger.Printf("Error: failed to create decision time trace file: %v", err)
		return
	}
	s.traceFile = f
	s.traceOut = bufio.NewWriter(f)
	s.traceOut.WriteString("time\n")
}

// Close the decision trace of the trial.
func (s *FaultInjectorServer) OnTrialStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeTrace()
}

func (s *FaultInjectorServer) closeTrace() {
	if s.traceFile == nil {
		return
	}
	if err := s.traceOut.Flush(); err != nil {
		s.logger.Printf("Error: failed to flush decision time trace: %v", err)
	}
	if err := s.traceFile.Close(); err != nil {
		s.logger.Printf("Error: failed to close decision time trace: %v", err)
	}
	s.traceFile = nil
	s.traceOut = nil
}

func noInjection() *pb.InjectionCommand {
	return gofiGrpc.FromInjectionCommand(event.NoInjection)
}
