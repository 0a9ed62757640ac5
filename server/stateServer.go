package server

import (
	"context"
	"log"
	"sync"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"gofi/event"
	"gofi/gofiGrpc"
	pb "gofi/gofiGrpc/proto"
	"gofi/metrics"
	"gofi/recorder"
	"gofi/stateManager"
)

// The StateServer receives abstract state updates from target threads
// and keeps one AbstractStateMachineManager per target server process.
//
// It shares its mutex with the FaultInjectorServer.
type StateServer struct {
	pb.UnimplementedStateServiceServer

	mu      *sync.Mutex
	stats   *recorder.Stats
	metrics *metrics.Metrics
	logger  *log.Logger

	metaInfo bool

	managers   map[int]*stateManager.AbstractStateMachineManager
	lastAccess *event.MetaInfoAccess
}

// Create a new StateServer
//
// mu is the mutex shared with the FaultInjectorServer.
// In meta-info mode state updates are ignored and only accesses are tracked.
func NewStateServer(mu *sync.Mutex, stats *recorder.Stats, m *metrics.Metrics, logger *log.Logger, metaInfo bool) *StateServer {
	return &StateServer{
		mu:       mu,
		stats:    stats,
		metrics:  m,
		logger:   logger,
		metaInfo: metaInfo,
		managers: make(map[int]*stateManager.AbstractStateMachineManager),
	}
}

func (s *StateServer) InformState(ctx context.Context, m *pb.StateUpdate) (*wrapperspb.BoolValue, error) {
	info := gofiGrpc.ToStateUpdate(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metaInfo {
		return wrapperspb.Bool(false), nil
	}
	asmm, ok := s.managers[info.ServerId]
	if !ok {
		s.logger.Printf("Error: cannot find the state machine manager for server %v", info.ServerId)
		s.metrics.StateUpdate(false)
		return wrapperspb.Bool(false), nil
	}
	evt, err := asmm.Update(info)
	if err != nil {
		s.logger.Printf("Warning: ignoring state update %v from thread %v: %v", info.State, info.ThreadId, err)
		s.metrics.StateUpdate(false)
		return wrapperspb.Bool(false), nil
	}
	s.stats.Record(evt)
	s.metrics.StateUpdate(true)
	return wrapperspb.Bool(true), nil
}

func (s *StateServer) InformAccess(ctx context.Context, m *pb.MetaInfoAccess) (*wrapperspb.BoolValue, error) {
	access := gofiGrpc.ToMetaInfoAccess(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = &access
	return wrapperspb.Bool(true), nil
}

func (s *StateServer) ExistsAsmManager(serverId int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.managers[serverId]
	return ok
}

// Returns the manager of the server, or nil if it has not been created.
func (s *StateServer) GetAsmManagerByServer(serverId int) *stateManager.AbstractStateMachineManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.managers[serverId]
}

// Create the manager of a server.
//
// If a manager already exists it is returned, unless force is true in which case it is replaced.
func (s *StateServer) CreateAsmManagerForServer(serverId int, force bool) *stateManager.AbstractStateMachineManager {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asmm, ok := s.managers[serverId]; ok && !force {
		return asmm
	}
	asmm := stateManager.NewAbstractStateMachineManager(serverId)
	s.managers[serverId] = asmm
	return asmm
}

// Must be called with the mutex held.
func (s *StateServer) asmManager(serverId int) *stateManager.AbstractStateMachineManager {
	return s.managers[serverId]
}

// Must be called with the mutex held.
func (s *StateServer) lastMetaInfoAccess() *event.MetaInfoAccess {
	if !s.metaInfo || s.lastAccess == nil {
		return nil
	}
	access := *s.lastAccess
	return &access
}
