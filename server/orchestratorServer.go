package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "gofi/gofiGrpc/proto"
)

// Receives the handshake of starting client processes and their results.
//
// It is implemented by the workload that is currently running.
type ClientRegistry interface {
	// Register the pid of a client and return the arguments it should run with.
	RegisterClient(clientId, pid int) ([]string, error)
	// Record the result of one request completed by a client.
	Send(clientId int, result string, nanos int64) error
}

// The OrchestratorServer hands server ids to starting node processes
// and passes client calls on to the current workload.
//
// It has its own lock and never touches abstract state.
type OrchestratorServer struct {
	pb.UnimplementedOrchestratorServiceServer
	sync.Mutex

	logger *log.Logger

	serverId       int
	exceptionNames []string
	pids           chan int
	clients        ClientRegistry
}

func NewOrchestratorServer(exceptionNames []string, logger *log.Logger) *OrchestratorServer {
	return &OrchestratorServer{
		logger:         logger,
		serverId:       -1,
		exceptionNames: exceptionNames,
		pids:           make(chan int, 1),
	}
}

// Set the server id handed to the next node process and discard any stale pid.
func (s *OrchestratorServer) PrepareSid(serverId int) {
	s.Lock()
	defer s.Unlock()
	s.serverId = serverId
	s.drain()
}

// Wait up to timeout for a node process to register. Returns false if none did.
func (s *OrchestratorServer) RecentPid(timeout time.Duration) (int, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case pid := <-s.pids:
		return pid, true
	case <-timer.C:
		return 0, false
	}
}

// Set the registry receiving client calls. nil rejects all client calls.
func (s *OrchestratorServer) SetClientRegistry(r ClientRegistry) {
	s.Lock()
	defer s.Unlock()
	s.clients = r
}

func (s *OrchestratorServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterReply, error) {
	s.Lock()
	defer s.Unlock()
	// Only the most recent pid is kept
	s.drain()
	s.pids <- int(req.GetPid())
	return &pb.RegisterReply{
		ServerId:       int32(s.serverId),
		ExceptionNames: s.exceptionNames,
	}, nil
}

func (s *OrchestratorServer) RegisterClient(ctx context.Context, req *pb.RegisterClientRequest) (*pb.RegisterClientReply, error) {
	clients := s.registry()
	if clients == nil {
		return nil, status.Errorf(codes.FailedPrecondition, "no workload is running, client %v rejected", req.ClientId)
	}
	cmd, err := clients.RegisterClient(int(req.GetClientId()), int(req.GetPid()))
	if err != nil {
		s.logger.Printf("Warning: client %v failed to register: %v", req.ClientId, err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.RegisterClientReply{Command: cmd}, nil
}

func (s *OrchestratorServer) Send(ctx context.Context, req *pb.SendRequest) (*empty.Empty, error) {
	clients := s.registry()
	if clients == nil {
		return nil, status.Errorf(codes.FailedPrecondition, "no workload is running, result of client %v rejected", req.ClientId)
	}
	if err := clients.Send(int(req.GetClientId()), req.GetResult(), req.GetNanos()); err != nil {
		s.logger.Printf("Warning: result of client %v rejected: %v", req.ClientId, err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &empty.Empty{}, nil
}

func (s *OrchestratorServer) registry() ClientRegistry {
	s.Lock()
	defer s.Unlock()
	return s.clients
}

func (s *OrchestratorServer) drain() {
	select {
	case <-s.pids:
	default:
	}
}
