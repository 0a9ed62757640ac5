// Package agent is the client side of the control plane.
//
// Instrumented target processes use an Agent to register, report abstract state
// and ask for injections. Client drivers use it to fetch their command and report results.
package agent

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"

	"gofi/event"
	"gofi/exceptionTable"
	"gofi/gofiGrpc"
	pb "gofi/gofiGrpc/proto"
	"gofi/node"
)

var ErrNotRegistered = errors.New("agent: not registered")

const DefaultCallTimeout = 5 * time.Second

type Config struct {
	StateAddr        string
	InjectorAddr     string
	OrchestratorAddr string
	// Extra options used when dialing, e.g. a context dialer
	DialOptions []grpc.DialOption
	// Timeout of a single call. Default value is DefaultCallTimeout
	CallTimeout time.Duration
	// The log of the target process. Injections are logged with node.InjectionMarker
	Logger *log.Logger
}

// An Agent talks to the three control plane services
type Agent struct {
	mu sync.Mutex

	logger  *log.Logger
	timeout time.Duration
	conns   []*grpc.ClientConn

	state        pb.StateServiceClient
	injector     pb.InjectorServiceClient
	orchestrator pb.OrchestratorServiceClient

	serverId   int
	exceptions *exceptionTable.Table
}

// Dial the control plane. Services with the same address share one connection.
func Dial(cfg Config) (*Agent, error) {
	a := &Agent{
		logger:   cfg.Logger,
		timeout:  cfg.CallTimeout,
		serverId: -1,
	}
	if a.logger == nil {
		a.logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if a.timeout <= 0 {
		a.timeout = DefaultCallTimeout
	}

	byAddr := map[string]*grpc.ClientConn{}
	dial := func(addr string) (*grpc.ClientConn, error) {
		if conn, ok := byAddr[addr]; ok {
			return conn, nil
		}
		conn, err := grpc.Dial(addr, append(gofiGrpc.DialOptions(), cfg.DialOptions...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "agent: dial %v", addr)
		}
		byAddr[addr] = conn
		a.conns = append(a.conns, conn)
		return conn, nil
	}

	stateConn, err := dial(cfg.StateAddr)
	if err != nil {
		a.Close()
		return nil, err
	}
	injectorConn, err := dial(cfg.InjectorAddr)
	if err != nil {
		a.Close()
		return nil, err
	}
	orchestratorConn, err := dial(cfg.OrchestratorAddr)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.state = pb.NewStateServiceClient(stateConn)
	a.injector = pb.NewInjectorServiceClient(injectorConn)
	a.orchestrator = pb.NewOrchestratorServiceClient(orchestratorConn)
	return a, nil
}

func (a *Agent) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// Register the pid of this node process. The reply carries the server id and the exception table.
func (a *Agent) Register(ctx context.Context, pid int) (int, error) {
	ctx, cancel := a.call(ctx)
	defer cancel()
	reply, err := a.orchestrator.Register(ctx, &pb.RegisterRequest{Pid: int32(pid)})
	if err != nil {
		return -1, errors.Wrap(err, "agent: register")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.serverId = int(reply.GetServerId())
	a.exceptions = exceptionTable.New(reply.GetExceptionNames())
	return a.serverId, nil
}

// -1 until registered
func (a *Agent) ServerId() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.serverId
}

// The id of the named exception, or -1 if it is unknown or the agent is not registered
func (a *Agent) ExceptionId(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.exceptions == nil {
		return -1
	}
	return a.exceptions.Id(name)
}

func (a *Agent) ExceptionName(id int) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.exceptions == nil {
		return ""
	}
	return a.exceptions.Name(id)
}

func (a *Agent) registered() (int, error) {
	id := a.ServerId()
	if id < 0 {
		return id, ErrNotRegistered
	}
	return id, nil
}

// Report a state change of an instance owned by the calling thread.
// Returns the acknowledgement of the state service.
func (a *Agent) InformState(ctx context.Context, threadId int64, threadName string, instanceId int, className string, state event.AbstractState) (bool, error) {
	serverId, err := a.registered()
	if err != nil {
		return false, err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	ack, err := a.state.InformState(ctx, gofiGrpc.FromStateUpdate(event.StateUpdate{
		ServerId:   serverId,
		ThreadId:   threadId,
		ThreadName: threadName,
		InstanceId: instanceId,
		ClassName:  className,
		State:      state,
	}))
	if err != nil {
		return false, errors.Wrap(err, "agent: inform state")
	}
	return ack.GetValue(), nil
}

func (a *Agent) InformAccess(ctx context.Context, access event.MetaInfoAccess) (bool, error) {
	serverId, err := a.registered()
	if err != nil {
		return false, err
	}
	access.ServerId = serverId
	ctx, cancel := a.call(ctx)
	defer cancel()
	ack, err := a.state.InformAccess(ctx, gofiGrpc.FromMetaInfoAccess(access))
	if err != nil {
		return false, errors.Wrap(err, "agent: inform access")
	}
	return ack.GetValue(), nil
}

// Ask whether to inject at loc.
//
// The target fails open: on error event.NoInjection is returned with the error.
// A granted injection is written to the target log so the node monitor can mark the node injected.
func (a *Agent) Inject(ctx context.Context, threadId int64, threadName string, loc event.InjectionLocation, delayRequested bool, exceptionIds []int) (event.InjectionCommand, error) {
	serverId, err := a.registered()
	if err != nil {
		return event.NoInjection, err
	}
	ctx, cancel := a.call(ctx)
	defer cancel()
	reply, err := a.injector.Inject(ctx, gofiGrpc.FromInjectionQuery(event.InjectionQuery{
		ServerId:       serverId,
		ThreadId:       threadId,
		ThreadName:     threadName,
		Location:       loc,
		DelayRequested: delayRequested,
		ExceptionIds:   exceptionIds,
	}))
	if err != nil {
		return event.NoInjection, errors.Wrap(err, "agent: inject")
	}
	cmd := gofiGrpc.ToInjectionCommand(reply)
	if cmd.Granted() {
		a.logger.Printf("%s %s at %s.%s:%d %v", node.InjectionMarker, a.ExceptionName(cmd.ExceptionId), loc.ClassName, loc.MethodName, loc.LineNum, cmd)
	}
	return cmd, nil
}

// Register a client process. Returns the arguments it should run with.
func (a *Agent) RegisterClient(ctx context.Context, clientId, pid int) ([]string, error) {
	ctx, cancel := a.call(ctx)
	defer cancel()
	reply, err := a.orchestrator.RegisterClient(ctx, &pb.RegisterClientRequest{ClientId: int32(clientId), Pid: int32(pid)})
	if err != nil {
		return nil, errors.Wrapf(err, "agent: register client %d", clientId)
	}
	return reply.GetCommand(), nil
}

// Report the result of one request of a client. elapsed is the duration of the request.
func (a *Agent) Send(ctx context.Context, clientId int, result string, elapsed time.Duration) error {
	ctx, cancel := a.call(ctx)
	defer cancel()
	_, err := a.orchestrator.Send(ctx, &pb.SendRequest{ClientId: int32(clientId), Result: result, Nanos: elapsed.Nanoseconds()})
	return errors.Wrapf(err, "agent: send result of client %d", clientId)
}

func (a *Agent) Close() error {
	var err error
	for _, conn := range a.conns {
		err = errors.CombineErrors(err, conn.Close())
	}
	a.conns = nil
	return err
}
