package server

import (
	"context"
	"io"
	"log"
	"net"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"gofi/controller"
	"gofi/event"
	"gofi/exceptionTable"
	"gofi/gofiGrpc"
	pb "gofi/gofiGrpc/proto"
)

const bufSize = 1024 * 1024

var discard = log.New(io.Discard, "", 0)

// Grants every request made in the state named "inject"
type MockPolicy struct {
	sync.Mutex
	requests []*event.ThreadInjectionRequest
	setups   int
}

func (p *MockPolicy) Inject(req *event.ThreadInjectionRequest) event.InjectionCommand {
	p.Lock()
	defer p.Unlock()
	p.requests = append(p.requests, req)
	if req.State.Name == "inject" {
		return event.InjectionCommand{Delay: 0, ExceptionId: 1, CommandId: len(p.requests)}
	}
	return event.NoInjection
}

func (p *MockPolicy) SetupNewTrial() {
	p.Lock()
	defer p.Unlock()
	p.setups++
}

func (p *MockPolicy) Calls() int {
	p.Lock()
	defer p.Unlock()
	return len(p.requests)
}

type bufNet struct {
	sync.Mutex
	listeners map[string]*bufconn.Listener
}

func (n *bufNet) listen(addr string) (net.Listener, error) {
	n.Lock()
	defer n.Unlock()
	lis := bufconn.Listen(bufSize)
	n.listeners[addr] = lis
	return lis, nil
}

func (n *bufNet) dial(ctx context.Context, addr string) (net.Conn, error) {
	n.Lock()
	lis, ok := n.listeners[addr]
	n.Unlock()
	if !ok {
		return nil, errors.Newf("no listener on %v", addr)
	}
	return lis.DialContext(ctx)
}

type testHost struct {
	*Host
	policy *MockPolicy
	ctrl   *controller.InjectionController

	state        pb.StateServiceClient
	injector     pb.InjectorServiceClient
	orchestrator pb.OrchestratorServiceClient
}

// Start a host on in-memory listeners with clients connected to all three services
func startHost(t *testing.T, opts ...Option) *testHost {
	t.Helper()
	network := &bufNet{listeners: map[string]*bufconn.Listener{}}
	policy := &MockPolicy{}
	ctrl := controller.NewInjectionController(policy, 0)
	opts = append([]Option{
		WithAddresses("state", "injector", "orchestrator"),
		WithListenFunc(network.listen),
		WithLogger(discard),
	}, opts...)
	h := NewHost(t.TempDir(), ctrl, exceptionTable.New([]string{"java.io.IOException", "java.net.SocketException"}), opts...)
	if err := h.Start(); err != nil {
		t.Fatalf("Failed to start host: %v", err)
	}
	t.Cleanup(func() { h.Close() })

	dial := func(addr string) *grpc.ClientConn {
		conn, err := grpc.Dial(addr, append(gofiGrpc.DialOptions(), grpc.WithContextDialer(network.dial))...)
		if err != nil {
			t.Fatalf("Failed to dial %v: %v", addr, err)
		}
		t.Cleanup(func() { conn.Close() })
		return conn
	}
	return &testHost{
		Host:         h,
		policy:       policy,
		ctrl:         ctrl,
		state:        pb.NewStateServiceClient(dial(h.addrs.State)),
		injector:     pb.NewInjectorServiceClient(dial(h.addrs.Injector)),
		orchestrator: pb.NewOrchestratorServiceClient(dial(h.addrs.Orchestrator)),
	}
}

// Ask the injector service and convert its answer
func (h *testHost) inject(t *testing.T, q *pb.InjectionQuery) event.InjectionCommand {
	t.Helper()
	cmd, err := h.injector.Inject(context.Background(), q)
	require.NoError(t, err)
	return gofiGrpc.ToInjectionCommand(cmd)
}

func stateUpdate(serverId int, threadId int64, instanceId int, class string, name string, id int) *pb.StateUpdate {
	return gofiGrpc.FromStateUpdate(event.StateUpdate{
		ServerId:   serverId,
		ThreadId:   threadId,
		ThreadName: "T",
		InstanceId: instanceId,
		ClassName:  class,
		State:      event.NewAbstractState(name, id),
	})
}

func query(serverId int, threadId int64) *pb.InjectionQuery {
	return gofiGrpc.FromInjectionQuery(event.InjectionQuery{
		ServerId:   serverId,
		ThreadId:   threadId,
		ThreadName: "T",
		Location: event.InjectionLocation{
			ClassName:  "Log",
			MethodName: "append",
			LineNum:    10,
			Op:         "write",
		},
		ExceptionIds: []int{0},
	})
}

func kinds(events []event.Event) []event.Kind {
	k := make([]event.Kind, len(events))
	for i, e := range events {
		k[i] = e.Kind()
	}
	return k
}
