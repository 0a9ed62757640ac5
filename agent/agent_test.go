package agent

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"gofi/controller"
	"gofi/event"
	"gofi/exceptionTable"
	"gofi/node"
	"gofi/server"
)

// Grants every request made in the state named "inject"
type grantPolicy struct{ granted int }

func (p *grantPolicy) Inject(req *event.ThreadInjectionRequest) event.InjectionCommand {
	if req.State.Name != "inject" {
		return event.NoInjection
	}
	p.granted++
	return event.InjectionCommand{Delay: 0, ExceptionId: 1, CommandId: p.granted}
}

func (p *grantPolicy) SetupNewTrial() {}

type bufNet struct {
	sync.Mutex
	listeners map[string]*bufconn.Listener
}

func (n *bufNet) listen(addr string) (net.Listener, error) {
	n.Lock()
	defer n.Unlock()
	lis := bufconn.Listen(1024 * 1024)
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

type registry struct {
	sync.Mutex
	pids    map[int]int
	results []string
	nanos   []int64
}

func (r *registry) RegisterClient(clientId, pid int) ([]string, error) {
	r.Lock()
	defer r.Unlock()
	if clientId > 1 {
		return nil, errors.New("unknown client")
	}
	r.pids[clientId] = pid
	return []string{"get", "/key"}, nil
}

func (r *registry) Send(clientId int, result string, nanos int64) error {
	r.Lock()
	defer r.Unlock()
	r.results = append(r.results, result)
	r.nanos = append(r.nanos, nanos)
	return nil
}

func setup(t *testing.T) (*server.Host, *Agent, *bytes.Buffer) {
	t.Helper()
	network := &bufNet{listeners: map[string]*bufconn.Listener{}}
	discard := log.New(io.Discard, "", 0)
	ctrl := controller.NewInjectionController(&grantPolicy{}, 0)
	h := server.NewHost(t.TempDir(), ctrl, exceptionTable.New([]string{"java.io.IOException", "java.net.SocketException"}),
		server.WithAddresses("state", "injector", "orchestrator"),
		server.WithListenFunc(network.listen),
		server.WithLogger(discard),
	)
	require.NoError(t, h.Start())
	t.Cleanup(func() { h.Close() })

	out := &bytes.Buffer{}
	a, err := Dial(Config{
		StateAddr:        "state",
		InjectorAddr:     "injector",
		OrchestratorAddr: "orchestrator",
		DialOptions:      []grpc.DialOption{grpc.WithContextDialer(network.dial)},
		Logger:           log.New(out, "", 0),
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return h, a, out
}

func TestUnregisteredAgent(t *testing.T) {
	_, a, _ := setup(t)
	assert.Equal(t, -1, a.ServerId())
	assert.Equal(t, -1, a.ExceptionId("java.io.IOException"))

	_, err := a.InformState(context.Background(), 1, "main", 5, "Foo", event.NewAbstractState("Foo", event.RegisterId))
	assert.True(t, errors.Is(err, ErrNotRegistered), "got %v", err)
	cmd, err := a.Inject(context.Background(), 1, "main", event.InjectionLocation{}, false, nil)
	assert.True(t, errors.Is(err, ErrNotRegistered), "got %v", err)
	assert.Equal(t, event.NoInjection, cmd)
}

func TestNodeAgent(t *testing.T) {
	h, a, out := setup(t)
	ctx := context.Background()
	h.SetupNewTrial(true)
	h.InitStats()
	h.PrepareNodeStart(2)

	serverId, err := a.Register(ctx, 4321)
	require.NoError(t, err)
	assert.Equal(t, 2, serverId)
	assert.Equal(t, 1, a.ExceptionId("java.net.SocketException"))
	assert.Equal(t, "java.io.IOException", a.ExceptionName(0))
	pid, ok := h.RecentPid(time.Second)
	require.True(t, ok)
	assert.Equal(t, 4321, pid)

	ack, err := a.InformState(ctx, 7, "worker", 5, "Log", event.NewAbstractState("Log", event.RegisterId))
	require.NoError(t, err)
	assert.True(t, ack)
	ack, err = a.InformState(ctx, 7, "worker", 0, "Log", event.NewAbstractState("inject", 2))
	require.NoError(t, err)
	assert.True(t, ack)

	loc := event.InjectionLocation{ClassName: "Log", MethodName: "append", LineNum: 10, Op: "write"}
	// The controller is not ready yet
	cmd, err := a.Inject(ctx, 7, "worker", loc, false, []int{1})
	require.NoError(t, err)
	assert.False(t, cmd.Granted())
	assert.NotContains(t, out.String(), node.InjectionMarker)

	h.SetReady()
	cmd, err = a.Inject(ctx, 7, "worker", loc, false, []int{1})
	require.NoError(t, err)
	assert.True(t, cmd.Granted())
	assert.Equal(t, 1, cmd.ExceptionId)
	line := out.String()
	assert.True(t, strings.HasPrefix(line, node.InjectionMarker), "got %q", line)
	assert.Contains(t, line, "java.net.SocketException at Log.append:10")
}

func TestClientAgent(t *testing.T) {
	h, a, _ := setup(t)
	ctx := context.Background()

	_, err := a.RegisterClient(ctx, 0, 99)
	assert.Equal(t, codes.FailedPrecondition, status.Code(errors.Cause(err)), "got %v", err)

	r := &registry{pids: map[int]int{}}
	h.SetClientRegistry(r)
	cmd, err := a.RegisterClient(ctx, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, []string{"get", "/key"}, cmd)
	assert.Equal(t, map[int]int{1: 99}, r.pids)

	_, err = a.RegisterClient(ctx, 2, 100)
	assert.Equal(t, codes.InvalidArgument, status.Code(errors.Cause(err)), "got %v", err)

	require.NoError(t, a.Send(ctx, 1, "ok", 3*time.Millisecond))
	assert.Equal(t, []string{"ok"}, r.results)
	assert.Equal(t, []int64{3000000}, r.nanos)
}
