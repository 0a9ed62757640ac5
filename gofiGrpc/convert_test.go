package gofiGrpc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"gofi/event"
	pb "gofi/gofiGrpc/proto"
)

func TestInjectionQueryOnTheWire(t *testing.T) {
	query := event.InjectionQuery{
		ServerId:   2,
		ThreadId:   1 << 40,
		ThreadName: "SyncThread:0",
		Location: event.InjectionLocation{
			ClassName:    "org.apache.zookeeper.server.SyncRequestProcessor",
			MethodName:   "flush",
			LineNum:      182,
			StackTraceId: 9,
			Op:           "fsync",
			FailureId:    3,
		},
		DelayRequested: true,
		ExceptionIds:   []int{0, 4},
	}
	data, err := proto.Marshal(FromInjectionQuery(query))
	require.NoError(t, err)
	var m pb.InjectionQuery
	require.NoError(t, proto.Unmarshal(data, &m))
	if diff := cmp.Diff(query, ToInjectionQuery(&m)); diff != "" {
		t.Errorf("Query changed on the wire (-want +got):\n%s", diff)
	}
}

func TestNoInjectionOnTheWire(t *testing.T) {
	data, err := proto.Marshal(FromInjectionCommand(event.NoInjection))
	require.NoError(t, err)
	var m pb.InjectionCommand
	require.NoError(t, proto.Unmarshal(data, &m))
	cmd := ToInjectionCommand(&m)
	assert.Equal(t, event.NoInjection, cmd)
	assert.False(t, cmd.Granted())
}

func TestMissingNestedMessages(t *testing.T) {
	// A thread that sends no state or location gets zero values, not a panic
	u := ToStateUpdate(&pb.StateUpdate{ServerId: 1, ThreadId: 7})
	assert.Equal(t, event.AbstractState{}, u.State)
	q := ToInjectionQuery(&pb.InjectionQuery{ServerId: 1})
	assert.Equal(t, event.InjectionLocation{}, q.Location)
	assert.Nil(t, q.ExceptionIds)
}

func TestStateUpdate(t *testing.T) {
	u := event.StateUpdate{ServerId: 1, ThreadId: 7, ThreadName: "main", InstanceId: 5, ClassName: "Foo", State: event.NewAbstractState("Foo", event.UnregisterId)}
	assert.Equal(t, u, ToStateUpdate(FromStateUpdate(u)))
	access := event.MetaInfoAccess{ServerId: 1, ThreadId: 3, ClassName: "Quorum", Field: "leader", Write: true}
	assert.Equal(t, access, ToMetaInfoAccess(FromMetaInfoAccess(access)))
}
