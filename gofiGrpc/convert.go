package gofiGrpc

import (
	"gofi/event"
	pb "gofi/gofiGrpc/proto"
)

// Conversions between the wire messages and the event types used inside the control plane.

func ToAbstractState(m *pb.AbstractState) event.AbstractState {
	return event.NewAbstractState(m.GetName(), int(m.GetId()))
}

func FromAbstractState(s event.AbstractState) *pb.AbstractState {
	return &pb.AbstractState{Name: s.Name, Id: int32(s.Id)}
}

func ToStateUpdate(m *pb.StateUpdate) event.StateUpdate {
	return event.StateUpdate{
		ServerId:   int(m.GetServerId()),
		ThreadId:   m.GetThreadId(),
		ThreadName: m.GetThreadName(),
		InstanceId: int(m.GetInstanceId()),
		ClassName:  m.GetClassName(),
		State:      ToAbstractState(m.GetState()),
	}
}

func FromStateUpdate(u event.StateUpdate) *pb.StateUpdate {
	return &pb.StateUpdate{
		ServerId:   int32(u.ServerId),
		ThreadId:   u.ThreadId,
		ThreadName: u.ThreadName,
		InstanceId: int32(u.InstanceId),
		ClassName:  u.ClassName,
		State:      FromAbstractState(u.State),
	}
}

func ToMetaInfoAccess(m *pb.MetaInfoAccess) event.MetaInfoAccess {
	return event.MetaInfoAccess{
		ServerId:   int(m.GetServerId()),
		ThreadId:   m.GetThreadId(),
		ThreadName: m.GetThreadName(),
		ClassName:  m.GetClassName(),
		Field:      m.GetField(),
		Write:      m.GetWrite(),
	}
}

func FromMetaInfoAccess(a event.MetaInfoAccess) *pb.MetaInfoAccess {
	return &pb.MetaInfoAccess{
		ServerId:   int32(a.ServerId),
		ThreadId:   a.ThreadId,
		ThreadName: a.ThreadName,
		ClassName:  a.ClassName,
		Field:      a.Field,
		Write:      a.Write,
	}
}

// A query without exception ids converts to a query with a nil id list.
func ToInjectionQuery(m *pb.InjectionQuery) event.InjectionQuery {
	var ids []int
	for _, id := range m.GetExceptionIds() {
		ids = append(ids, int(id))
	}
	loc := m.GetLocation()
	return event.InjectionQuery{
		ServerId:   int(m.GetServerId()),
		ThreadId:   m.GetThreadId(),
		ThreadName: m.GetThreadName(),
		Location: event.InjectionLocation{
			ClassName:    loc.GetClassName(),
			MethodName:   loc.GetMethodName(),
			LineNum:      int(loc.GetLineNum()),
			StackTraceId: int(loc.GetStackTraceId()),
			Op:           loc.GetOp(),
			FailureId:    int(loc.GetFailureId()),
		},
		DelayRequested: m.GetDelayRequested(),
		ExceptionIds:   ids,
	}
}

func FromInjectionQuery(q event.InjectionQuery) *pb.InjectionQuery {
	ids := make([]int32, len(q.ExceptionIds))
	for i, id := range q.ExceptionIds {
		ids[i] = int32(id)
	}
	return &pb.InjectionQuery{
		ServerId:   int32(q.ServerId),
		ThreadId:   q.ThreadId,
		ThreadName: q.ThreadName,
		Location: &pb.InjectionLocation{
			ClassName:    q.Location.ClassName,
			MethodName:   q.Location.MethodName,
			LineNum:      int32(q.Location.LineNum),
			StackTraceId: int32(q.Location.StackTraceId),
			Op:           q.Location.Op,
			FailureId:    int32(q.Location.FailureId),
		},
		DelayRequested: q.DelayRequested,
		ExceptionIds:   ids,
	}
}

func ToInjectionCommand(m *pb.InjectionCommand) event.InjectionCommand {
	return event.InjectionCommand{
		Delay:       int(m.GetDelay()),
		ExceptionId: int(m.GetExceptionId()),
		CommandId:   int(m.GetCommandId()),
	}
}

func FromInjectionCommand(c event.InjectionCommand) *pb.InjectionCommand {
	return &pb.InjectionCommand{
		Delay:       int32(c.Delay),
		ExceptionId: int32(c.ExceptionId),
		CommandId:   int32(c.CommandId),
	}
}
