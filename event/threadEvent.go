package event

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// A ThreadStateEvent is recorded every time a target thread changes the abstract state of an instance.
type ThreadStateEvent struct {
	NanoTime         int64
	ServerId         int
	ThreadName       string
	InstanceId       int
	StateMachineName string
	State            AbstractState
}

func NewThreadStateEvent(serverId int, threadName string, instanceId int, stateMachineName string, state AbstractState) ThreadStateEvent {
	return ThreadStateEvent{
		NanoTime:         Now(),
		ServerId:         serverId,
		ThreadName:       threadName,
		InstanceId:       instanceId,
		StateMachineName: stateMachineName,
		State:            state,
	}
}

func (e ThreadStateEvent) Kind() Kind  { return StateKind }
func (e ThreadStateEvent) Nano() int64 { return e.NanoTime }

func (e ThreadStateEvent) Dump(w Writer) {
	w.Int(e.ServerId)
	w.StateMachine(e.StateMachineName)
	w.Op(e.State.Name)
	w.Int(e.State.Id)
	w.Int(e.InstanceId)
}

func (e ThreadStateEvent) String() string {
	return fmt.Sprintf("State{server: %v, thread: %v, instance: %v, sm: %v, state: %v}",
		e.ServerId, e.ThreadName, e.InstanceId, e.StateMachineName, e.State)
}

// A ThreadInjectionRequest is the full context of one injection query after the abstract state of the calling thread has been resolved.
type ThreadInjectionRequest struct {
	ThreadStateEvent

	ClassName      string
	MethodName     string
	LineNum        int
	StackTraceId   int
	Op             string
	DelayRequested bool
	ExceptionIds   []int
	FailureId      int

	// Only set in meta-info mode
	LastMetaInfoAccess *MetaInfoAccess
}

func (r *ThreadInjectionRequest) Kind() Kind { return InjectionRequestKind }

func (r *ThreadInjectionRequest) Dump(w Writer) {
	r.ThreadStateEvent.Dump(w)
	w.Op(r.Op)
	if r.DelayRequested {
		w.Int(1)
	} else {
		w.Int(0)
	}
	w.Exceptions(r.ExceptionIds)
}

// Returns a hash over every field of the request except the timestamp.
//
// Two requests issued from the same program point in the same abstract state have the same hash id.
func (r *ThreadInjectionRequest) HashId() uint64 {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	write(strconv.Itoa(r.ServerId))
	write(r.ThreadName)
	write(strconv.Itoa(r.InstanceId))
	write(r.StateMachineName)
	write(r.State.Name)
	write(strconv.Itoa(r.State.Id))
	write(r.ClassName)
	write(r.MethodName)
	write(strconv.Itoa(r.LineNum))
	write(strconv.Itoa(r.StackTraceId))
	write(r.Op)
	write(strconv.FormatBool(r.DelayRequested))
	for _, id := range r.ExceptionIds {
		write(strconv.Itoa(id))
	}
	write(strconv.Itoa(r.FailureId))
	if r.LastMetaInfoAccess != nil {
		write(r.LastMetaInfoAccess.String())
	}
	return h.Sum64()
}

func (r *ThreadInjectionRequest) String() string {
	return fmt.Sprintf("InjectionRequest{%v, at: %v.%v:%v, op: %v, delay: %v, exceptions: %v}",
		r.ThreadStateEvent, r.ClassName, r.MethodName, r.LineNum, r.Op, r.DelayRequested, r.ExceptionIds)
}

// A ThreadInjectionEvent records an injection request that the controller granted.
type ThreadInjectionEvent struct {
	Request     *ThreadInjectionRequest
	Delay       int
	ExceptionId int
	InjectionId int
}

func NewThreadInjectionEvent(req *ThreadInjectionRequest, cmd InjectionCommand) ThreadInjectionEvent {
	return ThreadInjectionEvent{
		Request:     req,
		Delay:       cmd.Delay,
		ExceptionId: cmd.ExceptionId,
		InjectionId: cmd.CommandId,
	}
}

func (e ThreadInjectionEvent) Kind() Kind  { return InjectionKind }
func (e ThreadInjectionEvent) Nano() int64 { return e.Request.NanoTime }

func (e ThreadInjectionEvent) Dump(w Writer) {
	e.Request.Dump(w)
	w.Int(e.Delay)
	w.Int(e.ExceptionId)
	w.Int(e.InjectionId)
}

func (e ThreadInjectionEvent) String() string {
	return fmt.Sprintf("Injection{%v, delay: %v, exception: %v, id: %v}", e.Request, e.Delay, e.ExceptionId, e.InjectionId)
}
