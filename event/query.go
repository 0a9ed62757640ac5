package event

import "fmt"

// A StateUpdate is sent by a target thread every time it changes the abstract state of an instance.
//
// State.Id carries the protocol meaning: RegisterId when the thread enters a new instance,
// UnregisterId when it leaves one and any other value for a normal state.
type StateUpdate struct {
	ServerId   int
	ThreadId   int64
	ThreadName string
	InstanceId int
	ClassName  string
	State      AbstractState
}

// The program point at which a target thread asks for an injection.
type InjectionLocation struct {
	ClassName    string
	MethodName   string
	LineNum      int
	StackTraceId int
	Op           string
	FailureId    int
}

// An InjectionQuery is sent by a target thread at an instrumented program point.
type InjectionQuery struct {
	ServerId       int
	ThreadId       int64
	ThreadName     string
	Location       InjectionLocation
	DelayRequested bool
	ExceptionIds   []int
}

// The verdict of the control plane for one injection query.
//
// CommandId is -1 when no injection is granted.
type InjectionCommand struct {
	Delay       int
	ExceptionId int
	CommandId   int
}

// The command returned whenever the control plane does not inject.
var NoInjection = InjectionCommand{Delay: 0, ExceptionId: -1, CommandId: -1}

// Returns true if the command grants an injection.
func (c InjectionCommand) Granted() bool {
	return c.CommandId != -1
}

func (c InjectionCommand) String() string {
	return fmt.Sprintf("{delay: %v, exception: %v, id: %v}", c.Delay, c.ExceptionId, c.CommandId)
}

// Auxiliary access metadata reported by targets running in meta-info mode.
type MetaInfoAccess struct {
	ServerId   int
	ThreadId   int64
	ThreadName string
	ClassName  string
	Field      string
	Write      bool
}

func (a MetaInfoAccess) String() string {
	op := "read"
	if a.Write {
		op = "write"
	}
	return fmt.Sprintf("%v %v.%v by %v", op, a.ClassName, a.Field, a.ThreadName)
}

// Build an injection request from a query and the abstract state resolved for the calling thread.
func NewThreadInjectionRequest(query InjectionQuery, instanceId int, stateMachineName string, state AbstractState) *ThreadInjectionRequest {
	loc := query.Location
	exceptions := make([]int, len(query.ExceptionIds))
	copy(exceptions, query.ExceptionIds)
	return &ThreadInjectionRequest{
		ThreadStateEvent: NewThreadStateEvent(query.ServerId, query.ThreadName, instanceId, stateMachineName, state),
		ClassName:        loc.ClassName,
		MethodName:       loc.MethodName,
		LineNum:          loc.LineNum,
		StackTraceId:     loc.StackTraceId,
		Op:               loc.Op,
		DelayRequested:   query.DelayRequested,
		ExceptionIds:     exceptions,
		FailureId:        loc.FailureId,
	}
}
