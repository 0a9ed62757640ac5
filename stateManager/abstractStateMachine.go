package stateManager

import (
	"sync"

	"gofi/event"
)

// Tracks the abstract state of one running instance of an instrumented class.
//
// An instance may be nested inside another instrumented context on the same thread.
// Entering a nested context pushes the current name and state, and leaving it pops them back.
// All operations are safe for concurrent use.
type AbstractStateMachine struct {
	sync.Mutex

	serverId   int
	instanceId int

	name  string
	state event.AbstractState

	nameStack  []string
	stateStack []event.AbstractState
}

// Create a new AbstractStateMachine
//
// serverId and instanceId identify the instance.
// name is the name of the instrumented class that created the instance.
func NewAbstractStateMachine(serverId int, name string, instanceId int) *AbstractStateMachine {
	return &AbstractStateMachine{
		serverId:   serverId,
		instanceId: instanceId,
		name:       name,
		state:      event.NewAbstractState("", event.RegisterId),
	}
}

// Enter a nested state machine context with the provided name.
func (asm *AbstractStateMachine) Register(name string) {
	asm.Lock()
	defer asm.Unlock()
	asm.nameStack = append(asm.nameStack, asm.name)
	asm.stateStack = append(asm.stateStack, asm.state)
	asm.name = name
}

// Leave the current context and restore the enclosing one.
//
// Does nothing if there is no enclosing context. The instance is then retired.
func (asm *AbstractStateMachine) Unregister() {
	asm.Lock()
	defer asm.Unlock()
	n := len(asm.nameStack)
	if n == 0 {
		return
	}
	asm.name = asm.nameStack[n-1]
	asm.state = asm.stateStack[n-1]
	asm.nameStack = asm.nameStack[:n-1]
	asm.stateStack = asm.stateStack[:n-1]
}

// Set the current state and return the event recording the change.
func (asm *AbstractStateMachine) Update(state event.AbstractState, threadName string) event.ThreadStateEvent {
	asm.Lock()
	defer asm.Unlock()
	asm.state = state
	return event.NewThreadStateEvent(asm.serverId, threadName, asm.instanceId, asm.name, asm.state)
}

// Create an injection request carrying the current state of the instance.
func (asm *AbstractStateMachine) CreateInjectionRequest(query event.InjectionQuery) *event.ThreadInjectionRequest {
	asm.Lock()
	defer asm.Unlock()
	return event.NewThreadInjectionRequest(query, asm.instanceId, asm.name, asm.state)
}

func (asm *AbstractStateMachine) InstanceId() int {
	return asm.instanceId
}

func (asm *AbstractStateMachine) Name() string {
	asm.Lock()
	defer asm.Unlock()
	return asm.name
}

func (asm *AbstractStateMachine) State() event.AbstractState {
	asm.Lock()
	defer asm.Unlock()
	return asm.state
}

// The number of enclosing contexts.
func (asm *AbstractStateMachine) Depth() int {
	asm.Lock()
	defer asm.Unlock()
	return len(asm.nameStack)
}
