package stateManager

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gofi/event"
)

const (
	// Instance used when a thread has no tracked context
	DummyInstanceId = -1
	DummyName       = "DummyASM"
)

// The state of the dummy instance
var DummyState = event.NewAbstractState("dummy", 1)

var (
	ErrUnknownThread   = errors.New("stateManager: no instance is registered on the thread")
	ErrUnknownInstance = errors.New("stateManager: the instance is not registered")
)

// Tracks the abstract state machines of one target server process.
//
// Every thread of the target has a stack of instance ids.
// The top of the stack is the instance currently active on that thread.
type AbstractStateMachineManager struct {
	sync.Mutex

	serverId     int
	instances    map[int]*AbstractStateMachine
	threadStacks map[int64][]int
}

// Create a new AbstractStateMachineManager for the server with the provided id.
func NewAbstractStateMachineManager(serverId int) *AbstractStateMachineManager {
	m := &AbstractStateMachineManager{serverId: serverId}
	m.reset()
	return m
}

func (m *AbstractStateMachineManager) ServerId() int {
	return m.serverId
}

// Apply a state update reported by a target thread.
//
// The id of the state decides what happens:
// RegisterId pushes the instance on the thread and registers it,
// UnregisterId pops the thread and unregisters the instance,
// any other id updates the instance on top of the thread's stack.
// Returns the event recording the update.
// Unregistering an instance that was never registered returns ErrUnknownInstance and creates nothing.
func (m *AbstractStateMachineManager) Update(info event.StateUpdate) (event.ThreadStateEvent, error) {
	m.Lock()
	defer m.Unlock()

	switch info.State.Id {
	case event.RegisterId:
		m.threadStacks[info.ThreadId] = append(m.threadStacks[info.ThreadId], info.InstanceId)
		asm, ok := m.instances[info.InstanceId]
		if ok {
			asm.Register(info.ClassName)
		} else {
			asm = NewAbstractStateMachine(m.serverId, info.ClassName, info.InstanceId)
			m.instances[info.InstanceId] = asm
		}
		return asm.Update(info.State, info.ThreadName), nil

	case event.UnregisterId:
		if stack := m.threadStacks[info.ThreadId]; len(stack) > 0 {
			m.threadStacks[info.ThreadId] = stack[:len(stack)-1]
		}
		asm, ok := m.instances[info.InstanceId]
		if !ok {
			return event.ThreadStateEvent{}, errors.Wrapf(ErrUnknownInstance, "instance %d on server %d", info.InstanceId, m.serverId)
		}
		evt := asm.Update(info.State, info.ThreadName)
		asm.Unregister()
		return evt, nil

	default:
		id := m.top(info.ThreadId)
		if id == DummyInstanceId {
			return event.ThreadStateEvent{}, errors.Wrapf(ErrUnknownThread, "thread %d (%v) on server %d", info.ThreadId, info.ThreadName, m.serverId)
		}
		asm, ok := m.instances[id]
		if !ok {
			return event.ThreadStateEvent{}, errors.Wrapf(ErrUnknownInstance, "instance %d on server %d", id, m.serverId)
		}
		return asm.Update(info.State, info.ThreadName), nil
	}
}

// Returns the instance currently active on the thread, or DummyInstanceId if there is none.
func (m *AbstractStateMachineManager) GetInstanceIdByThreadId(threadId int64) int {
	m.Lock()
	defer m.Unlock()
	return m.top(threadId)
}

// Returns the state machine of the instance, or nil if it is not tracked.
func (m *AbstractStateMachineManager) GetAsmByInstanceId(instanceId int) *AbstractStateMachine {
	m.Lock()
	defer m.Unlock()
	return m.instances[instanceId]
}

// The ids of the threads that have reported to the manager, in increasing order.
func (m *AbstractStateMachineManager) ThreadIds() []int64 {
	m.Lock()
	defer m.Unlock()
	ids := maps.Keys(m.threadStacks)
	slices.Sort(ids)
	return ids
}

// The number of tracked instances, including the dummy instance.
func (m *AbstractStateMachineManager) Size() int {
	m.Lock()
	defer m.Unlock()
	return len(m.instances)
}

// Forget every instance and thread. The dummy instance is recreated.
func (m *AbstractStateMachineManager) Reset() {
	m.Lock()
	defer m.Unlock()
	m.reset()
}

func (m *AbstractStateMachineManager) reset() {
	dummy := NewAbstractStateMachine(m.serverId, DummyName, DummyInstanceId)
	dummy.state = DummyState
	m.instances = map[int]*AbstractStateMachine{DummyInstanceId: dummy}
	m.threadStacks = make(map[int64][]int)
}

func (m *AbstractStateMachineManager) top(threadId int64) int {
	stack := m.threadStacks[threadId]
	if len(stack) == 0 {
		return DummyInstanceId
	}
	return stack[len(stack)-1]
}
