package stateManager

import (
	"testing"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"gofi/event"
)

func update(threadId int64, instanceId int, class string, name string, id int) event.StateUpdate {
	return event.StateUpdate{
		ServerId:   1,
		ThreadId:   threadId,
		ThreadName: "T",
		InstanceId: instanceId,
		ClassName:  class,
		State:      event.NewAbstractState(name, id),
	}
}

func TestUnknownThread(t *testing.T) {
	m := NewAbstractStateMachineManager(1)
	for _, id := range []int64{0, 1, 42, -7} {
		if got := m.GetInstanceIdByThreadId(id); got != DummyInstanceId {
			t.Errorf("Thread %v: Expected: %v. Got: %v", id, DummyInstanceId, got)
		}
	}
	dummy := m.GetAsmByInstanceId(DummyInstanceId)
	if dummy == nil || dummy.State() != DummyState || dummy.Name() != DummyName {
		t.Errorf("Expected the dummy instance to exist. Got: %v", dummy)
	}
}

func TestFooBarBaz(t *testing.T) {
	m := NewAbstractStateMachineManager(1)
	const t1 = int64(1)

	if _, err := m.Update(update(t1, 5, "Foo", "Foo", event.RegisterId)); err != nil {
		t.Fatalf("Unexpected error on register: %v", err)
	}
	if _, err := m.Update(update(t1, 5, "Foo", "bar", 3)); err != nil {
		t.Fatalf("Unexpected error on update: %v", err)
	}

	// The instance id of a normal update is resolved from the thread
	evt, err := m.Update(update(t1, 99, "Foo", "baz", 4))
	if err != nil {
		t.Fatalf("Unexpected error on update: %v", err)
	}
	if evt.InstanceId != 5 || evt.StateMachineName != "Foo" || evt.State != event.NewAbstractState("baz", 4) {
		t.Errorf("Wrong event. Got: %v", evt)
	}
	if m.GetInstanceIdByThreadId(t1) != 5 {
		t.Errorf("Expected thread to be in instance 5. Got: %v", m.GetInstanceIdByThreadId(t1))
	}

	evt, err = m.Update(update(t1, 5, "Foo", "Foo", event.UnregisterId))
	if err != nil {
		t.Fatalf("Unexpected error on unregister: %v", err)
	}
	if evt.InstanceId != 5 || !evt.State.IsUnregister() {
		t.Errorf("Wrong unregister event. Got: %v", evt)
	}
	if m.GetInstanceIdByThreadId(t1) != DummyInstanceId {
		t.Errorf("Expected thread to have no context. Got: %v", m.GetInstanceIdByThreadId(t1))
	}
}

func TestNestedInstances(t *testing.T) {
	m := NewAbstractStateMachineManager(1)
	m.Update(update(1, 5, "Outer", "Outer", event.RegisterId))
	m.Update(update(1, 5, "Outer", "a", 1))
	m.Update(update(1, 6, "Inner", "Inner", event.RegisterId))
	m.Update(update(1, 6, "Inner", "b", 2))

	if m.GetInstanceIdByThreadId(1) != 6 {
		t.Errorf("Expected inner instance on top. Got: %v", m.GetInstanceIdByThreadId(1))
	}
	m.Update(update(1, 6, "Inner", "Inner", event.UnregisterId))
	if m.GetInstanceIdByThreadId(1) != 5 {
		t.Errorf("Expected outer instance after unregister. Got: %v", m.GetInstanceIdByThreadId(1))
	}
	if got := m.GetAsmByInstanceId(5).State(); got != event.NewAbstractState("a", 1) {
		t.Errorf("Outer instance changed by inner instance. Got: %v", got)
	}
}

func TestReRegisterSameInstance(t *testing.T) {
	// A constructor calling a tracked super constructor registers the same instance twice
	m := NewAbstractStateMachineManager(1)
	m.Update(update(1, 5, "Base", "Base", event.RegisterId))
	m.Update(update(1, 5, "Base", "init", 1))
	m.Update(update(1, 5, "Derived", "Derived", event.RegisterId))
	m.Update(update(1, 5, "Derived", "ready", 2))

	asm := m.GetAsmByInstanceId(5)
	if asm.Name() != "Derived" || asm.Depth() != 1 {
		t.Errorf("Expected nested name Derived at depth 1. Got: %v at %v", asm.Name(), asm.Depth())
	}
	m.Update(update(1, 5, "Derived", "Derived", event.UnregisterId))
	if asm.Name() != "Base" || asm.State() != event.NewAbstractState("init", 1) {
		t.Errorf("Expected Base in state init. Got: %v %v", asm.Name(), asm.State())
	}
}

func TestProtocolMisses(t *testing.T) {
	m := NewAbstractStateMachineManager(1)
	_, err := m.Update(update(3, 5, "Foo", "bar", 3))
	if !errors.Is(err, ErrUnknownThread) {
		t.Errorf("Expected ErrUnknownThread. Got: %v", err)
	}
	_, err = m.Update(update(3, 5, "Foo", "Foo", event.UnregisterId))
	if !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("Expected ErrUnknownInstance. Got: %v", err)
	}
	if m.Size() != 1 || len(m.ThreadIds()) != 0 {
		t.Errorf("Protocol misses changed the manager. Instances: %v. Threads: %v", m.Size(), m.ThreadIds())
	}
}

func TestReset(t *testing.T) {
	m := NewAbstractStateMachineManager(1)
	m.Update(update(2, 5, "Foo", "Foo", event.RegisterId))
	m.Update(update(1, 6, "Foo", "Foo", event.RegisterId))
	if ids := m.ThreadIds(); !slices.Equal(ids, []int64{1, 2}) {
		t.Errorf("Wrong threads. Expected: [1 2]. Got: %v", ids)
	}
	m.Reset()
	if m.Size() != 1 || m.GetInstanceIdByThreadId(1) != DummyInstanceId {
		t.Errorf("Reset did not clear the manager")
	}
}
