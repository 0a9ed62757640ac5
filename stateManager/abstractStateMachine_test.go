package stateManager

import (
	"math/rand"
	"sync"
	"testing"

	"gofi/event"
)

var registerTest = []struct {
	names []string
	state event.AbstractState
}{
	{[]string{}, event.NewAbstractState("a", 1)},
	{[]string{"Foo"}, event.NewAbstractState("a", 1)},
	{[]string{"Foo", "Bar", "Baz"}, event.NewAbstractState("b", 2)},
	{[]string{"Foo", "Foo"}, event.NewAbstractState("c", 3)},
}

func TestRegisterUnregister(t *testing.T) {
	for i, test := range registerTest {
		asm := NewAbstractStateMachine(0, "Root", 1)
		asm.Update(test.state, "main")
		for j, name := range test.names {
			asm.Register(name)
			asm.Update(event.NewAbstractState(name, j+10), "main")
		}
		if asm.Depth() != len(test.names) {
			t.Errorf("Test %v: Wrong depth after register. Expected: %v. Got: %v", i, len(test.names), asm.Depth())
		}
		for range test.names {
			asm.Unregister()
		}
		if asm.Depth() != 0 {
			t.Errorf("Test %v: Wrong depth after unregister. Expected: 0. Got: %v", i, asm.Depth())
		}
		if asm.Name() != "Root" {
			t.Errorf("Test %v: Wrong name. Expected: Root. Got: %v", i, asm.Name())
		}
		if asm.State() != test.state {
			t.Errorf("Test %v: Wrong state. Expected: %v. Got: %v", i, test.state, asm.State())
		}
	}
}

func TestUnregisterEmptyStack(t *testing.T) {
	asm := NewAbstractStateMachine(0, "Foo", 1)
	state := event.NewAbstractState("bar", 3)
	asm.Update(state, "main")
	asm.Unregister()
	asm.Unregister()
	if asm.State() != state || asm.Name() != "Foo" || asm.Depth() != 0 {
		t.Errorf("Unregister on an empty stack changed the machine. Got: %v %v %v", asm.Name(), asm.State(), asm.Depth())
	}
}

func TestRandomSequencesKeepStacksBalanced(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		asm := NewAbstractStateMachine(0, "Root", 1)
		depth := 0
		for j := 0; j < 50; j++ {
			switch rnd.Intn(3) {
			case 0:
				asm.Register("Nested")
				depth++
			case 1:
				asm.Unregister()
				if depth > 0 {
					depth--
				}
			case 2:
				asm.Update(event.NewAbstractState("s", rnd.Intn(10)+1), "main")
			}
			if asm.Depth() != depth {
				t.Fatalf("Test %v: Wrong depth after step %v. Expected: %v. Got: %v", i, j, depth, asm.Depth())
			}
		}
	}
}

func TestUpdateEvent(t *testing.T) {
	asm := NewAbstractStateMachine(3, "Foo", 5)
	evt := asm.Update(event.NewAbstractState("baz", 4), "worker")
	expected := event.ThreadStateEvent{
		NanoTime:         evt.NanoTime,
		ServerId:         3,
		ThreadName:       "worker",
		InstanceId:       5,
		StateMachineName: "Foo",
		State:            event.NewAbstractState("baz", 4),
	}
	if evt != expected {
		t.Errorf("Wrong event. Expected: %v. Got: %v", expected, evt)
	}
}

func TestCreateInjectionRequestSeesLatestUpdate(t *testing.T) {
	asm := NewAbstractStateMachine(0, "Foo", 5)
	wg := sync.WaitGroup{}
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			asm.Update(event.NewAbstractState("s", i), "t")
		}(i)
	}
	wg.Wait()
	asm.Update(event.NewAbstractState("last", 42), "t")
	req := asm.CreateInjectionRequest(event.InjectionQuery{ServerId: 0, ThreadName: "t"})
	if req.State != event.NewAbstractState("last", 42) || req.StateMachineName != "Foo" || req.InstanceId != 5 {
		t.Errorf("Request does not carry the latest state. Got: %v", req)
	}
}
