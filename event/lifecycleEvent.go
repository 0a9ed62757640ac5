package event

import "fmt"

// Recorded when a server node process has been started.
type StartEvent struct {
	NanoTime int64
	ServerId int
}

func NewStartEvent(serverId int) StartEvent {
	return StartEvent{NanoTime: Now(), ServerId: serverId}
}

func (e StartEvent) Kind() Kind     { return StartKind }
func (e StartEvent) Nano() int64    { return e.NanoTime }
func (e StartEvent) Dump(w Writer)  { w.Int(e.ServerId) }
func (e StartEvent) String() string { return fmt.Sprintf("Start{%v}", e.ServerId) }

// Recorded when a server node process has been killed.
type ShutdownEvent struct {
	NanoTime int64
	ServerId int
}

func NewShutdownEvent(serverId int) ShutdownEvent {
	return ShutdownEvent{NanoTime: Now(), ServerId: serverId}
}

func (e ShutdownEvent) Kind() Kind     { return ShutdownKind }
func (e ShutdownEvent) Nano() int64    { return e.NanoTime }
func (e ShutdownEvent) Dump(w Writer)  { w.Int(e.ServerId) }
func (e ShutdownEvent) String() string { return fmt.Sprintf("Shutdown{%v}", e.ServerId) }

// Recorded when the ensemble has finished warm up and injection is enabled.
type ReadyEvent struct {
	NanoTime int64
}

func NewReadyEvent() ReadyEvent {
	return ReadyEvent{NanoTime: Now()}
}

func (e ReadyEvent) Kind() Kind     { return ReadyKind }
func (e ReadyEvent) Nano() int64    { return e.NanoTime }
func (e ReadyEvent) Dump(w Writer)  {}
func (e ReadyEvent) String() string { return "Ready" }
