package event

import (
	"fmt"
	"time"
)

// An event is one entry in the event log of a trial.
// Events are recorded in the order they were observed by the control plane and are dumped as rows of the trial's CSV log.
type Event interface {
	// The kind of the event. It is written as the event-id column.
	Kind() Kind

	// Monotonic timestamp, in nanoseconds, of the moment the event was created.
	Nano() int64

	// Write the columns following event-id and time.
	// Columns that are not written are left empty by the writer.
	Dump(w Writer)
}

// A Writer receives the columns of an event, in the order of the CSV header.
//
// StateMachine and Op intern a name and return its id.
// Ids are handed out in first-seen order, starting from 0.
type Writer interface {
	Int(v int)
	Int64(v int64)
	Empty()
	Exceptions(ids []int)

	StateMachine(name string) int
	Op(name string) int
}

// Identifies the type of an event in the event log.
type Kind int

const (
	StateKind            Kind = iota // an abstract state update
	InjectionRequestKind             // an injection request that was not granted
	InjectionKind                    // an injection request that was granted
	StartKind                        // a server node was started
	ShutdownKind                     // a server node was shut down
	ReadyKind                        // the ensemble is ready for injection
)

var kindNames = []string{
	"state",
	"injectionRequest",
	"injectionEvent",
	"start",
	"shutdown",
	"ready",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// The names of all event kinds, indexed by Kind.
func KindNames() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames)
	return names
}

var base = time.Now()

// Returns a monotonic timestamp in nanoseconds.
//
// The value is only meaningful when compared with other values returned by Now in the same process.
func Now() int64 {
	return int64(time.Since(base))
}
