package event

import "fmt"

const (
	// State id signalling that execution entered a new instrumented instance.
	RegisterId = 0
	// State id signalling that execution left an instrumented instance.
	UnregisterId = -1
)

// An AbstractState identifies a semantic state of a target class.
//
// AbstractStates are immutable values and are compared by value.
type AbstractState struct {
	Name string
	Id   int
}

func NewAbstractState(name string, id int) AbstractState {
	return AbstractState{Name: name, Id: id}
}

// Returns true if the state marks the start of a nested instance.
func (s AbstractState) IsRegister() bool {
	return s.Id == RegisterId
}

// Returns true if the state marks the end of an instance.
func (s AbstractState) IsUnregister() bool {
	return s.Id == UnregisterId
}

func (s AbstractState) String() string {
	return fmt.Sprintf("{%v, %v}", s.Name, s.Id)
}
