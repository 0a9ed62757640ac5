package policy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gofi/event"
)

// A Policy decides which injection requests are granted.
//
// The control plane serializes all calls to Inject, so implementations do not need to be safe for concurrent use.
type Policy interface {
	// Decide whether to inject at the request. Return event.NoInjection to observe only.
	Inject(req *event.ThreadInjectionRequest) event.InjectionCommand

	// Reset the per trial state of the policy.
	// Called before every attempt, including retries of the same trial.
	SetupNewTrial()
}

// The kinds of faults a policy is allowed to inject.
type InjectionType int

const (
	All InjectionType = iota
	Exception
	Delay
)

func (t InjectionType) String() string {
	switch t {
	case All:
		return "all"
	case Exception:
		return "exception"
	case Delay:
		return "delay"
	}
	return fmt.Sprintf("InjectionType(%d)", int(t))
}

// Returns true if the type allows exceptions to be injected.
func (t InjectionType) AllowsException() bool {
	return t == All || t == Exception
}

// Returns true if the type allows delays to be injected.
func (t InjectionType) AllowsDelay() bool {
	return t == All || t == Delay
}

func ParseInjectionType(s string) (InjectionType, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return All, nil
	case "exception":
		return Exception, nil
	case "delay":
		return Delay, nil
	}
	return All, errors.Newf("policy: unknown injection type %q", s)
}

// A policy that never injects.
type NonePolicy struct{}

func (NonePolicy) Inject(*event.ThreadInjectionRequest) event.InjectionCommand {
	return event.NoInjection
}

func (NonePolicy) SetupNewTrial() {}

// Creates a policy from the injection type and the policy specific parameters in the configuration.
type Constructor func(t InjectionType, params map[string]string) (Policy, error)

// A Registry maps policy names to constructors.
//
// The "None" policy is always registered.
type Registry struct {
	sync.Mutex
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: map[string]Constructor{
			"None": func(InjectionType, map[string]string) (Policy, error) { return NonePolicy{}, nil },
		},
	}
}

// Register a constructor under the provided name. A previous constructor with the same name is replaced.
func (r *Registry) Register(name string, c Constructor) {
	r.Lock()
	defer r.Unlock()
	r.constructors[name] = c
}

// Create the policy registered under the name.
func (r *Registry) New(name string, t InjectionType, params map[string]string) (Policy, error) {
	r.Lock()
	c, ok := r.constructors[name]
	r.Unlock()
	if !ok {
		return nil, errors.Newf("policy: no policy named %q. Known policies: %v", name, r.Names())
	}
	p, err := c(t, params)
	if err != nil {
		return nil, errors.Wrapf(err, "policy: creating %v", name)
	}
	return p, nil
}

// The names of the registered policies, sorted.
func (r *Registry) Names() []string {
	r.Lock()
	defer r.Unlock()
	names := maps.Keys(r.constructors)
	slices.Sort(names)
	return names
}
