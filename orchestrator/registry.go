package orchestrator

import (
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gofi/config"
)

var ErrUnknownTargetSystem = errors.New("orchestrator: unknown target system")

// Builds the orchestrator of one trial of a target system
type Builder func(b *Base) (Orchestrator, error)

// Registry maps target system names to builders
type Registry struct {
	sync.Mutex
	builders map[string]Builder
}

// Create a registry holding the generic builder
func NewRegistry() *Registry {
	return &Registry{
		builders: map[string]Builder{
			config.DefaultTargetSystem: NewGeneric,
		},
	}
}

func (r *Registry) Register(name string, b Builder) {
	r.Lock()
	defer r.Unlock()
	r.builders[name] = b
}

func (r *Registry) Names() []string {
	r.Lock()
	defer r.Unlock()
	names := maps.Keys(r.builders)
	slices.Sort(names)
	return names
}

// Build the orchestrator of the current trial of host
func (r *Registry) Build(host Host, cfg config.Config, logger *log.Logger) (Orchestrator, error) {
	r.Lock()
	build, ok := r.builders[cfg.TargetSystem]
	r.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTargetSystem, "%q, known systems are %v", cfg.TargetSystem, r.Names())
	}
	base, err := NewBase(host, cfg, logger)
	if err != nil {
		return nil, err
	}
	return build(base)
}
