package controller

import (
	"sync"
	"sync/atomic"

	"gofi/event"
	"gofi/policy"
)

// Decides injections for the control plane and tracks the identity of the current trial.
type Controller interface {
	// Decide on an injection request. Never injects before SetReady has been called for the current attempt.
	Inject(req *event.ThreadInjectionRequest) event.InjectionCommand
	// Enable injection for the current attempt.
	SetReady()
	// Prepare a new attempt. The trial id is only advanced if incrementId is true.
	SetupNewTrial(incrementId bool)
	// Returns true while the experiment has trials left.
	HasNextTrial() bool
	TrialId() int
}

// The InjectionController gates a Policy on a readiness flag.
//
// Injection is disabled while the ensemble warms up, since abstract states are not meaningful during bootstrap.
type InjectionController struct {
	policy policy.Policy
	ready  atomic.Bool

	mu        sync.Mutex
	trialId   int
	maxTrials int
}

// Create a new InjectionController
//
// p is the policy making the decisions.
// maxTrials bounds the number of trials in the experiment. A value <= 0 means no bound.
func NewInjectionController(p policy.Policy, maxTrials int) *InjectionController {
	return &InjectionController{
		policy:    p,
		trialId:   -1,
		maxTrials: maxTrials,
	}
}

func (c *InjectionController) Inject(req *event.ThreadInjectionRequest) event.InjectionCommand {
	if !c.ready.Load() {
		return event.NoInjection
	}
	return c.policy.Inject(req)
}

func (c *InjectionController) SetReady() {
	c.ready.Store(true)
}

func (c *InjectionController) Ready() bool {
	return c.ready.Load()
}

func (c *InjectionController) SetupNewTrial(incrementId bool) {
	c.ready.Store(false)
	c.mu.Lock()
	if incrementId {
		c.trialId++
	}
	c.mu.Unlock()
	c.policy.SetupNewTrial()
}

func (c *InjectionController) HasNextTrial() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxTrials <= 0 || c.trialId+1 < c.maxTrials
}

// The id of the current trial. Is -1 before the first trial has been set up.
func (c *InjectionController) TrialId() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trialId
}
