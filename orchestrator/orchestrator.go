package orchestrator

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"

	"gofi/config"
	"gofi/node"
	"gofi/server"
	"gofi/workload"
)

var ErrEnsembleTimeout = errors.New("orchestrator: trial deadline passed while starting the ensemble")

const (
	activePollInterval = 10 * time.Millisecond
	activePollWait     = 10 * time.Millisecond
)

// The part of the control plane an orchestrator uses during a trial
type Host interface {
	node.Host
	SetReady()
	TrialId() int
	TrialDir(trialId int) string
	SetClientRegistry(r server.ClientRegistry)
}

// An Orchestrator runs the ensemble and the workload phases of one trial.
type Orchestrator interface {
	// Start the nodes of the target system. Must return by endTime.
	StartEnsemble(ctx context.Context, endTime time.Time) error
	HasNextWorkload() bool
	// Run the next workload phase. Returns whether every client of the phase finished.
	RunNextWorkload(endTime time.Time) (bool, error)
	ReportResult()
	// Shut the ensemble down
	Close() error
}

// The nodes of an ensemble
type Nodes interface {
	ServerNodeIds() []int
	// Returns nil for an unknown id
	ServerNode(id int) *node.ServerNode
}

// Base holds what every orchestrator of a trial shares: the workload phases in order and the trial layout.
type Base struct {
	Host   Host
	Config config.Config
	Logger *log.Logger

	trialId   int
	version   Version
	workloads []*workload.Workload
	progress  int
	clients   int
}

func NewBase(host Host, cfg config.Config, logger *log.Logger) (*Base, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "Orchestrator: ", log.LstdFlags)
	}
	b := &Base{
		Host:    host,
		Config:  cfg,
		Logger:  logger,
		trialId: host.TrialId(),
	}
	if cfg.Version != "" {
		v, err := ParseVersion(cfg.Version)
		if err != nil {
			return nil, err
		}
		b.version = v
	}
	return b, nil
}

func (b *Base) TrialId() int      { return b.trialId }
func (b *Base) Version() Version  { return b.version }
func (b *Base) TrialDir() string  { return b.Host.TrialDir(b.trialId) }
func (b *Base) Workspace() string { return b.Config.Workspace }

// Returns a new client id, unique within the trial
func (b *Base) CreateClientId() int {
	id := b.clients
	b.clients++
	return id
}

func (b *Base) AddWorkload(w *workload.Workload) {
	b.workloads = append(b.workloads, w)
}

func (b *Base) HasNextWorkload() bool {
	return b.progress < len(b.workloads)
}

func (b *Base) RunNextWorkload(endTime time.Time) (bool, error) {
	w := b.workloads[b.progress]
	b.Host.SetClientRegistry(w)
	defer b.Host.SetClientRegistry(nil)
	err := w.Run(endTime)
	b.progress++
	return w.IsFinished(), err
}

// Log the progress of every phase that has run
func (b *Base) ReportResult() {
	for i := 0; i < b.progress; i++ {
		b.workloads[i].ReportResult(i)
	}
}

// Wait until the nodes with the given ids are active or endTime passes.
//
// A nil ids waits for every node. Unknown ids are ignored.
// Returns true if every node became active.
func (b *Base) WaitForServersActive(ctx context.Context, nodes Nodes, ids []int, endTime time.Time) bool {
	if !time.Now().Before(endTime) {
		b.Logger.Printf("Warning: exceeding time limit in starting ensemble")
		return false
	}
	if ids == nil {
		ids = nodes.ServerNodeIds()
	}
	ctx, cancel := context.WithDeadline(ctx, endTime)
	defer cancel()

	pending := slices.Clone(ids)
	limiter := rate.NewLimiter(rate.Every(activePollInterval), 1)
	for len(pending) > 0 {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		remaining := pending[:0]
		for _, id := range pending {
			n := nodes.ServerNode(id)
			if n == nil {
				continue
			}
			if n.WaitActive(activePollWait) {
				b.Logger.Printf("Node %d is now active", id)
				continue
			}
			remaining = append(remaining, id)
		}
		pending = remaining
	}
	if len(pending) > 0 {
		b.Logger.Printf("Warning: nodes %v are not active", pending)
		return false
	}
	return true
}

// Sleep for d, returning early if ctx is done or endTime passes.
func sleepUntil(ctx context.Context, d time.Duration, endTime time.Time) error {
	if left := time.Until(endTime); left < d {
		d = left
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
