package orchestrator

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gofi/config"
	"gofi/node"
	"gofi/workload"
)

// Generic runs an ensemble and workloads described entirely by the configuration.
//
// Nodes get server and instance ids 1..n. Injection is enabled once the
// ensemble has warmed up.
type Generic struct {
	*Base

	mu      sync.Mutex
	profile node.Profile
	nodes   map[int]*node.ServerNode
}

// Builds a Generic orchestrator. Registered as "generic".
func NewGeneric(b *Base) (Orchestrator, error) {
	g := &Generic{
		Base:  b,
		nodes: make(map[int]*node.ServerNode),
	}
	ens := b.Config.Ensemble
	g.profile = node.Profile{
		LogFileName: ens.LogFile,
		PidFile:     ens.PidFile,
		DataSubdir:  ens.DataSubdir,
	}
	if ens.ReadyPattern != "" {
		re, err := regexp.Compile(ens.ReadyPattern)
		if err != nil {
			return nil, errors.Wrap(err, "orchestrator: invalid ready pattern")
		}
		g.profile.IsActiveLine = node.MatchLine(re)
	}
	if len(ens.Command) > 0 {
		g.profile.StartCommand = func(n *node.ServerNode) []string {
			return g.expand(ens.Command, n.ServerId(), n.InstanceId())
		}
	}

	for i, phase := range b.Config.Phases {
		name := phase.Name
		if name == "" {
			name = "phase-" + strconv.Itoa(i)
		}
		w := workload.New(name, b.Logger)
		w.SetInjectionProbe(g.anyInjected)
		for _, c := range phase.Clients {
			w.Add(g.client(c))
		}
		b.AddWorkload(w)
	}
	return g, nil
}

func (g *Generic) client(c config.Client) workload.Client {
	id := g.CreateClientId()
	cfg := workload.ClientConfig{
		Id:         id,
		Workspace:  g.Workspace(),
		TrialDir:   g.TrialDir(),
		Command:    g.expand(c.Command, 0, 0),
		Expected:   c.Expected,
		Script:     c.Script,
		ScriptArgs: g.expand(c.Args, 0, 0),
		Logger:     g.Logger,
	}
	switch c.Kind {
	case config.LocalClient:
		return workload.NewLocalClient(cfg, cfg.Command)
	case config.AttachedClient:
		return workload.NewAttachedClient(id, c.Expected)
	}
	return workload.NewClientWorkload(cfg)
}

// Replace the placeholders of a command template
func (g *Generic) expand(template []string, serverId, instanceId int) []string {
	if template == nil {
		return nil
	}
	r := strings.NewReplacer(
		"{workspace}", g.Workspace(),
		"{trial}", strconv.Itoa(g.TrialId()),
		"{server}", strconv.Itoa(serverId),
		"{instance}", strconv.Itoa(instanceId),
	)
	out := make([]string, len(template))
	for i, arg := range template {
		out[i] = r.Replace(arg)
	}
	return out
}

func (g *Generic) StartEnsemble(ctx context.Context, endTime time.Time) error {
	for id := 1; id <= g.Config.Ensemble.Nodes; id++ {
		if !time.Now().Before(endTime) {
			return errors.Wrapf(ErrEnsembleTimeout, "before starting node %d", id)
		}
		n := node.NewServerNode(g.Host, g.profile, node.Config{
			Workspace:     g.Workspace(),
			InitDataDir:   g.Config.InitDataDir,
			TrialDir:      g.TrialDir(),
			TrialId:       g.TrialId(),
			ServerId:      id,
			InstanceId:    id,
			UseLogMonitor: g.Config.UseLogMonitor,
			PidTimeout:    g.Config.PidTimeout,
			Logger:        g.Logger,
		})
		if err := n.PreparePersistentData(); err != nil {
			g.Logger.Printf("Warning: %v", err)
		}
		if err := n.Start(ctx); err != nil {
			if perr := n.PurgePersistentData(); perr != nil {
				g.Logger.Printf("Warning: %v", perr)
			}
			return err
		}
		g.mu.Lock()
		g.nodes[id] = n
		g.mu.Unlock()
	}

	if err := sleepUntil(ctx, g.Config.Warmup, endTime); err != nil {
		return errors.Wrap(err, "orchestrator: warmup interrupted")
	}
	if g.Config.WaitActiveEnsemble {
		g.WaitForServersActive(ctx, g, nil, endTime)
	}
	g.Host.SetReady()
	return nil
}

func (g *Generic) ServerNodeIds() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := maps.Keys(g.nodes)
	slices.Sort(ids)
	return ids
}

func (g *Generic) ServerNode(id int) *node.ServerNode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodes[id]
}

func (g *Generic) anyInjected() bool {
	for _, id := range g.ServerNodeIds() {
		if g.ServerNode(id).IsInjected() {
			return true
		}
	}
	return false
}

// Log the state of every node and the progress of every phase
func (g *Generic) ReportResult() {
	for _, id := range g.ServerNodeIds() {
		n := g.ServerNode(id)
		g.Logger.Printf("Node %d: {inject:%v, status:%v}", id, n.IsInjected(), n.Status())
	}
	g.Base.ReportResult()
}

// Shut every node down and purge its data.
func (g *Generic) Close() error {
	var err error
	for _, id := range g.ServerNodeIds() {
		n := g.ServerNode(id)
		err = errors.CombineErrors(err, n.Shutdown())
		if perr := n.PurgePersistentData(); perr != nil {
			g.Logger.Printf("Warning: %v", perr)
		}
	}
	g.mu.Lock()
	g.nodes = make(map[int]*node.ServerNode)
	g.mu.Unlock()
	return err
}

var _ Nodes = (*Generic)(nil)
