package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofi/config"
	"gofi/node"
)

const nodeScript = `#!/bin/sh
ws="$1"
log="$ws/trials/$2/logs-$4/server.log"
echo "$$" > "$ws/pid.tmp" && mv "$ws/pid.tmp" "$ws/pid"
echo "node $3 serving" >> "$log"
exec sleep 60
`

func testConfig(t *testing.T) (config.Config, *MockHost) {
	t.Helper()
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, "server.sh"), []byte(nodeScript), 0o755))
	cfg := config.Default()
	cfg.Workspace = ws
	cfg.Version = "3.4"
	cfg.Warmup = 0
	cfg.PidTimeout = 2 * time.Second
	cfg.WaitActiveEnsemble = true
	cfg.Ensemble = config.Ensemble{
		Nodes:        2,
		LogFile:      "server.log",
		ReadyPattern: `node [0-9]+ serving`,
		Command:      []string{"/bin/sh", "{workspace}/server.sh", "{workspace}", "{trial}", "{server}", "{instance}"},
	}
	cfg.Phases = []config.Phase{
		{Name: "echo", Clients: []config.Client{{Kind: config.LocalClient, Command: []string{"/bin/sh", "-c", "echo trial {trial}"}}}},
	}
	return cfg, &MockHost{workspace: ws, trialId: 4}
}

func TestGenericTrial(t *testing.T) {
	cfg, host := testConfig(t)
	orch, err := NewRegistry().Build(host, cfg, discard)
	require.NoError(t, err)
	g := orch.(*Generic)
	assert.Equal(t, Version{3, 4, 0}, g.Version())
	assert.Equal(t, filepath.Join(cfg.Workspace, "trials", "4"), g.TrialDir())

	endTime := time.Now().Add(20 * time.Second)
	require.NoError(t, orch.StartEnsemble(context.Background(), endTime))
	assert.Equal(t, []int{1, 2}, g.ServerNodeIds())
	for _, id := range g.ServerNodeIds() {
		assert.True(t, g.ServerNode(id).IsActive(), "node %d", id)
		assert.Equal(t, node.Active, g.ServerNode(id).Status())
	}
	assert.Equal(t, []string{"start-1", "start-2", "ready"}, host.Events())

	require.True(t, orch.HasNextWorkload())
	finished, err := orch.RunNextWorkload(endTime)
	require.NoError(t, err)
	assert.True(t, finished)
	assert.False(t, orch.HasNextWorkload())
	require.Len(t, host.registries, 2)
	assert.NotNil(t, host.registries[0])
	assert.Nil(t, host.registries[1])
	orch.ReportResult()

	out, err := os.ReadFile(filepath.Join(g.TrialDir(), "client-0.out"))
	require.NoError(t, err)
	assert.Equal(t, "trial 4\n", string(out))

	require.NoError(t, orch.Close())
	assert.Equal(t, []string{"start-1", "start-2", "ready", "shutdown-1", "shutdown-2"}, host.Events())
	assert.Empty(t, g.ServerNodeIds())
}

func TestStartEnsemblePastDeadline(t *testing.T) {
	cfg, host := testConfig(t)
	orch, err := NewRegistry().Build(host, cfg, discard)
	require.NoError(t, err)
	err = orch.StartEnsemble(context.Background(), time.Now().Add(-time.Second))
	assert.True(t, errors.Is(err, ErrEnsembleTimeout), "got %v", err)
	assert.Empty(t, host.Events())
	assert.NoError(t, orch.Close())
}

func TestStartEnsembleWithoutPid(t *testing.T) {
	cfg, host := testConfig(t)
	cfg.PidTimeout = 100 * time.Millisecond
	cfg.Ensemble.Command = []string{"/bin/sh", "-c", "exec sleep 60"}
	orch, err := NewRegistry().Build(host, cfg, discard)
	require.NoError(t, err)
	err = orch.StartEnsemble(context.Background(), time.Now().Add(10*time.Second))
	assert.True(t, errors.Is(err, node.ErrPidTimeout), "got %v", err)
	assert.NoError(t, orch.Close())
	assert.Empty(t, host.Events())
}

func TestRegistry(t *testing.T) {
	cfg, host := testConfig(t)
	r := NewRegistry()
	built := false
	r.Register("custom", func(b *Base) (Orchestrator, error) {
		built = true
		return NewGeneric(b)
	})
	assert.Equal(t, []string{"custom", "generic"}, r.Names())

	cfg.TargetSystem = "custom"
	_, err := r.Build(host, cfg, discard)
	require.NoError(t, err)
	assert.True(t, built)

	cfg.TargetSystem = "zookeeper"
	_, err = r.Build(host, cfg, discard)
	assert.True(t, errors.Is(err, ErrUnknownTargetSystem), "got %v", err)

	cfg.TargetSystem = "generic"
	cfg.Version = "x.1"
	_, err = r.Build(host, cfg, discard)
	assert.Error(t, err)

	cfg.Version = ""
	cfg.Ensemble.ReadyPattern = "("
	_, err = r.Build(host, cfg, discard)
	assert.Error(t, err)
}

func TestClientIds(t *testing.T) {
	cfg, host := testConfig(t)
	cfg.Phases = []config.Phase{
		{Clients: []config.Client{
			{Kind: config.ProcessClient, Command: []string{"create", "{trial}"}, Expected: 2},
			{Kind: config.AttachedClient, Expected: 1},
		}},
		{Clients: []config.Client{{Kind: config.ProcessClient, Expected: 1}}},
	}
	orch, err := NewRegistry().Build(host, cfg, discard)
	require.NoError(t, err)
	g := orch.(*Generic)
	require.Len(t, g.workloads, 2)
	assert.Equal(t, "phase-0", g.workloads[0].Name())

	var ids []int
	for _, w := range g.workloads {
		for _, c := range w.Clients() {
			ids = append(ids, c.Id())
		}
	}
	assert.Equal(t, []int{0, 1, 2}, ids)
	assert.Equal(t, []string{"create", "4"}, g.workloads[0].Clients()[0].Command())
}

// Nodes that are never known
type noNodes struct{}

func (noNodes) ServerNodeIds() []int            { return []int{1, 2} }
func (noNodes) ServerNode(int) *node.ServerNode { return nil }

func TestWaitForServersActive(t *testing.T) {
	b := &Base{Logger: discard}
	assert.True(t, b.WaitForServersActive(context.Background(), noNodes{}, nil, time.Now().Add(time.Second)))
	assert.False(t, b.WaitForServersActive(context.Background(), noNodes{}, nil, time.Now().Add(-time.Second)))

	cfg, host := testConfig(t)
	cfg.Ensemble.ReadyPattern = "never printed"
	cfg.WaitActiveEnsemble = false
	orch, err := NewRegistry().Build(host, cfg, discard)
	require.NoError(t, err)
	g := orch.(*Generic)
	require.NoError(t, orch.StartEnsemble(context.Background(), time.Now().Add(10*time.Second)))
	defer orch.Close()

	start := time.Now()
	assert.False(t, g.WaitForServersActive(context.Background(), g, []int{2}, time.Now().Add(200*time.Millisecond)))
	assert.Less(t, time.Since(start), 5*time.Second)

	g.ServerNode(2).SetActive()
	assert.True(t, g.WaitForServersActive(context.Background(), g, []int{2}, time.Now().Add(time.Second)))
}

var versionTest = []struct {
	s       string
	version Version
	err     bool
}{
	{"3", Version{3, 0, 0}, false},
	{"3.4", Version{3, 4, 0}, false},
	{"3.4.6", Version{3, 4, 6}, false},
	{"", Version{}, true},
	{"3.x", Version{}, true},
	{"3.4.6-beta", Version{}, true},
}

func TestParseVersion(t *testing.T) {
	for i, test := range versionTest {
		v, err := ParseVersion(test.s)
		if (err != nil) != test.err {
			t.Errorf("Test %v: Unexpected error result: %v", i, err)
		}
		if v != test.version {
			t.Errorf("Test %v: Expected %v. Got %v", i, test.version, v)
		}
	}
	v := Version{3, 4, 6}
	if !v.AtLeast(3, 4, 6) || !v.AtLeast(2, 9, 9) || v.AtLeast(3, 5, 0) {
		t.Errorf("Unexpected AtLeast result for %v", v)
	}
}
