package orchestrator

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gofi/server"
)

var discard = log.New(io.Discard, "", 0)

// A host that reads node pids from a file written by the node script
type MockHost struct {
	sync.Mutex
	workspace  string
	trialId    int
	ready      int
	events     []string
	registries []server.ClientRegistry
}

func (h *MockHost) pidFile() string { return filepath.Join(h.workspace, "pid") }

func (h *MockHost) PrepareNodeStart(serverId int) {
	os.Remove(h.pidFile())
}

func (h *MockHost) RecentPid(timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(h.pidFile())
		if err == nil && strings.HasSuffix(string(data), "\n") {
			if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
				return pid, true
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return 0, false
}

func (h *MockHost) SetStart(serverId int)    { h.event("start-" + strconv.Itoa(serverId)) }
func (h *MockHost) SetShutdown(serverId int) { h.event("shutdown-" + strconv.Itoa(serverId)) }

func (h *MockHost) event(e string) {
	h.Lock()
	defer h.Unlock()
	h.events = append(h.events, e)
}

func (h *MockHost) SetReady() {
	h.Lock()
	defer h.Unlock()
	h.ready++
	h.events = append(h.events, "ready")
}

func (h *MockHost) TrialId() int { return h.trialId }

func (h *MockHost) TrialDir(trialId int) string {
	return filepath.Join(h.workspace, "trials", strconv.Itoa(trialId))
}

func (h *MockHost) SetClientRegistry(r server.ClientRegistry) {
	h.Lock()
	defer h.Unlock()
	h.registries = append(h.registries, r)
}

func (h *MockHost) Events() []string {
	h.Lock()
	defer h.Unlock()
	return append([]string{}, h.events...)
}
