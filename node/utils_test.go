package node

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

var discard = log.New(io.Discard, "", 0)

// A host that reads the pid handed back by the node script from a file
type MockHost struct {
	sync.Mutex
	pidFile  string
	prepared []int
	events   []string
}

func (h *MockHost) PrepareNodeStart(serverId int) {
	h.Lock()
	defer h.Unlock()
	h.prepared = append(h.prepared, serverId)
	os.Remove(h.pidFile)
}

func (h *MockHost) RecentPid(timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(h.pidFile)
		if err == nil && strings.HasSuffix(string(data), "\n") {
			pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
			if err == nil {
				return pid, true
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return 0, false
}

func (h *MockHost) SetStart(serverId int) {
	h.Lock()
	defer h.Unlock()
	h.events = append(h.events, "start-"+strconv.Itoa(serverId))
}

func (h *MockHost) SetShutdown(serverId int) {
	h.Lock()
	defer h.Unlock()
	h.events = append(h.events, "shutdown-"+strconv.Itoa(serverId))
}

func (h *MockHost) Events() []string {
	h.Lock()
	defer h.Unlock()
	return append([]string{}, h.events...)
}

// Write a shell script into dir and return its path
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// Wait until cond holds or the timeout expires
func eventually(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}
