package node

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineCollector struct {
	sync.Mutex
	lines []string
}

func (c *lineCollector) handle(line string) {
	c.Lock()
	defer c.Unlock()
	c.lines = append(c.lines, line)
}

func (c *lineCollector) get() []string {
	c.Lock()
	defer c.Unlock()
	return append([]string{}, c.lines...)
}

func TestLogMonitorLateFileAndPartialLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	c := &lineCollector{}
	m := NewLogMonitor(path, c.handle, discard)
	m.Start(context.Background())

	time.Sleep(150 * time.Millisecond)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	f.WriteString("hel")
	time.Sleep(50 * time.Millisecond)
	f.WriteString("lo\r\nworld\n")
	f.WriteString("partial")

	assert.True(t, eventually(5*time.Second, func() bool { return len(c.get()) == 2 }))
	require.NoError(t, m.Stop(time.Second))
	assert.Equal(t, []string{"hello", "world"}, c.get())
}

func TestLogMonitorStopWhileWaitingForFile(t *testing.T) {
	m := NewLogMonitor(filepath.Join(t.TempDir(), "never.log"), func(string) {}, discard)
	m.Start(context.Background())
	start := time.Now()
	require.NoError(t, m.Stop(time.Second))
	assert.Less(t, time.Since(start), time.Second)
}

func TestLogMonitorStopsWithContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	ctx, cancel := context.WithCancel(context.Background())
	m := NewLogMonitor(path, func(string) {}, discard)
	m.Start(ctx)
	cancel()
	select {
	case <-m.done:
	case <-time.After(5 * time.Second):
		t.Errorf("Monitor did not stop when its context was cancelled")
	}
}

func TestLogMonitorJoinTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, os.WriteFile(path, []byte("line\n"), 0o644))

	entered := make(chan struct{})
	release := make(chan struct{})
	m := NewLogMonitor(path, func(string) {
		close(entered)
		<-release
	}, discard)
	m.Start(context.Background())

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatalf("Monitor did not read the line")
	}
	err := m.Stop(50 * time.Millisecond)
	assert.True(t, errors.Is(err, ErrMonitorJoinTimeout), "got %v", err)

	close(release)
	select {
	case <-m.done:
	case <-time.After(5 * time.Second):
		t.Errorf("Detached monitor did not exit")
	}
}

func TestStopBeforeStart(t *testing.T) {
	m := NewLogMonitor("unused", func(string) {}, discard)
	assert.NoError(t, m.Stop(time.Millisecond))
}
