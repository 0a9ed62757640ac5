package workload

import (
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = log.New(io.Discard, "", 0)

// A client that counts the calls made by the workload.
// It registers on start when registers is set and exits on shutdown.
type fakeClient struct {
	tally
	sync.Mutex
	id        int
	registers bool
	exitAfter time.Duration

	starts    int
	shutdowns int
	started   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newFakeClient(id, expected int, registers bool) *fakeClient {
	return &fakeClient{
		tally:     tally{expected: expected},
		id:        id,
		registers: registers,
		started:   make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (c *fakeClient) exit() { c.closeOnce.Do(func() { close(c.done) }) }

func (c *fakeClient) Id() int           { return c.id }
func (c *fakeClient) Command() []string { return []string{"run", "fake"} }

func (c *fakeClient) Start() error {
	c.Lock()
	c.starts++
	c.Unlock()
	if c.registers {
		close(c.started)
	}
	if c.exitAfter > 0 {
		time.AfterFunc(c.exitAfter, c.exit)
	}
	return nil
}

func (c *fakeClient) WaitForStartup(timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = time.Millisecond
	}
	select {
	case <-c.started:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (c *fakeClient) Done() <-chan struct{} { return c.done }

func (c *fakeClient) Shutdown() error {
	c.Lock()
	c.shutdowns++
	c.Unlock()
	c.exit()
	return nil
}

func (c *fakeClient) NotifyPid(int) error { return nil }

func (c *fakeClient) calls() (int, int) {
	c.Lock()
	defer c.Unlock()
	return c.starts, c.shutdowns
}

func TestRunPastDeadline(t *testing.T) {
	w := New("past", discard)
	clients := []*fakeClient{newFakeClient(2, 1, false), newFakeClient(0, 1, true), newFakeClient(1, 1, false)}
	for _, c := range clients {
		w.Add(c)
	}

	done := make(chan error)
	go func() { done <- w.Run(time.Now().Add(-time.Second)) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return")
	}
	for _, c := range clients {
		starts, shutdowns := c.calls()
		assert.Equal(t, 1, starts, "client %d", c.id)
		assert.Equal(t, 1, shutdowns, "client %d", c.id)
	}
	assert.False(t, w.IsFinished())
}

func TestRunReturnsWhenClientsExit(t *testing.T) {
	w := New("early", discard)
	for id := 0; id < 3; id++ {
		c := newFakeClient(id, 0, true)
		c.exitAfter = 20 * time.Millisecond
		w.Add(c)
	}
	start := time.Now()
	require.NoError(t, w.Run(time.Now().Add(10*time.Second)))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, w.IsFinished())
}

func TestRunStopsHangingClientsAtDeadline(t *testing.T) {
	w := New("hang", discard)
	c := newFakeClient(0, 5, true)
	w.Add(c)
	start := time.Now()
	require.NoError(t, w.Run(time.Now().Add(100*time.Millisecond)))
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)
	_, shutdowns := c.calls()
	assert.Equal(t, 1, shutdowns)
}

// A client that ignores being killed
type stuckClient struct {
	*fakeClient
}

func (c stuckClient) Shutdown() error { return nil }

func TestRunBoundsJoin(t *testing.T) {
	w := New("stuck", discard)
	w.joinTimeout = 50 * time.Millisecond
	w.Add(stuckClient{newFakeClient(0, 1, true)})
	err := w.Run(time.Now())
	assert.True(t, errors.Is(err, ErrClientsNotJoined), "got %v", err)
}

func TestRegisterAndSend(t *testing.T) {
	w := New("phase", discard)
	w.Add(newFakeClient(0, 2, true))
	attached := NewAttachedClient(1, 1)
	w.Add(attached)

	cmd, err := w.RegisterClient(0, 1234)
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "fake"}, cmd)

	_, err = w.RegisterClient(1, 99)
	assert.True(t, errors.Is(err, ErrAttachedPid), "got %v", err)
	_, err = w.RegisterClient(7, 99)
	assert.True(t, errors.Is(err, ErrUnknownClient), "got %v", err)
	assert.True(t, errors.Is(w.Send(7, "ok", 1), ErrUnknownClient))

	injected := false
	w.SetInjectionProbe(func() bool { return injected })
	require.NoError(t, w.Send(0, `{"success": true, "status": "LEADING"}`, 1000))
	injected = true
	require.NoError(t, w.Send(1, "error: connection refused", 10))
	assert.Equal(t, []string{"1/2", "1/1"}, w.Results())
	assert.False(t, w.IsFinished())

	require.NoError(t, w.Send(0, "FOLLOWING", 10))
	assert.True(t, w.IsFinished())

	reqs := w.Clients()[0].Requests()
	require.Len(t, reqs, 2)
	assert.True(t, reqs[0].Success)
	assert.Equal(t, "LEADING", reqs[0].ServerStatus)
	assert.False(t, reqs[0].Injected)
	assert.Equal(t, time.Microsecond, reqs[0].Duration())
	assert.True(t, reqs[1].Injected)

	failed := attached.Requests()[0]
	assert.False(t, failed.Success)
	assert.True(t, failed.Injected)
}

var parseResultTest = []struct {
	result  string
	success bool
	status  string
}{
	{`{"success": false, "status": "LOOKING"}`, false, "LOOKING"},
	{`{"status": "LEADING"}`, true, "LEADING"},
	{`{"success": true}`, true, ""},
	{"FOLLOWING\n", true, "FOLLOWING"},
	{"", false, ""},
	{"Error while reading", false, "Error while reading"},
	{"[1, 2]", true, "[1, 2]"},
}

func TestParseResult(t *testing.T) {
	end := time.Unix(100, 0)
	for i, test := range parseResultTest {
		req := ParseResult(test.result, 500, end, false)
		if req.Success != test.success {
			t.Errorf("Test %v: Expected success %v. Got %v", i, test.success, req.Success)
		}
		if req.ServerStatus != test.status {
			t.Errorf("Test %v: Expected status %q. Got %q", i, test.status, req.ServerStatus)
		}
		if req.Duration() != 500*time.Nanosecond {
			t.Errorf("Test %v: Expected duration 500ns. Got %v", i, req.Duration())
		}
	}
}
