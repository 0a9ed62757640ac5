package workload

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"gofi/node"
)

var ErrAttachedPid = errors.New("workload: an attached client does not register a pid")

const DefaultClientScript = "client.sh"

// A Client drives requests against the ensemble during one workload phase.
type Client interface {
	Id() int
	// Launch the client without waiting for it.
	Start() error
	// Wait up to timeout for the client to register. A timeout <= 0 does not block.
	WaitForStartup(timeout time.Duration) bool
	// Closed when the client has exited.
	Done() <-chan struct{}
	// Force the client to stop. Called exactly once per run.
	Shutdown() error
	// Record the pid handed back by the client process.
	NotifyPid(pid int) error
	// The arguments the client runs with.
	Command() []string
	Proceed(req ClientRequest)
	IsFinished() bool
	// Progress as "done/expected"
	Result() string
	Requests() []ClientRequest
}

// Progress of a client towards its expected request count
type tally struct {
	mu       sync.Mutex
	expected int
	progress int
	requests []ClientRequest
}

func (t *tally) Proceed(req ClientRequest) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress++
	t.requests = append(t.requests, req)
}

func (t *tally) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress == t.expected
}

func (t *tally) Result() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("%d/%d", t.progress, t.expected)
}

func (t *tally) Requests() []ClientRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]ClientRequest{}, t.requests...)
}

// Configuration of a ClientWorkload
type ClientConfig struct {
	Id        int
	Workspace string
	TrialDir  string
	// Handed to the client process when it registers
	Command  []string
	Expected int
	// Launcher script relative to the workspace. DefaultClientScript if empty.
	Script string
	// Arguments of the launcher script. The client id if empty.
	ScriptArgs []string
	Logger     *log.Logger
}

// A ClientWorkload runs one external client process through a launcher script.
//
// The process registers its pid through the orchestrator service and reports
// every completed request. Its output goes to <trialDir>/client-<id>.out.
type ClientWorkload struct {
	sync.Mutex
	tally

	id        int
	workspace string
	trialDir  string
	command   []string
	argv      []string
	local     bool
	logger    *log.Logger

	pid     int
	cmd     *exec.Cmd
	killed  bool
	started chan struct{}
	once    sync.Once
	done    chan struct{}
}

func NewClientWorkload(cfg ClientConfig) *ClientWorkload {
	script := cfg.Script
	if script == "" {
		script = DefaultClientScript
	}
	args := cfg.ScriptArgs
	if len(args) == 0 {
		args = []string{strconv.Itoa(cfg.Id)}
	}
	argv := append([]string{"bash", filepath.Join(cfg.Workspace, script)}, args...)
	return newClientWorkload(cfg, argv, false)
}

// Create a client that runs argv in the workspace without any handshake.
//
// It is considered started as soon as it is launched and completes one request when it exits on its own.
func NewLocalClient(cfg ClientConfig, argv []string) *ClientWorkload {
	cfg.Expected = 1
	return newClientWorkload(cfg, argv, true)
}

func newClientWorkload(cfg ClientConfig, argv []string, local bool) *ClientWorkload {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &ClientWorkload{
		tally:     tally{expected: cfg.Expected},
		id:        cfg.Id,
		workspace: cfg.Workspace,
		trialDir:  cfg.TrialDir,
		command:   cfg.Command,
		argv:      argv,
		local:     local,
		logger:    log.New(logger.Writer(), fmt.Sprintf("Client %d: ", cfg.Id), logger.Flags()),
		pid:       -1,
		started:   make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (c *ClientWorkload) Id() int           { return c.id }
func (c *ClientWorkload) Command() []string { return c.command }

func (c *ClientWorkload) OutputFile() string {
	return filepath.Join(c.trialDir, fmt.Sprintf("client-%d.out", c.id))
}

func (c *ClientWorkload) Start() error {
	fail := func(err error) error {
		close(c.done)
		return errors.Wrapf(err, "workload: starting client %d", c.id)
	}
	if err := os.MkdirAll(c.trialDir, 0o755); err != nil {
		return fail(err)
	}
	out, err := os.Create(c.OutputFile())
	if err != nil {
		return fail(err)
	}
	cmd := exec.Command(c.argv[0], c.argv[1:]...)
	cmd.Dir = c.workspace
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Start(); err != nil {
		out.Close()
		c.logger.Printf("Warning: failed to launch %q: %v", strings.Join(c.argv, " "), err)
		return fail(err)
	}
	launched := time.Now()
	c.Lock()
	c.cmd = cmd
	c.Unlock()
	if c.local {
		c.markStarted()
	}

	go func() {
		err := cmd.Wait()
		out.Close()
		c.Lock()
		killed := c.killed
		c.Unlock()
		if c.local && !killed {
			c.Proceed(ClientRequest{Start: launched, End: time.Now(), Success: err == nil})
		}
		close(c.done)
	}()
	return nil
}

func (c *ClientWorkload) markStarted() {
	c.once.Do(func() { close(c.started) })
}

func (c *ClientWorkload) NotifyPid(pid int) error {
	c.Lock()
	c.pid = pid
	c.Unlock()
	c.logger.Printf("Started with pid %d", pid)
	c.markStarted()
	return nil
}

func (c *ClientWorkload) Pid() int {
	c.Lock()
	defer c.Unlock()
	return c.pid
}

func (c *ClientWorkload) WaitForStartup(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-c.started:
			return true
		default:
			return false
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-c.started:
		return true
	case <-c.done:
		return false
	case <-timer.C:
		return false
	}
}

func (c *ClientWorkload) Done() <-chan struct{} {
	return c.done
}

// Kill the client by its registered pid and kill the launcher.
func (c *ClientWorkload) Shutdown() error {
	select {
	case <-c.done:
		return nil
	default:
	}
	c.Lock()
	c.killed = true
	pid, cmd := c.pid, c.cmd
	c.Unlock()

	var err error
	if pid > 0 {
		err = errors.Wrapf(node.KillPid(pid), "workload: killing client %d", c.id)
	}
	if cmd != nil && cmd.Process != nil {
		if kerr := cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			err = errors.CombineErrors(err, errors.Wrapf(kerr, "workload: killing launcher of client %d", c.id))
		}
	}
	return err
}

// An AttachedClient issues requests from inside a node process.
//
// It is never launched nor killed and reports its results like any other client.
type AttachedClient struct {
	tally
	id   int
	done chan struct{}
}

func NewAttachedClient(id, expected int) *AttachedClient {
	done := make(chan struct{})
	close(done)
	return &AttachedClient{tally: tally{expected: expected}, id: id, done: done}
}

func (c *AttachedClient) Id() int                           { return c.id }
func (c *AttachedClient) Start() error                      { return nil }
func (c *AttachedClient) WaitForStartup(time.Duration) bool { return true }
func (c *AttachedClient) Done() <-chan struct{}             { return c.done }
func (c *AttachedClient) Shutdown() error                   { return nil }
func (c *AttachedClient) Command() []string                 { return nil }

func (c *AttachedClient) NotifyPid(pid int) error {
	return errors.Wrapf(ErrAttachedPid, "client %d, pid %d", c.id, pid)
}
