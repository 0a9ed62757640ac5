package node

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/process"
)

var ErrPidTimeout = errors.New("node: did not receive the pid of the node process")

const (
	DefaultPidTimeout         = 5 * time.Second
	DefaultMonitorJoinTimeout = 2 * time.Second
)

// The part of the control plane a node talks to while it starts and stops.
type Host interface {
	// Arm the pid handoff for the server and reset its abstract state.
	PrepareNodeStart(serverId int)
	// Wait for the started process to report its pid.
	RecentPid(timeout time.Duration) (int, bool)
	SetStart(serverId int)
	SetShutdown(serverId int)
}

type Status int

const (
	Halt Status = iota
	Started
	Active
)

func (s Status) String() string {
	switch s {
	case Started:
		return "started"
	case Active:
		return "active"
	}
	return "halt"
}

// Configuration of a ServerNode
type Config struct {
	Workspace   string
	InitDataDir string
	TrialDir    string

	TrialId    int
	ServerId   int
	InstanceId int

	UseLogMonitor      bool
	PidTimeout         time.Duration
	MonitorJoinTimeout time.Duration

	Logger *log.Logger
}

// A ServerNode is one process of the target ensemble in one trial.
//
// Its status moves from Halt to Started when the process has reported its pid,
// to Active when the log monitor sees the ready line, and back to Halt on Shutdown.
type ServerNode struct {
	sync.Mutex

	host    Host
	profile Profile
	logger  *log.Logger

	workspace   string
	initDataDir string
	trialDir    string

	trialId    int
	serverId   int
	instanceId int

	useLogMonitor      bool
	pidTimeout         time.Duration
	monitorJoinTimeout time.Duration

	status   Status
	started  bool
	pid      int
	launcher *exec.Cmd
	monitor  *LogMonitor

	injected   atomic.Bool
	active     chan struct{}
	activeOnce sync.Once
}

func NewServerNode(host Host, profile Profile, cfg Config) *ServerNode {
	if profile.StartCommand == nil {
		profile.StartCommand = defaultStartCommand
	}
	if profile.IsActiveLine == nil {
		profile.IsActiveLine = func(string) bool { return false }
	}
	if cfg.PidTimeout <= 0 {
		cfg.PidTimeout = DefaultPidTimeout
	}
	if cfg.MonitorJoinTimeout <= 0 {
		cfg.MonitorJoinTimeout = DefaultMonitorJoinTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &ServerNode{
		host:    host,
		profile: profile,
		logger:  log.New(cfg.Logger.Writer(), fmt.Sprintf("ServerNode %d: ", cfg.ServerId), cfg.Logger.Flags()),

		workspace:   cfg.Workspace,
		initDataDir: cfg.InitDataDir,
		trialDir:    cfg.TrialDir,

		trialId:    cfg.TrialId,
		serverId:   cfg.ServerId,
		instanceId: cfg.InstanceId,

		useLogMonitor:      cfg.UseLogMonitor,
		pidTimeout:         cfg.PidTimeout,
		monitorJoinTimeout: cfg.MonitorJoinTimeout,

		pid:    -1,
		active: make(chan struct{}),
	}
}

func (n *ServerNode) ServerId() int   { return n.serverId }
func (n *ServerNode) InstanceId() int { return n.instanceId }
func (n *ServerNode) TrialId() int    { return n.trialId }
func (n *ServerNode) Workspace() string {
	return n.workspace
}

func (n *ServerNode) LogDir() string {
	return filepath.Join(n.trialDir, "logs-"+strconv.Itoa(n.instanceId))
}

func (n *ServerNode) LogFile() string {
	return filepath.Join(n.LogDir(), n.profile.LogFileName)
}

func (n *ServerNode) ConfDir() string {
	return filepath.Join(n.workspace, "conf-"+strconv.Itoa(n.serverId))
}

func (n *ServerNode) PersistentDataDir() string {
	return filepath.Join(n.workspace, "store-"+strconv.Itoa(n.serverId), n.profile.DataSubdir)
}

func (n *ServerNode) InitPersistentDataDir() string {
	return filepath.Join(n.initDataDir, "store-"+strconv.Itoa(n.serverId), n.profile.DataSubdir)
}

// Start the node process and wait for it to report its pid.
//
// ctx bounds the lifetime of the log monitor.
// Returns an error wrapping ErrPidTimeout if the process does not report its pid in time.
func (n *ServerNode) Start(ctx context.Context) error {
	// The profile may call back into the node
	argv := n.profile.StartCommand(n)

	n.Lock()
	defer n.Unlock()

	if err := os.MkdirAll(n.LogDir(), 0o755); err != nil {
		return errors.Wrapf(err, "node: creating log directory of server %d", n.serverId)
	}
	out, err := os.Create(filepath.Join(n.LogDir(), "launcher.out"))
	if err != nil {
		return errors.Wrapf(err, "node: creating launcher output of server %d", n.serverId)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = n.workspace
	cmd.Stdout = out
	cmd.Stderr = out

	n.host.PrepareNodeStart(n.serverId)
	if err := cmd.Start(); err != nil {
		out.Close()
		return errors.Wrapf(err, "node: launching server %d with %q", n.serverId, strings.Join(argv, " "))
	}
	n.launcher = cmd
	go func() {
		cmd.Wait()
		out.Close()
	}()

	pid, ok := n.host.RecentPid(n.pidTimeout)
	if !ok {
		killErr := n.killLauncher()
		return errors.CombineErrors(
			errors.Wrapf(ErrPidTimeout, "server %d, the target may not be instrumented", n.serverId),
			killErr,
		)
	}
	n.pid = pid
	n.started = true
	n.setStatus(Started)
	n.logger.Printf("Started instance %d with pid %d", n.instanceId, pid)

	if n.useLogMonitor {
		n.monitor = NewLogMonitor(n.LogFile(), n.handleLine, n.logger)
		n.monitor.Start(ctx)
	}
	n.host.SetStart(n.serverId)
	return nil
}

func (n *ServerNode) handleLine(line string) {
	if strings.Contains(line, InjectionMarker) {
		n.SetInjected()
	}
	if n.profile.IsActiveLine(line) {
		n.SetActive()
	}
}

// Kill the node process and stop the log monitor.
//
// The node is halted even if an error is returned.
func (n *ServerNode) Shutdown() error {
	n.Lock()
	err := n.kill()
	monitor := n.monitor
	n.monitor = nil
	n.Unlock()

	if n.profile.ShutdownExtra != nil {
		err = errors.CombineErrors(err, n.profile.ShutdownExtra(n))
	}

	n.Lock()
	n.host.SetShutdown(n.serverId)
	n.setStatus(Halt)
	n.started = false
	n.Unlock()
	n.logger.Printf("Terminated instance %d", n.instanceId)

	// The monitor may be waiting for the lock in SetActive
	if monitor != nil {
		err = errors.CombineErrors(err, monitor.Stop(n.monitorJoinTimeout))
	}
	return err
}

// Kill the node process, the pid file process and the launcher. Must be called with the lock held.
func (n *ServerNode) kill() error {
	var err error
	if n.pid > 0 {
		err = errors.CombineErrors(err, errors.Wrapf(KillPid(n.pid), "node: killing server %d", n.serverId))
	}
	if n.profile.PidFile != "" {
		err = errors.CombineErrors(err, n.killPidFile())
	}
	return errors.CombineErrors(err, n.killLauncher())
}

func (n *ServerNode) killPidFile() error {
	data, err := os.ReadFile(filepath.Join(n.LogDir(), n.profile.PidFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "node: reading pid file of server %d", n.serverId)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return errors.Wrapf(err, "node: parsing pid file of server %d", n.serverId)
	}
	return errors.Wrapf(KillPid(pid), "node: killing pid file process of server %d", n.serverId)
}

func (n *ServerNode) killLauncher() error {
	if n.launcher == nil || n.launcher.Process == nil {
		return nil
	}
	err := KillPid(n.launcher.Process.Pid)
	n.launcher = nil
	return errors.Wrapf(err, "node: killing launcher of server %d", n.serverId)
}

// Returns true if the node has been started and its process still exists.
func (n *ServerNode) IsAlive() bool {
	n.Lock()
	defer n.Unlock()
	if !n.started || n.pid <= 0 {
		return false
	}
	ok, err := process.PidExists(int32(n.pid))
	return err == nil && ok
}

func (n *ServerNode) Pid() int {
	n.Lock()
	defer n.Unlock()
	return n.pid
}

func (n *ServerNode) Status() Status {
	n.Lock()
	defer n.Unlock()
	return n.status
}

// Must be called with the lock held. The status only changes while the node is started.
func (n *ServerNode) setStatus(s Status) {
	if n.started || s == Started {
		n.status = s
	}
}

func (n *ServerNode) IsInjected() bool {
	return n.injected.Load()
}

func (n *ServerNode) SetInjected() {
	if !n.injected.Swap(true) {
		n.logger.Printf("Instance %d is now injected", n.instanceId)
	}
}

func (n *ServerNode) IsActive() bool {
	select {
	case <-n.active:
		return true
	default:
		return false
	}
}

// Mark the node as ready for clients. Releases every waiter of WaitActive.
func (n *ServerNode) SetActive() {
	n.activeOnce.Do(func() {
		n.Lock()
		n.setStatus(Active)
		n.Unlock()
		close(n.active)
	})
}

// Wait for the node to become active. A timeout <= 0 waits without bound.
func (n *ServerNode) WaitActive(timeout time.Duration) bool {
	if timeout <= 0 {
		<-n.active
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-n.active:
		return true
	case <-timer.C:
		return false
	}
}

// Send SIGKILL to the process. A process that no longer exists is not an error.
func KillPid(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return nil
		}
		return err
	}
	if err := p.Kill(); err != nil {
		if ok, _ := process.PidExists(int32(pid)); !ok {
			return nil
		}
		return err
	}
	return nil
}
