package node

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

// Logged by the agent in a target process every time it injects a fault
const InjectionMarker = "gofi agent injecting"

var ErrMonitorJoinTimeout = errors.New("node: log monitor did not stop in time")

const (
	// How often the monitor looks for new lines once it has read to the end of the file
	DefaultPollInterval = 10 * time.Millisecond
	// How long the monitor waits for the log file to be created
	DefaultFileWait  = 13 * time.Second
	fileWaitInterval = 100 * time.Millisecond
)

// A LogMonitor tails a log file that may not exist yet and passes every complete line to a handler.
type LogMonitor struct {
	path     string
	handle   func(line string)
	logger   *log.Logger
	poll     *rate.Limiter
	fileWait time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// Create a new LogMonitor
//
// path is the log file to tail. handle is called from the monitor goroutine for each line, without the line ending.
func NewLogMonitor(path string, handle func(line string), logger *log.Logger) *LogMonitor {
	return &LogMonitor{
		path:     path,
		handle:   handle,
		logger:   logger,
		poll:     rate.NewLimiter(rate.Every(DefaultPollInterval), 1),
		fileWait: DefaultFileWait,
		done:     make(chan struct{}),
	}
}

// Start tailing the file in a new goroutine. The monitor stops when ctx is cancelled or Stop is called.
func (m *LogMonitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	go func() {
		defer close(m.done)
		if err := m.run(ctx); err != nil && ctx.Err() == nil {
			m.logger.Printf("Error: log monitor of %v stopped: %v", m.path, err)
		}
	}()
}

// Stop the monitor and wait up to timeout for it to exit.
//
// If it does not exit in time ErrMonitorJoinTimeout is returned and the goroutine is left to exit on its own.
func (m *LogMonitor) Stop(timeout time.Duration) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-m.done:
		return nil
	case <-timer.C:
		return errors.Wrapf(ErrMonitorJoinTimeout, "monitor of %v", m.path)
	}
}

func (m *LogMonitor) run(ctx context.Context) error {
	f, err := m.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var pending strings.Builder
	for {
		chunk, err := r.ReadString('\n')
		pending.WriteString(chunk)
		if err == io.EOF {
			if err := m.poll.Wait(ctx); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading %v", m.path)
		}
		line := strings.TrimRight(pending.String(), "\r\n")
		pending.Reset()
		m.handle(line)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Wait for the file to be created and open it.
func (m *LogMonitor) open(ctx context.Context) (*os.File, error) {
	wait := rate.NewLimiter(rate.Every(fileWaitInterval), 1)
	deadline := time.Now().Add(m.fileWait)
	for {
		f, err := os.Open(m.path)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) || time.Now().After(deadline) {
			return nil, errors.Wrapf(err, "opening %v", m.path)
		}
		if err := wait.Wait(ctx); err != nil {
			return nil, err
		}
	}
}
