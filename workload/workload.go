package workload

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownClient    = errors.New("workload: unknown client")
	ErrClientsNotJoined = errors.New("workload: clients did not exit after being killed")
)

const (
	// Extra time given to clients to register beyond the end of the phase
	startupGrace = 10 * time.Millisecond
	// How long Run waits for killed clients to exit
	DefaultJoinTimeout = 5 * time.Second
)

// A Workload is one phase of a trial: a set of clients run together until they
// finish or the phase deadline passes.
//
// It receives the handshakes and results of its clients while it is the
// current workload of the orchestrator service.
type Workload struct {
	sync.Mutex

	name        string
	logger      *log.Logger
	clients     map[int]Client
	injected    func() bool
	joinTimeout time.Duration
}

func New(name string, logger *log.Logger) *Workload {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Workload{
		name:        name,
		logger:      log.New(logger.Writer(), fmt.Sprintf("Workload %v: ", name), logger.Flags()),
		clients:     make(map[int]Client),
		injected:    func() bool { return false },
		joinTimeout: DefaultJoinTimeout,
	}
}

func (w *Workload) Name() string { return w.name }

// Add a client to the workload. A client with the same id is replaced.
func (w *Workload) Add(c Client) {
	w.Lock()
	defer w.Unlock()
	w.clients[c.Id()] = c
}

// Set the function reporting whether some node has been injected.
// It marks the requests completed from then on.
func (w *Workload) SetInjectionProbe(f func() bool) {
	w.Lock()
	defer w.Unlock()
	w.injected = f
}

// The clients ordered by id
func (w *Workload) Clients() []Client {
	w.Lock()
	defer w.Unlock()
	ids := maps.Keys(w.clients)
	slices.Sort(ids)
	clients := make([]Client, 0, len(ids))
	for _, id := range ids {
		clients = append(clients, w.clients[id])
	}
	return clients
}

func (w *Workload) client(clientId int) (Client, error) {
	w.Lock()
	defer w.Unlock()
	c, ok := w.clients[clientId]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClient, "client %d in workload %v", clientId, w.name)
	}
	return c, nil
}

func (w *Workload) RegisterClient(clientId, pid int) ([]string, error) {
	c, err := w.client(clientId)
	if err != nil {
		return nil, err
	}
	if err := c.NotifyPid(pid); err != nil {
		return nil, err
	}
	return c.Command(), nil
}

func (w *Workload) Send(clientId int, result string, nanos int64) error {
	c, err := w.client(clientId)
	if err != nil {
		return err
	}
	w.Lock()
	injected := w.injected
	w.Unlock()
	c.Proceed(ParseResult(result, nanos, time.Now(), injected()))
	return nil
}

// Run every client until all of them exit or endTime passes, then kill them.
//
// Every client is started and shut down exactly once, also when endTime has already passed.
// The returned error combines the failures to start and to kill clients.
func (w *Workload) Run(endTime time.Time) error {
	clients := w.Clients()
	var err error
	for _, c := range clients {
		err = errors.CombineErrors(err, c.Start())
	}
	for _, c := range clients {
		if !c.WaitForStartup(time.Until(endTime) + startupGrace) {
			w.logger.Printf("Warning: timed out waiting for client %d to start", c.Id())
		}
	}

	merged := make(chan struct{})
	go func() {
		defer close(merged)
		for _, c := range clients {
			<-c.Done()
		}
	}()
	if d := time.Until(endTime); d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-merged:
		case <-timer.C:
			w.logger.Printf("Deadline reached before all clients finished")
		}
		timer.Stop()
	}

	for _, c := range clients {
		err = errors.CombineErrors(err, c.Shutdown())
	}
	timer := time.NewTimer(w.joinTimeout)
	defer timer.Stop()
	select {
	case <-merged:
	case <-timer.C:
		err = errors.CombineErrors(err, errors.Wrapf(ErrClientsNotJoined, "workload %v", w.name))
	}
	return err
}

func (w *Workload) IsFinished() bool {
	for _, c := range w.Clients() {
		if !c.IsFinished() {
			return false
		}
	}
	return true
}

// The progress of every client, ordered by client id
func (w *Workload) Results() []string {
	var results []string
	for _, c := range w.Clients() {
		results = append(results, c.Result())
	}
	return results
}

func (w *Workload) ReportResult(phase int) {
	w.logger.Printf("Phase %d - %v: [%v]", phase, w.name, strings.Join(w.Results(), ", "))
}
