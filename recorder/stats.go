package recorder

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"

	"gofi/event"
)

const (
	CsvFileName  = "orch.csv"
	JsonFileName = "orch.json"
)

// Metadata written into the JSON sidecar of a trial.
type Meta struct {
	ExperimentId string
	TargetSystem string
	TrialId      int
}

type sidecar struct {
	ExperimentId  string   `json:"experiment_id"`
	TargetSystem  string   `json:"target_system"`
	TrialId       int      `json:"trial_id"`
	StartTime     int64    `json:"start_time"`
	Exceptions    []string `json:"exceptions"`
	EventKinds    []string `json:"event_kinds"`
	StateMachines []string `json:"state_machines"`
	Ops           []string `json:"ops"`
}

// Stats is the event log of one trial.
//
// Events are appended in the order they are recorded. Stats is safe for concurrent use.
type Stats struct {
	sync.Mutex

	recordStates   bool
	startNano      int64
	events         []event.Event
	exceptionNames []string
}

// Create a new Stats. If recordStates is false nothing is recorded.
func NewStats(recordStates bool) *Stats {
	return &Stats{
		recordStates: recordStates,
		startNano:    event.Now(),
	}
}

// Clear the log and restart the clock. Times in the dump are relative to the last call to Init.
func (s *Stats) Init(exceptionNames []string) {
	s.Lock()
	defer s.Unlock()
	s.exceptionNames = exceptionNames
	s.events = nil
	s.startNano = event.Now()
}

// Append an event to the log.
func (s *Stats) Record(e event.Event) {
	s.Lock()
	defer s.Unlock()
	if s.recordStates {
		s.events = append(s.events, e)
	}
}

func (s *Stats) RecordStates() bool {
	return s.recordStates
}

// A copy of the recorded events.
func (s *Stats) Events() []event.Event {
	s.Lock()
	defer s.Unlock()
	events := make([]event.Event, len(s.events))
	copy(events, s.events)
	return events
}

func (s *Stats) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.events)
}

// Write the events as CSV to csvOut and the sidecar as JSON to jsonOut.
func (s *Stats) Dump(csvOut, jsonOut io.Writer, meta Meta) error {
	s.Lock()
	defer s.Unlock()

	rw := newRecordWriter(csvOut, s.startNano)
	if err := rw.writeHeader(); err != nil {
		return errors.Wrap(err, "recorder: writing header")
	}
	for _, e := range s.events {
		if err := rw.write(e); err != nil {
			return errors.Wrapf(err, "recorder: writing %v", e.Kind())
		}
	}
	if err := rw.flush(); err != nil {
		return errors.Wrap(err, "recorder: flushing csv")
	}

	exceptions := s.exceptionNames
	if exceptions == nil {
		exceptions = []string{}
	}
	enc := json.NewEncoder(jsonOut)
	err := enc.Encode(sidecar{
		ExperimentId:  meta.ExperimentId,
		TargetSystem:  meta.TargetSystem,
		TrialId:       meta.TrialId,
		StartTime:     s.startNano,
		Exceptions:    exceptions,
		EventKinds:    event.KindNames(),
		StateMachines: rw.stateMachines.names,
		Ops:           rw.ops.names,
	})
	return errors.Wrap(err, "recorder: writing json")
}

// Dump the log into orch.csv and orch.json in dir. The directory is created if needed.
//
// Does nothing when states are not recorded.
func (s *Stats) DumpToDir(dir string, meta Meta) (err error) {
	if !s.recordStates {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "recorder: creating %v", dir)
	}
	csvFile, err := os.Create(filepath.Join(dir, CsvFileName))
	if err != nil {
		return errors.Wrap(err, "recorder: creating csv")
	}
	defer func() { err = errors.CombineErrors(err, csvFile.Close()) }()
	jsonFile, err := os.Create(filepath.Join(dir, JsonFileName))
	if err != nil {
		return errors.Wrap(err, "recorder: creating json")
	}
	defer func() { err = errors.CombineErrors(err, jsonFile.Close()) }()

	csvBuf := bufio.NewWriter(csvFile)
	jsonBuf := bufio.NewWriter(jsonFile)
	if err := s.Dump(csvBuf, jsonBuf, meta); err != nil {
		return err
	}
	return errors.CombineErrors(csvBuf.Flush(), jsonBuf.Flush())
}
