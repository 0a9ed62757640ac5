package recorder

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"gofi/event"
)

func stateEvent(sm, state string) event.Event {
	return event.NewThreadStateEvent(1, "main", 5, sm, event.NewAbstractState(state, 2))
}

func TestInterningFirstSeenOrder(t *testing.T) {
	s := NewStats(true)
	s.Init([]string{"java.io.IOException"})
	s.Record(stateEvent("A", "x"))
	s.Record(stateEvent("B", "y"))
	s.Record(stateEvent("A", "x"))

	csvOut, jsonOut := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, s.Dump(csvOut, jsonOut, Meta{TargetSystem: "zk", TrialId: 3}))

	sidecar := gjson.Parse(jsonOut.String())
	var sms []string
	for _, v := range sidecar.Get("state_machines").Array() {
		sms = append(sms, v.String())
	}
	if diff := cmp.Diff([]string{"A", "B"}, sms); diff != "" {
		t.Errorf("Wrong state machines (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(3), sidecar.Get("trial_id").Int())
	assert.Equal(t, "zk", sidecar.Get("target_system").String())
	assert.Equal(t, "java.io.IOException", sidecar.Get("exceptions.0").String())

	rows, err := csv.NewReader(csvOut).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Header, rows[0])
	smColumn := []string{rows[1][3], rows[2][3], rows[3][3]}
	assert.Equal(t, []string{"0", "1", "0"}, smColumn)
}

func TestRowLayout(t *testing.T) {
	s := NewStats(true)
	s.Init(nil)
	req := event.NewThreadInjectionRequest(event.InjectionQuery{
		ServerId:       2,
		Location:       event.InjectionLocation{Op: "write"},
		DelayRequested: true,
		ExceptionIds:   []int{1, 4},
	}, 5, "Log", event.NewAbstractState("open", 7))
	s.Record(req)
	s.Record(event.NewThreadInjectionEvent(req, event.InjectionCommand{Delay: 1, ExceptionId: 4, CommandId: 9}))
	s.Record(event.NewStartEvent(2))
	s.Record(event.NewReadyEvent())

	csvOut := &bytes.Buffer{}
	require.NoError(t, s.Dump(csvOut, &bytes.Buffer{}, Meta{}))
	rows, err := csv.NewReader(csvOut).ReadAll()
	require.NoError(t, err)

	// drop the time column
	strip := func(row []string) []string { return append([]string{row[0]}, row[2:]...) }
	expected := [][]string{
		{"1", "2", "0", "0", "7", "5", "1", "1", "1|4", "", "", ""},
		{"2", "2", "0", "0", "7", "5", "1", "1", "1|4", "1", "4", "9"},
		{"3", "2", "", "", "", "", "", "", "", "", "", ""},
		{"5", "", "", "", "", "", "", "", "", "", "", ""},
	}
	for i, row := range rows[1:] {
		if diff := cmp.Diff(expected[i], strip(row)); diff != "" {
			t.Errorf("Row %v (-want +got):\n%s", i, diff)
		}
	}
}

func TestRecordStatesDisabled(t *testing.T) {
	s := NewStats(false)
	s.Init(nil)
	s.Record(stateEvent("A", "x"))
	assert.Equal(t, 0, s.Len())

	dir := filepath.Join(t.TempDir(), "trials", "0")
	require.NoError(t, s.DumpToDir(dir, Meta{}))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestDumpToDir(t *testing.T) {
	s := NewStats(true)
	s.Init(nil)
	s.Record(stateEvent("A", "x"))
	dir := filepath.Join(t.TempDir(), "trials", "1")
	require.NoError(t, s.DumpToDir(dir, Meta{ExperimentId: "exp"}))

	data, err := os.ReadFile(filepath.Join(dir, CsvFileName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))

	data, err = os.ReadFile(filepath.Join(dir, JsonFileName))
	require.NoError(t, err)
	assert.Equal(t, "exp", gjson.GetBytes(data, "experiment_id").String())
	assert.Equal(t, "ready", gjson.GetBytes(data, "event_kinds.5").String())
}

func TestInitClearsEvents(t *testing.T) {
	s := NewStats(true)
	s.Init(nil)
	s.Record(stateEvent("A", "x"))
	s.Init(nil)
	assert.Equal(t, 0, s.Len())
}
