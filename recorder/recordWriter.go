package recorder

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"gofi/event"
)

// The columns of the event log, in order
var Header = []string{
	"event-id",
	"time",
	"server-id",
	"sm-id",
	"state-op-id",
	"state-id",
	"instance-id",
	"op-id",
	"delay",
	"exceptions",
	"grant-delay",
	"grant-exception",
	"injection-id",
}

// Writes events as CSV rows and interns state machine and op names.
//
// Names are given ids in the order they are first seen.
type recordWriter struct {
	csv       *csv.Writer
	startNano int64
	row       []string

	stateMachines *interner
	ops           *interner
}

func newRecordWriter(w io.Writer, startNano int64) *recordWriter {
	return &recordWriter{
		csv:           csv.NewWriter(w),
		startNano:     startNano,
		row:           make([]string, 0, len(Header)),
		stateMachines: newInterner(),
		ops:           newInterner(),
	}
}

func (rw *recordWriter) writeHeader() error {
	return rw.csv.Write(Header)
}

func (rw *recordWriter) write(e event.Event) error {
	rw.row = rw.row[:0]
	rw.Int(int(e.Kind()))
	rw.Int64(e.Nano() - rw.startNano)
	e.Dump(rw)
	for len(rw.row) < len(Header) {
		rw.Empty()
	}
	return rw.csv.Write(rw.row)
}

func (rw *recordWriter) flush() error {
	rw.csv.Flush()
	return rw.csv.Error()
}

func (rw *recordWriter) Int(v int) {
	rw.row = append(rw.row, strconv.Itoa(v))
}

func (rw *recordWriter) Int64(v int64) {
	rw.row = append(rw.row, strconv.FormatInt(v, 10))
}

func (rw *recordWriter) Empty() {
	rw.row = append(rw.row, "")
}

// Exception ids are joined by |
func (rw *recordWriter) Exceptions(ids []int) {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	rw.row = append(rw.row, strings.Join(s, "|"))
}

func (rw *recordWriter) StateMachine(name string) int {
	id := rw.stateMachines.id(name)
	rw.Int(id)
	return id
}

func (rw *recordWriter) Op(name string) int {
	id := rw.ops.id(name)
	rw.Int(id)
	return id
}

type interner struct {
	ids   map[string]int
	names []string
}

func newInterner() *interner {
	return &interner{ids: map[string]int{}, names: []string{}}
}

func (in *interner) id(name string) int {
	if id, ok := in.ids[name]; ok {
		return id
	}
	id := len(in.names)
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}
