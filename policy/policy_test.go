package policy

import (
	"testing"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"gofi/event"
)

type countingPolicy struct {
	t      InjectionType
	trials int
}

func (p *countingPolicy) Inject(*event.ThreadInjectionRequest) event.InjectionCommand {
	return event.InjectionCommand{CommandId: p.trials}
}

func (p *countingPolicy) SetupNewTrial() { p.trials++ }

var parseTest = []struct {
	in       string
	expected InjectionType
	err      bool
}{
	{"", All, false},
	{"all", All, false},
	{"Exception", Exception, false},
	{"DELAY", Delay, false},
	{"crash", All, true},
}

func TestParseInjectionType(t *testing.T) {
	for i, test := range parseTest {
		got, err := ParseInjectionType(test.in)
		if (err != nil) != test.err {
			t.Errorf("Test %v: Unexpected error value: %v", i, err)
		}
		if got != test.expected {
			t.Errorf("Test %v: Expected: %v. Got: %v", i, test.expected, got)
		}
	}
}

func TestInjectionTypeAllows(t *testing.T) {
	if !All.AllowsDelay() || !All.AllowsException() {
		t.Errorf("All should allow both")
	}
	if Exception.AllowsDelay() || !Exception.AllowsException() {
		t.Errorf("Exception should only allow exceptions")
	}
	if !Delay.AllowsDelay() || Delay.AllowsException() {
		t.Errorf("Delay should only allow delays")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	p, err := r.New("None", All, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Inject(nil) != event.NoInjection {
		t.Errorf("None policy injected")
	}

	r.Register("Counting", func(t InjectionType, params map[string]string) (Policy, error) {
		if params["fail"] == "true" {
			return nil, errors.New("bad params")
		}
		return &countingPolicy{t: t}, nil
	})
	if names := r.Names(); !slices.Equal(names, []string{"Counting", "None"}) {
		t.Errorf("Wrong names. Got: %v", names)
	}
	p, err = r.New("Counting", Delay, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.(*countingPolicy).t != Delay {
		t.Errorf("Injection type not passed to constructor")
	}
	if _, err := r.New("Counting", All, map[string]string{"fail": "true"}); err == nil {
		t.Errorf("Expected constructor error")
	}
	if _, err := r.New("Missing", All, nil); err == nil {
		t.Errorf("Expected error for unknown policy")
	}
}
