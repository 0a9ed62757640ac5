package trial

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"

	"gofi/metrics"
	"gofi/orchestrator"
)

var (
	ErrTooManyRetries = errors.New("trial: too many retries")
	ErrStopOnFail     = errors.New("trial: stopping on first failure")
)

// The part of the control plane driven by the trial loop
type Host interface {
	HasNextTrial() bool
	// Start a trial. The trial id is only incremented when incrementId is true.
	SetupNewTrial(incrementId bool)
	TrialId() int
	InitStats()
	DumpStats() error
	OnTrialStopped()
}

// One attempt of a trial
type Trial struct {
	Id               int
	RetryCountThisId int
	// Retries of the experiment before this attempt
	TotalRetriesAcrossIds int
}

type Config struct {
	TrialTimeout time.Duration
	Cooldown     time.Duration
	// 0 means no retry, -1 retries without limit
	FailTrialRetries int
	// 0 means no retry, -1 retries without limit
	MaxTotalRetries int
	StopOnFail      bool
}

// Builds the orchestrator of the current trial
type Factory func() (orchestrator.Orchestrator, error)

// The Runner repeats trials until the controller has no next trial or a retry budget is exhausted.
type Runner struct {
	host    Host
	build   Factory
	cfg     Config
	logger  *log.Logger
	metrics *metrics.Metrics

	sleep func(ctx context.Context, d time.Duration) error

	mu       sync.Mutex
	attempts []Trial
}

// Create a new Runner. logger and m may be nil.
func NewRunner(host Host, build Factory, cfg Config, logger *log.Logger, m *metrics.Metrics) *Runner {
	if logger == nil {
		logger = log.New(os.Stderr, "Runner: ", log.LstdFlags)
	}
	return &Runner{
		host:    host,
		build:   build,
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		sleep:   sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every attempt made so far. Safe to call while Run is in progress.
func (r *Runner) Attempts() []Trial {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Trial{}, r.attempts...)
}

func (r *Runner) logf(ctx context.Context, format string, args ...interface{}) {
	var buf strings.Builder
	if tags := logtags.FromContext(ctx); tags != nil {
		buf.WriteByte('[')
		tags.FormatToString(&buf)
		buf.WriteString("] ")
	}
	fmt.Fprintf(&buf, format, args...)
	r.logger.Print(buf.String())
}

// Run trials until there is no next trial, ctx is cancelled or a retry budget is exhausted.
//
// A failed attempt is retried with the same trial id. Returns an error wrapping
// ErrTooManyRetries or ErrStopOnFail when the experiment is stopped early.
func (r *Runner) Run(ctx context.Context) error {
	totalRetries := 0
	for ctx.Err() == nil && r.host.HasNextTrial() {
		retries := 0
		for {
			r.host.SetupNewTrial(retries == 0)
			t := Trial{Id: r.host.TrialId(), RetryCountThisId: retries, TotalRetriesAcrossIds: totalRetries}
			r.mu.Lock()
			r.attempts = append(r.attempts, t)
			r.mu.Unlock()

			tctx := logtags.AddTag(ctx, "trial", t.Id)
			if retries > 0 {
				tctx = logtags.AddTag(tctx, "retry", retries)
				r.logf(tctx, "Starting trial %d - retry %d, experiment retry %d", t.Id, retries, totalRetries)
			} else {
				r.logf(tctx, "Starting trial %d", t.Id)
			}

			err := r.attempt(tctx)
			if err == nil {
				if err := r.host.DumpStats(); err != nil {
					r.logf(tctx, "Warning: failed to dump the event log: %v", err)
				}
				r.host.OnTrialStopped()
				if err := r.sleep(ctx, r.cfg.Cooldown); err != nil {
					return nil
				}
				break
			}

			r.logf(tctx, "Error: trial %d failed: %+v", t.Id, err)
			r.host.OnTrialStopped()
			if r.cfg.StopOnFail {
				return errors.Wrapf(ErrStopOnFail, "trial %d: %v", t.Id, err)
			}
			retries++
			if exhausted(r.cfg.FailTrialRetries, retries) {
				r.logf(tctx, "Error: failed trial %d after %d retries", t.Id, retries-1)
				return errors.Wrapf(ErrTooManyRetries, "trial %d failed %d times", t.Id, retries)
			}
			totalRetries++
			if r.metrics != nil {
				r.metrics.Retries.Inc()
			}
			if exhausted(r.cfg.MaxTotalRetries, totalRetries) {
				r.logf(tctx, "Error: too many (%d) experiment retries. Stopping experiment", totalRetries-1)
				return errors.Wrapf(ErrTooManyRetries, "%d experiment retries", totalRetries-1)
			}
			if ctx.Err() != nil {
				return nil
			}
		}
	}
	return nil
}

// Whether count exceeds budget. 0 allows nothing and -1 allows everything.
func exhausted(budget, count int) bool {
	return budget == 0 || (budget > 0 && count > budget)
}

// Run one attempt of the current trial. Panics are returned as errors.
func (r *Runner) attempt(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Newf("trial: panic: %v", p)
		}
	}()

	endTime := time.Now().Add(r.cfg.TrialTimeout)
	r.host.InitStats()
	orch, err := r.build()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := orch.Close(); cerr != nil {
			r.logf(ctx, "Warning: failed to tear down the ensemble: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	if err := orch.StartEnsemble(ctx, endTime); err != nil {
		return err
	}
	for orch.HasNextWorkload() && time.Now().Before(endTime) {
		finished, err := orch.RunNextWorkload(endTime)
		if err != nil {
			return err
		}
		if !finished {
			break
		}
	}
	orch.ReportResult()
	return nil
}
