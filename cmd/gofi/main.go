package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"gofi"
	"gofi/config"
	"gofi/exceptionTable"
	"gofi/trial"
)

const (
	ExitSuccess      = 0
	ExitStoppedEarly = 1
	ExitError        = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, trial.ErrTooManyRetries), errors.Is(err, trial.ErrStopOnFail):
		fmt.Fprintf(stderr, "experiment stopped: %v\n", err)
		return ExitStoppedEarly
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gofi",
		Short:         "run fault injection experiments against a distributed system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCmd(stderr), newExceptionsCmd(stdout, stderr))
	return root
}

// Values of the run flags. Only flags set on the command line override the file.
type runFlags struct {
	configPath   string
	workspace    string
	experimentId string
	maxTrials    int
	trialTimeout time.Duration
	policy       string
	injection    string
	controller   string
	mode         string
	metricsAddr  string
	stopOnFail   bool
}

func newRunCmd(stderr io.Writer) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the trials of an experiment file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			exp, err := gofi.PrepareExperiment(cfg, gofi.WithLogger(log.New(stderr, "", log.LstdFlags)))
			if err != nil {
				return err
			}
			return exp.Run(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "path to the YAML experiment file (required)")
	flags.StringVar(&f.workspace, "workspace", "", "directory holding the trial directories")
	flags.StringVar(&f.experimentId, "experiment-id", "", "id written into every trial's metadata")
	flags.IntVar(&f.maxTrials, "max-trials", config.DefaultMaxTrials, "number of trials, 0 runs until stopped")
	flags.DurationVar(&f.trialTimeout, "trial-timeout", config.DefaultTrialTimeout, "time budget of one trial")
	flags.StringVar(&f.policy, "policy", "", "name of the injection policy")
	flags.StringVar(&f.injection, "injection-type", "", "all, exception or delay")
	flags.StringVar(&f.controller, "controller", "", "default or debug")
	flags.StringVar(&f.mode, "mode", "", "default, meta or fate")
	flags.StringVar(&f.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	flags.BoolVar(&f.stopOnFail, "stop-on-fail", false, "stop the experiment at the first failed trial")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func loadConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	data, err := os.ReadFile(f.configPath)
	if err != nil {
		return config.Config{}, errors.Wrap(err, "reading config file")
	}
	cfg, err := config.Decode(data)
	if err != nil {
		return config.Config{}, err
	}
	changed := cmd.Flags().Changed
	if changed("workspace") {
		cfg.Workspace = f.workspace
	}
	if changed("experiment-id") {
		cfg.ExperimentId = f.experimentId
	}
	if changed("max-trials") {
		cfg.MaxTrials = f.maxTrials
	}
	if changed("trial-timeout") {
		cfg.TrialTimeout = f.trialTimeout
	}
	if changed("policy") {
		cfg.InjectionPolicy = f.policy
	}
	if changed("injection-type") {
		cfg.InjectionType = f.injection
	}
	if changed("controller") {
		cfg.InjectionController = f.controller
	}
	if changed("mode") {
		cfg.Mode = f.mode
	}
	if changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if changed("stop-on-fail") {
		cfg.StopOnFail = f.stopOnFail
	}
	return cfg, cfg.Validate()
}

func newExceptionsCmd(stdout, stderr io.Writer) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "exceptions",
		Short: "print the exception table handed to starting nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := exceptionTable.Load(file, log.New(stderr, "", 0))
			if err != nil {
				return err
			}
			for id, name := range table.Names() {
				fmt.Fprintf(stdout, "%d\t%s\n", id, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "exception table file, the built-in table if empty")
	return cmd
}
