package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"gofi/policy"
)

const (
	DefaultMaxTrials        = 2000
	DefaultTrialTimeout     = 60 * time.Second
	DefaultCooldown         = 2 * time.Second
	DefaultFailTrialRetries = 3
	DefaultMaxTotalRetries  = 30
	DefaultPidTimeout       = 5 * time.Second
	DefaultAddress          = ":1099"
	DefaultTargetSystem     = "generic"
)

// Injection controllers
const (
	DefaultController = "default"
	DebugController   = "debug"
)

// Modes of the injection decision service
const (
	DefaultMode  = "default"
	MetaInfoMode = "meta"
	FateMode     = "fate"
)

// Kinds of clients
const (
	ProcessClient  = "process"
	LocalClient    = "local"
	AttachedClient = "attached"
)

// Config describes one experiment
type Config struct {
	// Written into every trial's metadata. A random id is used if empty.
	ExperimentId string `yaml:"experimentId"`
	// Name of the ensemble builder
	TargetSystem    string `yaml:"targetSystem"`
	Workspace       string `yaml:"workspace"`
	TargetSystemDir string `yaml:"targetSystemDir"`
	// major.minor.patch
	Version     string `yaml:"version"`
	InitDataDir string `yaml:"initDataDir"`
	// File listing the exception names. The built-in table is used if empty.
	ExceptionTable string `yaml:"exceptionTable"`

	// 0 runs trials until the experiment is stopped
	MaxTrials    int           `yaml:"maxTrials"`
	TrialTimeout time.Duration `yaml:"trialTimeout"`
	Cooldown     time.Duration `yaml:"cooldown"`
	Warmup       time.Duration `yaml:"warmup"`
	// 0 means no retry, -1 retries without limit
	FailTrialRetries int  `yaml:"failTrialRetries"`
	MaxTotalRetries  int  `yaml:"maxTotalRetries"`
	StopOnFail       bool `yaml:"stopOnFail"`

	UseLogMonitor      bool          `yaml:"useLogMonitor"`
	WaitActiveEnsemble bool          `yaml:"waitActiveEnsemble"`
	PidTimeout         time.Duration `yaml:"pidTimeout"`

	RecordStates  bool `yaml:"recordStates"`
	TraceDecision bool `yaml:"traceDecision"`

	InjectionController string            `yaml:"injectionController"`
	InjectionPolicy     string            `yaml:"injectionPolicy"`
	InjectionType       string            `yaml:"injectionType"`
	PolicyParams        map[string]string `yaml:"policyParams"`
	Mode                string            `yaml:"mode"`

	Ports Ports `yaml:"ports"`
	// Address of the prometheus listener. Disabled if empty.
	MetricsAddr string `yaml:"metricsAddr"`

	Ensemble Ensemble `yaml:"ensemble"`
	Phases   []Phase  `yaml:"phases"`
}

// Listen addresses of the three services. Services sharing an address share a server.
type Ports struct {
	State        string `yaml:"state"`
	Injector     string `yaml:"injector"`
	Orchestrator string `yaml:"orchestrator"`
}

// The nodes of a generic ensemble
type Ensemble struct {
	// Nodes get server and instance ids 1..Nodes
	Nodes   int    `yaml:"nodes"`
	LogFile string `yaml:"logFile"`
	// Regular expression matching the line a node logs once it is ready
	ReadyPattern string `yaml:"readyPattern"`
	// Pid file relative to the log directory of a node
	PidFile    string `yaml:"pidFile"`
	DataSubdir string `yaml:"dataSubdir"`
	// Start command template. {workspace}, {trial}, {server} and {instance} are replaced.
	Command []string `yaml:"command"`
}

// One workload phase
type Phase struct {
	Name    string   `yaml:"name"`
	Clients []Client `yaml:"clients"`
}

type Client struct {
	Kind string `yaml:"kind"`
	// Arguments handed to a process client, or the command run by a local client
	Command  []string `yaml:"command"`
	Expected int      `yaml:"expected"`
	Script   string   `yaml:"script"`
	Args     []string `yaml:"args"`
}

// The configuration used for keys absent from a file
func Default() Config {
	return Config{
		TargetSystem:        DefaultTargetSystem,
		MaxTrials:           DefaultMaxTrials,
		TrialTimeout:        DefaultTrialTimeout,
		Cooldown:            DefaultCooldown,
		FailTrialRetries:    DefaultFailTrialRetries,
		MaxTotalRetries:     DefaultMaxTotalRetries,
		UseLogMonitor:       true,
		PidTimeout:          DefaultPidTimeout,
		RecordStates:        true,
		InjectionController: DefaultController,
		InjectionPolicy:     "None",
		InjectionType:       policy.All.String(),
		Mode:                DefaultMode,
		Ports:               Ports{DefaultAddress, DefaultAddress, DefaultAddress},
		Ensemble:            Ensemble{LogFile: "server.log"},
	}
}

// Read a YAML experiment file on top of the defaults and validate it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Decode YAML on top of the defaults without validating the result.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing config file")
	}
	for i := range cfg.Phases {
		for j := range cfg.Phases[i].Clients {
			if cfg.Phases[i].Clients[j].Kind == "" {
				cfg.Phases[i].Clients[j].Kind = ProcessClient
			}
		}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workspace == "" {
		return errors.New("config: workspace is required")
	}
	if err := isDir(c.Workspace, "workspace"); err != nil {
		return err
	}
	if c.TargetSystemDir != "" {
		if err := isDir(c.TargetSystemDir, "targetSystemDir"); err != nil {
			return err
		}
	}
	if c.InitDataDir != "" {
		if err := isDir(c.InitDataDir, "initDataDir"); err != nil {
			return err
		}
	}
	if c.TargetSystem == "" {
		return errors.New("config: targetSystem is required")
	}
	if c.TrialTimeout <= 0 {
		return errors.Newf("config: trialTimeout must be positive, got %v", c.TrialTimeout)
	}
	if c.FailTrialRetries < -1 || c.MaxTotalRetries < -1 {
		return errors.New("config: retry budgets must be -1 or more")
	}
	if _, err := policy.ParseInjectionType(c.InjectionType); err != nil {
		return errors.Wrap(err, "config")
	}
	switch c.InjectionController {
	case DefaultController, DebugController:
	default:
		return errors.Newf("config: unknown injectionController %q", c.InjectionController)
	}
	switch c.Mode {
	case DefaultMode, MetaInfoMode, FateMode:
	default:
		return errors.Newf("config: unknown mode %q", c.Mode)
	}
	if c.Ensemble.Nodes < 0 {
		return errors.Newf("config: negative number of nodes %d", c.Ensemble.Nodes)
	}
	for i, phase := range c.Phases {
		for j, client := range phase.Clients {
			if err := client.validate(); err != nil {
				return errors.Wrapf(err, "config: client %d of phase %d", j, i)
			}
		}
	}
	return nil
}

func (c Client) validate() error {
	switch c.Kind {
	case ProcessClient, AttachedClient:
		if c.Expected <= 0 {
			return errors.Newf("expected requests must be positive, got %d", c.Expected)
		}
	case LocalClient:
		if len(c.Command) == 0 {
			return errors.New("a local client needs a command")
		}
	default:
		return errors.Newf("unknown kind %q", c.Kind)
	}
	return nil
}

func isDir(path, key string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "config: invalid %v", key)
	}
	if !info.IsDir() {
		return errors.Newf("config: %v %v is not a directory", key, path)
	}
	return nil
}
