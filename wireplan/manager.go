package wireplan

import (
	"context"
	"log/slog"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/carlmontanari/wireplan/logging"
)

// Manager is an interface representing the compile manager's methods.
type Manager interface {
	// Run compiles the configured topology and writes the plan. In watch mode it keeps running,
	// recompiling on topology changes, until SIGINT/SIGTERM.
	Run() error
}

type manager struct {
	configPath     string
	configRequired bool
	overrides      []func(c *Config)

	config       *Config
	base         AddressBase
	topologyPath string

	logger *slog.Logger

	// topology and plan of the last successful compile
	topology *Topology
	plan     *Plan

	watchReady     chan struct{}
	watchReadyOnce sync.Once

	// topology updates handled by the watch, successful or not
	reloads atomic.Int64
}

// NewManager returns a Manager for the given options. The config file (wireplan.yaml unless
// WithConfigFile says otherwise) is read first, then options override its values.
func NewManager(opts ...Option) (Manager, error) {
	m, err := newManager(opts...)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func newManager(opts ...Option) (*manager, error) {
	m := &manager{
		configPath: ConfigFile,
		watchReady: make(chan struct{}),
	}

	for _, opt := range opts {
		err := opt(m)
		if err != nil {
			return nil, err
		}
	}

	config, err := LoadConfig(m.configPath, m.configRequired)
	if err != nil {
		return nil, err
	}

	for _, override := range m.overrides {
		override(config)
	}

	if m.logger == nil {
		m.logger = logging.New(config.LogLevel)
	}

	err = config.validate()
	if err != nil {
		m.logger.Error("invalid configuration", "err", err)

		return nil, err
	}

	m.config = config

	m.base, err = config.AddressBase()
	if err != nil {
		return nil, err
	}

	m.topologyPath, err = filepath.Abs(config.Topology)
	if err != nil {
		m.logger.Error("failed determining absolute path to topology", "err", err)

		return nil, err
	}

	return m, nil
}

// Run compiles the topology once and, in watch mode, keeps recompiling on changes.
func (m *manager) Run() error {
	m.logger.Info(
		"manager run started, compiling topology...",
		"topology", m.topologyPath,
		"base", m.base.String(),
	)

	topology, err := m.load()
	if err != nil {
		return err
	}

	err = m.compile(topology)
	if err != nil {
		return err
	}

	if !m.config.Watch {
		return nil
	}

	ctx, cancel := SignalHandledContext(context.Background(), m.logger)
	defer cancel()

	return m.watchTopology(ctx)
}

func (m *manager) load() (*Topology, error) {
	topology, err := LoadTopology(m.topologyPath)
	if err != nil {
		m.logger.Error("failed loading topology", "err", err)

		return nil, err
	}

	return topology, nil
}

// compile builds a new plan from topology and writes it out. The previous plan is only replaced
// once the new one is written.
func (m *manager) compile(topology *Topology) error {
	plan, err := Compile(topology, m.base)
	if err != nil {
		m.logger.Error("failed compiling topology", "err", err)

		return err
	}

	for _, line := range plan.Summary() {
		m.logger.Debug(line)
	}

	err = plan.View().WriteToFile(m.config.Output)
	if err != nil {
		m.logger.Error("failed writing plan", "output", m.config.Output, "err", err)

		return err
	}

	m.topology = topology
	m.plan = plan

	m.logger.Info(
		"plan written",
		"output", m.config.Output,
		"switches", topology.SwitchCount(),
		"terminals", topology.TerminalCount(),
		"blocks", len(plan.blocks),
	)

	return nil
}

// reloadTopology recompiles after a topology change. A bad edit is logged and the last good
// plan stays in place.
func (m *manager) reloadTopology() {
	defer m.reloads.Add(1)

	m.logger.Info("processing topology update...")

	topology, err := m.load()
	if err != nil {
		return
	}

	if topologiesEqual(m.topology, topology) {
		m.logger.Info("previous and current parsed topology are equal, nothing to do...")

		return
	}

	m.logger.Info("topology has changes, recompiling plan...")

	_ = m.compile(topology)
}

func topologiesEqual(existing, updated *Topology) bool {
	if existing == nil || updated == nil {
		return existing == updated
	}

	return reflect.DeepEqual(existing, updated)
}
