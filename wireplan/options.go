package wireplan

import "log/slog"

// Option defines an option for the wireplan Manager.
type Option func(m *manager) error

// WithConfigFile provides a config filepath to the manager; the file must exist.
func WithConfigFile(s string) Option {
	return func(m *manager) error {
		m.configPath = s
		m.configRequired = true

		return nil
	}
}

// WithTopologyFile sets the topology file to compile, overriding the config file.
func WithTopologyFile(s string) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.Topology = s })

		return nil
	}
}

// WithOutputFile sets the file the plan is written to, overriding the config file.
func WithOutputFile(s string) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.Output = s })

		return nil
	}
}

// WithBaseNetwork sets the network of the first address block, overriding the config file.
func WithBaseNetwork(s string) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.Addressing.Base = s })

		return nil
	}
}

// WithPrefixLength sets the prefix length of each address block, overriding the config file.
func WithPrefixLength(i int) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.Addressing.PrefixLength = i })

		return nil
	}
}

// WithLiveReload instructs the manager to watch the topology file and recompile the plan when it
// changes.
func WithLiveReload(b bool) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.Watch = b })

		return nil
	}
}

// WithLogLevel sets the log level, overriding the config file. Ignored when WithLogger is used.
func WithLogLevel(s string) Option {
	return func(m *manager) error {
		m.overrides = append(m.overrides, func(c *Config) { c.LogLevel = s })

		return nil
	}
}

// WithLogger provides the logger the manager reports with.
func WithLogger(l *slog.Logger) Option {
	return func(m *manager) error {
		m.logger = l

		return nil
	}
}
