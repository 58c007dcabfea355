package wireplan

const (
	// Version is the version of wireplan, set w/ build flags in ci; only useful/relevant for cli.
	Version = "0.0.0"
)

const (
	// ConfigFile is the default wireplan configuration file name.
	ConfigFile = "wireplan.yaml"

	// TopologyFile is the default topology file the compile command reads.
	TopologyFile = "topology.yaml"

	// OutputFile is the default path the compiled plan is written to.
	OutputFile = "plan.yaml"

	// BaseNetwork is the default first network handed out by the address planner.
	BaseNetwork = "10.1.1.0"

	// PrefixLength is the default prefix length of each per-switch address block.
	PrefixLength = 24

	// LogLevel is the default log level.
	LogLevel = "info"
)

const (
	// MaxSwitches is the largest switch count a topology may declare.
	MaxSwitches = 1 << 20
)

const (
	terminalLabelPrefix = "t"
	switchLabelPrefix   = "s"

	hexAddressWidth = 8

	// network and broadcast addresses are never handed to a terminal.
	reservedHostsPerBlock = 2
)
