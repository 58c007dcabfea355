package wireplan

// LinkKind is the shape of a link, resolved once from its endpoint kinds.
type LinkKind int

const (
	// LinkKindInvalid is any kind pair that can not be wired (terminal/terminal, unknown kinds).
	LinkKindInvalid LinkKind = iota
	// LinkKindTerminalSwitch is a link declared from a terminal to a switch.
	LinkKindTerminalSwitch
	// LinkKindSwitchTerminal is a link declared from a switch to a terminal.
	LinkKindSwitchTerminal
	// LinkKindSwitchSwitch is a link between two switches.
	LinkKindSwitchSwitch
)

func (k LinkKind) String() string {
	switch k {
	case LinkKindTerminalSwitch:
		return "terminal-switch"
	case LinkKindSwitchTerminal:
		return "switch-terminal"
	case LinkKindSwitchSwitch:
		return "switch-switch"
	default:
		return "invalid"
	}
}

type kindPair struct {
	from, to EndpointKind
}

var linkKinds = map[kindPair]LinkKind{ //nolint:gochecknoglobals
	{KindTerminal, KindSwitch}: LinkKindTerminalSwitch,
	{KindSwitch, KindTerminal}: LinkKindSwitchTerminal,
	{KindSwitch, KindSwitch}:   LinkKindSwitchSwitch,
}

// Classify returns the LinkKind of the given link.
func Classify(l LinkRecord) LinkKind {
	k, ok := linkKinds[kindPair{from: l.From.Kind, to: l.To.Kind}]
	if !ok {
		return LinkKindInvalid
	}

	return k
}

// switchSide returns the switch endpoint of a terminal bearing link.
func (k LinkKind) switchSide(l LinkRecord) Endpoint {
	if k == LinkKindSwitchTerminal {
		return l.From
	}

	return l.To
}
