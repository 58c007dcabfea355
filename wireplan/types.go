package wireplan

import "fmt"

// EndpointKind is the declared kind of one side of a link.
type EndpointKind string

const (
	// KindTerminal is an end host with exactly one attachment point.
	KindTerminal EndpointKind = "terminal"
	// KindSwitch is a multi-port forwarding node.
	KindSwitch EndpointKind = "switch"
)

// SwitchIndex is the zero-based, dense identifier of a switch.
type SwitchIndex int

// TerminalIndex is the zero-based, dense identifier of a terminal.
type TerminalIndex int

// Endpoint is one side of a declared link. Index is only consulted when Kind is KindSwitch;
// terminal identities are issued in link order by the resolver.
type Endpoint struct {
	Kind  EndpointKind `json:"kind"            yaml:"kind"`
	Index int          `json:"index,omitempty" yaml:"index,omitempty"`
}

func (e Endpoint) String() string {
	if e.Kind == KindSwitch {
		return fmt.Sprintf("%s:%d", e.Kind, e.Index)
	}

	return string(e.Kind)
}

// LinkRecord is one declared point-to-point connection.
type LinkRecord struct {
	From Endpoint `json:"from" yaml:"from"`
	To   Endpoint `json:"to"   yaml:"to"`
}

func (l LinkRecord) String() string {
	return fmt.Sprintf("%s -- %s", l.From, l.To)
}

// hasTerminal reports whether either side of the link is declared as a terminal.
func (l LinkRecord) hasTerminal() bool {
	return l.From.Kind == KindTerminal || l.To.Kind == KindTerminal
}
