package wireplan

import (
	"fmt"
)

// PeerKind says what a switch port is connected to.
type PeerKind int

const (
	// PeerTerminal is a port cabled to a terminal.
	PeerTerminal PeerKind = iota
	// PeerSwitch is a port cabled to a port on another switch.
	PeerSwitch
)

// Peer describes the far side of a switch port. Terminal is set for PeerTerminal, Switch and
// Port for PeerSwitch.
type Peer struct {
	Kind     PeerKind
	Terminal TerminalIndex
	Switch   SwitchIndex
	Port     int
}

func terminalPeer(t TerminalIndex) Peer {
	return Peer{Kind: PeerTerminal, Terminal: t}
}

func switchPeer(s SwitchIndex, port int) Peer {
	return Peer{Kind: PeerSwitch, Switch: s, Port: port}
}

// PortBinding is one port of one switch. Port is its position in the switch's port list and is
// never renumbered once assigned.
type PortBinding struct {
	Port int
	Peer Peer
}

// Label renders the binding the way flow table consumers name ports -- "t<terminal>" for
// terminal ports, "s<peer switch>_<peer port>" for switch ports.
func (b PortBinding) Label() string {
	if b.Peer.Kind == PeerSwitch {
		return fmt.Sprintf("%s%d_%d", switchLabelPrefix, b.Peer.Switch, b.Peer.Port)
	}

	return fmt.Sprintf("%s%d", terminalLabelPrefix, b.Peer.Terminal)
}

// SwitchPorts is the ordered port list of a single switch.
type SwitchPorts struct {
	Bindings []PortBinding

	// running count of terminal bindings, the ordinal of the last attached terminal
	terminals int
}

// add appends a binding at the next free port and returns that port number.
func (sp *SwitchPorts) add(peer Peer) int {
	port := len(sp.Bindings)

	sp.Bindings = append(sp.Bindings, PortBinding{Port: port, Peer: peer})

	if peer.Kind == PeerTerminal {
		sp.terminals++
	}

	return port
}

// TerminalCount returns the number of ports on the switch that are cabled to terminals.
func (sp SwitchPorts) TerminalCount() int {
	var n int

	for _, binding := range sp.Bindings {
		if binding.Peer.Kind == PeerTerminal {
			n++
		}
	}

	return n
}

// Labels returns the port labels of the switch in port order.
func (sp SwitchPorts) Labels() []string {
	labels := make([]string, len(sp.Bindings))

	for idx, binding := range sp.Bindings {
		labels[idx] = binding.Label()
	}

	return labels
}

// SwitchPortTable maps a SwitchIndex (the slice position) to that switch's ports.
type SwitchPortTable []SwitchPorts

func (t SwitchPortTable) clone() SwitchPortTable {
	out := make(SwitchPortTable, len(t))

	for idx, sp := range t {
		out[idx] = SwitchPorts{
			Bindings:  append([]PortBinding(nil), sp.Bindings...),
			terminals: sp.terminals,
		}
	}

	return out
}

// TerminalAttachment is where a terminal is cabled: the switch, the port on that switch, and
// the terminal's 1-based ordinal among the terminals attached to that switch.
type TerminalAttachment struct {
	Switch  SwitchIndex
	Port    int
	Ordinal int
}
