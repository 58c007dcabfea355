package wireplan

import (
	"fmt"
)

// wiring holds the accumulators of one resolution pass. ports is allocated once with one entry
// per switch and never resized.
type wiring struct {
	ports       SwitchPortTable
	attachments []TerminalAttachment
}

func newWiring(terminalCount, switchCount int) *wiring {
	return &wiring{
		ports:       make(SwitchPortTable, switchCount),
		attachments: make([]TerminalAttachment, terminalCount),
	}
}

// Resolve walks links in declaration order and wires every link endpoint to a switch port. It
// returns the per-switch port lists and, for each terminal, where it is attached. Terminal
// identities are handed out in the order terminal bearing links are declared.
//
// Any link that can not be wired aborts the whole resolution; no tables are returned.
func Resolve(
	links []LinkRecord,
	terminalCount, switchCount int,
) (SwitchPortTable, []TerminalAttachment, error) {
	if terminalCount < 0 || switchCount < 0 {
		return nil, nil, fmt.Errorf(
			"%w: negative device counts, terminals %d switches %d",
			ErrStructuralInput, terminalCount, switchCount,
		)
	}

	if switchCount > MaxSwitches {
		return nil, nil, fmt.Errorf(
			"%w: topology has %d switches, at most %d are supported",
			ErrStructuralInput, switchCount, MaxSwitches,
		)
	}

	// every terminal needs its own terminal link
	if terminalCount > len(links) {
		return nil, nil, fmt.Errorf(
			"%w: topology has %d terminals but only %d links",
			ErrStructuralInput, terminalCount, len(links),
		)
	}

	w := newWiring(terminalCount, switchCount)

	var cursor TerminalIndex

	for position, link := range links {
		next, err := w.apply(position, link, cursor)
		if err != nil {
			return nil, nil, err
		}

		cursor = next
	}

	if int(cursor) != terminalCount {
		return nil, nil, fmt.Errorf(
			"%w: %d terminal links declared but topology has %d terminals",
			ErrStructuralInput, cursor, terminalCount,
		)
	}

	return w.ports, w.attachments, nil
}

// apply wires a single link and returns the terminal cursor for the next link.
func (w *wiring) apply(position int, link LinkRecord, cursor TerminalIndex) (TerminalIndex, error) {
	switch kind := Classify(link); kind {
	case LinkKindTerminalSwitch, LinkKindSwitchTerminal:
		s, err := w.switchIndex(position, link, kind.switchSide(link))
		if err != nil {
			return cursor, err
		}

		if int(cursor) >= len(w.attachments) {
			return cursor, fmt.Errorf(
				"%w: link %d (%s) attaches terminal %d but topology has %d terminals",
				ErrStructuralInput, position, link, cursor, len(w.attachments),
			)
		}

		port := w.ports[s].add(terminalPeer(cursor))

		w.attachments[cursor] = TerminalAttachment{
			Switch:  s,
			Port:    port,
			Ordinal: w.ports[s].terminals,
		}

		return cursor + 1, nil
	case LinkKindSwitchSwitch:
		from, err := w.switchIndex(position, link, link.From)
		if err != nil {
			return cursor, err
		}

		to, err := w.switchIndex(position, link, link.To)
		if err != nil {
			return cursor, err
		}

		// both peers are recorded as of the start of this link, before either side appends
		fromPort, toPort := len(w.ports[from].Bindings), len(w.ports[to].Bindings)

		w.ports[from].add(switchPeer(to, toPort))
		w.ports[to].add(switchPeer(from, fromPort))

		return cursor, nil
	default:
		return cursor, fmt.Errorf(
			"%w: link %d has unsupported endpoint kinds %q and %q",
			ErrStructuralInput, position, link.From.Kind, link.To.Kind,
		)
	}
}

func (w *wiring) switchIndex(position int, link LinkRecord, e Endpoint) (SwitchIndex, error) {
	if e.Index < 0 || e.Index >= len(w.ports) {
		return 0, fmt.Errorf(
			"%w: link %d (%s) references switch %d but topology has %d switches",
			ErrStructuralInput, position, link, e.Index, len(w.ports),
		)
	}

	return SwitchIndex(e.Index), nil
}
