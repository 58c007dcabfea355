package wireplan

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Plan is a compiled wiring and addressing plan. It is built once by Compile and never changes;
// accessors hand out copies.
type Plan struct {
	base        AddressBase
	ports       SwitchPortTable
	attachments []TerminalAttachment
	blocks      []AddressBlock
	terminals   []ResolvedTerminal
	view        PlanView
}

// Compile resolves the links of src into switch port tables and terminal attachments, plans
// terminal addresses from base, and exports the result.
func Compile(src LinkSource, base AddressBase) (*Plan, error) {
	terminalCount, switchCount := src.TerminalCount(), src.SwitchCount()

	ports, attachments, err := Resolve(src.Links(), terminalCount, switchCount)
	if err != nil {
		return nil, err
	}

	blocks, terminals, err := PlanAddresses(ports, attachments, switchCount, base)
	if err != nil {
		return nil, err
	}

	return &Plan{
		base:        base,
		ports:       ports,
		attachments: attachments,
		blocks:      blocks,
		terminals:   terminals,
		view:        Export(ports, terminals),
	}, nil
}

// Base returns the address base the plan was compiled with.
func (p *Plan) Base() AddressBase {
	return p.base
}

// Ports returns the switch port table.
func (p *Plan) Ports() SwitchPortTable {
	return p.ports.clone()
}

// Attachments returns each terminal's attachment, indexed by terminal.
func (p *Plan) Attachments() []TerminalAttachment {
	return slices.Clone(p.attachments)
}

// Blocks returns the allocated address blocks in switch order.
func (p *Plan) Blocks() []AddressBlock {
	return slices.Clone(p.blocks)
}

// Terminals returns the resolved terminals, indexed by terminal.
func (p *Plan) Terminals() []ResolvedTerminal {
	return slices.Clone(p.terminals)
}

// View returns the exported form of the plan.
func (p *Plan) View() PlanView {
	v := PlanView{
		Switches:  make([]SwitchView, len(p.view.Switches)),
		Terminals: slices.Clone(p.view.Terminals),
	}

	for idx, sv := range p.view.Switches {
		v.Switches[idx] = SwitchView{
			Index:  sv.Index,
			Labels: slices.Clone(sv.Labels),
			Ports:  make([]PortView, len(sv.Ports)),
		}

		for portIdx, pv := range sv.Ports {
			v.Switches[idx].Ports[portIdx] = pv.clone()
		}
	}

	return v
}

// Summary returns one line per terminal ("t<k>: <switch> <port> <ordinal> <address>") followed
// by one line per switch ("s<k>: <labels>").
func (p *Plan) Summary() []string {
	lines := make([]string, 0, len(p.terminals)+len(p.ports))

	for _, t := range p.terminals {
		lines = append(lines, fmt.Sprintf(
			"%s%d: %d %d %d %s",
			terminalLabelPrefix,
			t.Terminal,
			t.Attachment.Switch,
			t.Attachment.Port,
			t.Attachment.Ordinal,
			t.Address,
		))
	}

	for idx, sp := range p.ports {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf(
			"%s%d: %s", switchLabelPrefix, idx, strings.Join(sp.Labels(), " "),
		)))
	}

	return lines
}
