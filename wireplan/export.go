package wireplan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanView is the exported form of a plan -- what device wiring and flow table synthesis
// consume.
type PlanView struct {
	Switches  []SwitchView   `json:"switches"  yaml:"switches"`
	Terminals []TerminalView `json:"terminals" yaml:"terminals"`
}

// SwitchView is one switch's ports in port order.
type SwitchView struct {
	Index  SwitchIndex `json:"index"  yaml:"index"`
	Labels []string    `json:"labels" yaml:"labels"`
	Ports  []PortView  `json:"ports"  yaml:"ports"`
}

// PortView references the device on the far side of a port; exactly one of Terminal or
// PeerSwitch/PeerPort is set.
type PortView struct {
	Port       int            `json:"port"                 yaml:"port"`
	Label      string         `json:"label"                yaml:"label"`
	Terminal   *TerminalIndex `json:"terminal,omitempty"   yaml:"terminal,omitempty"`
	PeerSwitch *SwitchIndex   `json:"peerSwitch,omitempty" yaml:"peerSwitch,omitempty"`
	PeerPort   *int           `json:"peerPort,omitempty"   yaml:"peerPort,omitempty"`
}

func (pv PortView) clone() PortView {
	out := PortView{Port: pv.Port, Label: pv.Label}

	if pv.Terminal != nil {
		terminal := *pv.Terminal
		out.Terminal = &terminal
	}

	if pv.PeerSwitch != nil {
		peerSwitch := *pv.PeerSwitch
		out.PeerSwitch = &peerSwitch
	}

	if pv.PeerPort != nil {
		peerPort := *pv.PeerPort
		out.PeerPort = &peerPort
	}

	return out
}

// TerminalView is a terminal's attachment and its address. Address is the hex form flow
// tables use, Dotted the human readable one.
type TerminalView struct {
	Index   TerminalIndex `json:"index"   yaml:"index"`
	Switch  SwitchIndex   `json:"switch"  yaml:"switch"`
	Port    int           `json:"port"    yaml:"port"`
	Ordinal int           `json:"ordinal" yaml:"ordinal"`
	Address string        `json:"address" yaml:"address"`
	Dotted  string        `json:"dotted"  yaml:"dotted"`
}

// Export renders the port table and resolved terminals into a PlanView. Inputs come from
// Resolve and PlanAddresses; a terminal pointing at a switch outside the table is a defect and
// panics.
func Export(table SwitchPortTable, terminals []ResolvedTerminal) PlanView {
	view := PlanView{
		Switches:  make([]SwitchView, len(table)),
		Terminals: make([]TerminalView, len(terminals)),
	}

	for idx, ports := range table {
		sv := SwitchView{
			Index:  SwitchIndex(idx),
			Labels: ports.Labels(),
			Ports:  make([]PortView, len(ports.Bindings)),
		}

		for portIdx, binding := range ports.Bindings {
			sv.Ports[portIdx] = exportPort(binding)
		}

		view.Switches[idx] = sv
	}

	for idx, t := range terminals {
		s := t.Attachment.Switch
		if s < 0 || int(s) >= len(table) {
			panic(fmt.Sprintf(
				"%s: terminal %d attached to switch %d outside port table of %d switches",
				ErrInvariantViolation, t.Terminal, s, len(table),
			))
		}

		view.Terminals[idx] = TerminalView{
			Index:   t.Terminal,
			Switch:  s,
			Port:    t.Attachment.Port,
			Ordinal: t.Attachment.Ordinal,
			Address: t.Address.Hex(),
			Dotted:  t.Address.String(),
		}
	}

	return view
}

func exportPort(b PortBinding) PortView {
	pv := PortView{
		Port:  b.Port,
		Label: b.Label(),
	}

	if b.Peer.Kind == PeerSwitch {
		peerSwitch, peerPort := b.Peer.Switch, b.Peer.Port
		pv.PeerSwitch = &peerSwitch
		pv.PeerPort = &peerPort
	} else {
		terminal := b.Peer.Terminal
		pv.Terminal = &terminal
	}

	return pv
}

// Encode serializes the view to w as yaml or json.
func (v PlanView) Encode(w io.Writer, useYAML bool) error {
	var (
		b   []byte
		err error
	)

	if useYAML {
		b, err = yaml.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "\t")
	}

	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

// WriteToFile stores the view to the file whose name is given, picking yaml or json from the
// file extension.
func (v PlanView) WriteToFile(filename string) error {
	useYAML, err := useYAMLForPath(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = v.Encode(f, useYAML)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// ReadPlanView loads a view previously written with WriteToFile.
func ReadPlanView(filename string) (PlanView, error) {
	useYAML, err := useYAMLForPath(filename)
	if err != nil {
		return PlanView{}, err
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return PlanView{}, err
	}

	var v PlanView

	if useYAML {
		err = yaml.Unmarshal(b, &v)
	} else {
		err = json.Unmarshal(b, &v)
	}

	if err != nil {
		return PlanView{}, err
	}

	return v, nil
}
