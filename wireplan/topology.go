package wireplan

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LinkSource is the ingest contract the compiler consumes -- device counts and an ordered,
// replayable link sequence.
type LinkSource interface {
	TerminalCount() int
	SwitchCount() int
	// Links returns the links in declaration order; every call returns a fresh copy.
	Links() []LinkRecord
}

// Topology is a topology file: device counts and the declared links.
type Topology struct {
	Terminals   int          `json:"terminals" yaml:"terminals"`
	Switches    int          `json:"switches"  yaml:"switches"`
	LinkRecords []LinkRecord `json:"links"     yaml:"links"`
}

// TerminalCount returns the number of terminals in the topology.
func (t *Topology) TerminalCount() int {
	return t.Terminals
}

// SwitchCount returns the number of switches in the topology.
func (t *Topology) SwitchCount() int {
	return t.Switches
}

// Links returns a copy of the declared links.
func (t *Topology) Links() []LinkRecord {
	return append([]LinkRecord(nil), t.LinkRecords...)
}

// deriveCounts fills in device counts left at zero: switches from the highest switch index
// referenced, terminals from the number of terminal bearing links.
func (t *Topology) deriveCounts() {
	if t.Switches == 0 {
		for _, link := range t.LinkRecords {
			for _, e := range []Endpoint{link.From, link.To} {
				if e.Kind == KindSwitch && e.Index+1 > t.Switches {
					t.Switches = e.Index + 1
				}
			}
		}
	}

	if t.Terminals == 0 {
		for _, link := range t.LinkRecords {
			if link.hasTerminal() {
				t.Terminals++
			}
		}
	}
}

// ParseTopology decodes a topology from b as yaml or json.
func ParseTopology(b []byte, useYAML bool) (*Topology, error) {
	t := &Topology{}

	var err error

	if useYAML {
		err = yaml.Unmarshal(b, t)
	} else {
		err = json.Unmarshal(b, t)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed decoding topology, err: %s", ErrTopology, err)
	}

	if t.Terminals < 0 || t.Switches < 0 {
		return nil, fmt.Errorf(
			"%w: negative device counts, terminals %d switches %d",
			ErrTopology, t.Terminals, t.Switches,
		)
	}

	if len(t.LinkRecords) == 0 {
		return nil, fmt.Errorf("%w: topology declares no links", ErrTopology)
	}

	if t.Terminals > len(t.LinkRecords) {
		return nil, fmt.Errorf(
			"%w: topology declares %d terminals but only %d links",
			ErrTopology, t.Terminals, len(t.LinkRecords),
		)
	}

	if t.Switches > MaxSwitches {
		return nil, fmt.Errorf(
			"%w: topology declares %d switches, at most %d are supported",
			ErrTopology, t.Switches, MaxSwitches,
		)
	}

	t.deriveCounts()

	return t, nil
}

// LoadTopology reads and decodes the topology file at the given path, yaml or json by extension.
func LoadTopology(filename string) (*Topology, error) {
	useYAML, err := useYAMLForPath(filename)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: failed reading topology file at path %q, err: %s", ErrTopology, filename, err,
		)
	}

	return ParseTopology(b, useYAML)
}

// WriteToFile stores the topology to the file whose name is given, yaml or json by extension.
func (t *Topology) WriteToFile(filename string) error {
	useYAML, err := useYAMLForPath(filename)
	if err != nil {
		return err
	}

	var b []byte

	if useYAML {
		b, err = yaml.Marshal(t)
	} else {
		b, err = json.MarshalIndent(t, "", "\t")
	}

	if err != nil {
		return err
	}

	return os.WriteFile(filename, b, 0o644) //nolint:gosec,gomnd
}
