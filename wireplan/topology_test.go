package wireplan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoSwitchTopologyYAML = `
terminals: 2
switches: 2
links:
  - from: {kind: terminal}
    to: {kind: switch, index: 0}
  - from: {kind: switch, index: 0}
    to: {kind: switch, index: 1}
  - from: {kind: switch, index: 1}
    to: {kind: terminal}
`

func TestParseTopology_YAML(t *testing.T) {
	topology, err := ParseTopology([]byte(twoSwitchTopologyYAML), true)
	require.NoError(t, err)

	require.Equal(t, 2, topology.TerminalCount())
	require.Equal(t, 2, topology.SwitchCount())
	require.Equal(t, []LinkRecord{
		link(terminal(), sw(0)),
		link(sw(0), sw(1)),
		link(sw(1), terminal()),
	}, topology.Links())
}

func TestParseTopology_JSON(t *testing.T) {
	topology, err := ParseTopology([]byte(`{
		"links": [
			{"from": {"kind": "switch", "index": 3}, "to": {"kind": "terminal"}},
			{"from": {"kind": "terminal"}, "to": {"kind": "switch", "index": 1}}
		]
	}`), false)
	require.NoError(t, err)

	// counts left out are derived from the links
	require.Equal(t, 2, topology.Terminals)
	require.Equal(t, 4, topology.Switches)
}

func TestParseTopology_KeepsUnknownKinds(t *testing.T) {
	topology, err := ParseTopology([]byte(`
links:
  - from: {kind: terminal}
    to: {kind: terminal}
  - from: {kind: router, index: 0}
    to: {kind: switch, index: 0}
`), true)
	require.NoError(t, err)

	require.Equal(t, EndpointKind("router"), topology.LinkRecords[1].From.Kind)

	_, err = Compile(topology, DefaultAddressBase())
	require.ErrorIs(t, err, ErrStructuralInput)
}

func TestParseTopology_Errors(t *testing.T) {
	_, err := ParseTopology([]byte("links: [this is: not valid"), true)
	require.ErrorIs(t, err, ErrTopology)

	_, err = ParseTopology([]byte("terminals: 1\nswitches: 1\n"), true)
	require.ErrorIs(t, err, ErrTopology)
	require.ErrorContains(t, err, "no links")

	_, err = ParseTopology([]byte(`{"terminals": -1, "links": []}`), false)
	require.ErrorIs(t, err, ErrTopology)

	oversized := `
terminals: 4611686018427387904
links:
  - from: {kind: terminal}
    to: {kind: switch, index: 0}
`
	_, err = ParseTopology([]byte(oversized), true)
	require.ErrorIs(t, err, ErrTopology)
	require.ErrorContains(t, err, "only 1 links")

	_, err = ParseTopology([]byte(`
switches: 4611686018427387904
links:
  - from: {kind: terminal}
    to: {kind: switch, index: 0}
`), true)
	require.ErrorIs(t, err, ErrTopology)
	require.ErrorContains(t, err, "at most 1048576")
}

func TestTopology_LinksIsReplayable(t *testing.T) {
	topology, err := ParseTopology([]byte(twoSwitchTopologyYAML), true)
	require.NoError(t, err)

	first := topology.Links()
	first[0].From.Kind = "mutated"

	require.Equal(t, KindTerminal, topology.Links()[0].From.Kind)
}

func TestLoadTopology(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "topology.yml")
	require.NoError(t, os.WriteFile(path, []byte(twoSwitchTopologyYAML), 0o600))

	topology, err := LoadTopology(path)
	require.NoError(t, err)
	require.Len(t, topology.LinkRecords, 3)

	_, err = LoadTopology(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrTopology)

	_, err = LoadTopology(filepath.Join(dir, "topology.txt"))
	require.ErrorIs(t, err, ErrConfig)
}

func TestTopology_WriteToFileRoundTrip(t *testing.T) {
	topology, err := GenerateTree(TreeOptions{Depth: 3, Fanout: 2, TerminalsPerLeaf: 2})
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"tree.yaml", "tree.json"} {
		path := filepath.Join(dir, name)

		require.NoError(t, topology.WriteToFile(path))

		got, err := LoadTopology(path)
		require.NoError(t, err)
		require.Equal(t, topology, got)
	}
}
