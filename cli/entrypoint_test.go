package cli

import (
	"path/filepath"
	"testing"

	"github.com/carlmontanari/wireplan/wireplan"
	"github.com/stretchr/testify/require"
)

func TestEntrypoint_GenerateThenCompile(t *testing.T) {
	dir := t.TempDir()

	topologyPath := filepath.Join(dir, "tree.yaml")
	planPath := filepath.Join(dir, "plan.yaml")

	err := Entrypoint().Run([]string{
		"wireplan", "generate",
		"--depth", "2",
		"--fanout", "3",
		"--terminals-per-leaf", "2",
		"--output", topologyPath,
		"--log-level", "error",
	})
	require.NoError(t, err)

	topology, err := wireplan.LoadTopology(topologyPath)
	require.NoError(t, err)
	require.Equal(t, 4, topology.Switches)
	require.Equal(t, 6, topology.Terminals)

	err = Entrypoint().Run([]string{
		"wireplan", "compile",
		"--topology", topologyPath,
		"--output", planPath,
		"--base", "10.20.0.0",
		"--prefix-length", "28",
		"--log-level", "error",
	})
	require.NoError(t, err)

	view, err := wireplan.ReadPlanView(planPath)
	require.NoError(t, err)

	require.Len(t, view.Switches, 4)
	require.Equal(t, []string{"s1_0", "s2_0", "s3_0"}, view.Switches[0].Labels)
	require.Equal(t, []string{"s0_0", "t0", "t1"}, view.Switches[1].Labels)
	require.Len(t, view.Terminals, 6)

	// switch 0 has no terminals so the first block goes to switch 1, one /28 in
	require.Equal(t, "10.20.0.17", view.Terminals[0].Dotted)
	require.Equal(t, "0x0a140011", view.Terminals[0].Address)
	require.Equal(t, "10.20.0.33", view.Terminals[2].Dotted)
}

func TestEntrypoint_CompileRejectsBadBase(t *testing.T) {
	dir := t.TempDir()

	err := Entrypoint().Run([]string{
		"wireplan", "compile",
		"--topology", filepath.Join(dir, "tree.yaml"),
		"--output", filepath.Join(dir, "plan.yaml"),
		"--base", "10.20.0.1",
		"--log-level", "error",
	})
	require.ErrorIs(t, err, wireplan.ErrConfig)
}

func TestEntrypoint_GenerateRejectsBadOptions(t *testing.T) {
	err := Entrypoint().Run([]string{
		"wireplan", "generate",
		"--depth", "0",
		"--output", filepath.Join(t.TempDir(), "tree.yaml"),
		"--log-level", "error",
	})
	require.ErrorIs(t, err, wireplan.ErrTopology)
}
