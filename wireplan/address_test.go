package wireplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, s string) Address {
	t.Helper()

	a, err := ParseAddress(s)
	require.NoError(t, err)

	return a
}

func TestAddress_Renderings(t *testing.T) {
	a := mustAddress(t, "10.1.1.1")

	require.Equal(t, Address(0x0a010101), a)
	require.Equal(t, "10.1.1.1", a.String())
	require.Equal(t, "0x0a010101", a.Hex())
	require.Equal(t, "0x00000000", Address(0).Hex())
	require.Equal(t, "0xffffffff", Address(0xffffffff).Hex())
}

func TestParseHexAddress_RoundTrip(t *testing.T) {
	for _, v := range []Address{0, 1, 0x0a010101, 0x0a010201, 0x7fffffff, 0xffffffff} {
		got, err := ParseHexAddress(v.Hex())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	got, err := ParseHexAddress("0x00000000")
	require.NoError(t, err)
	require.Equal(t, Address(0), got)
}

func TestParseHexAddress_Invalid(t *testing.T) {
	for _, s := range []string{"", "0x", "0a010101", "0x0a0101", "0x0a01010101", "0x0a01010g"} {
		_, err := ParseHexAddress(s)
		require.ErrorIs(t, err, ErrConfig, s)
	}
}

func TestNewAddressBase(t *testing.T) {
	b, err := NewAddressBase("10.1.1.0", 24)
	require.NoError(t, err)
	require.Equal(t, "10.1.1.0/24", b.String())
	require.Equal(t, b, DefaultAddressBase())

	_, err = NewAddressBase("10.1.1.1", 24)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewAddressBase("10.1.1.0", 31)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewAddressBase("10.1.1.0", 0)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewAddressBase("fe80::1", 24)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewAddressBase("not-an-address", 24)
	require.ErrorIs(t, err, ErrConfig)
}

func TestPlanAddresses_BlocksFollowSwitchOrder(t *testing.T) {
	ports, attachments, err := Resolve([]LinkRecord{
		link(terminal(), sw(1)),
		link(terminal(), sw(0)),
		link(sw(0), sw(1)),
		link(sw(0), terminal()),
	}, 3, 2)
	require.NoError(t, err)

	base, err := NewAddressBase("192.168.0.0", 24)
	require.NoError(t, err)

	blocks, terminals, err := PlanAddresses(ports, attachments, 2, base)
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	require.Equal(t, "192.168.0.0/24", blocks[0].String())
	require.Equal(t, 2, blocks[0].Hosts)
	require.Equal(t, "192.168.1.0/24", blocks[1].String())
	require.Equal(t, 1, blocks[1].Hosts)
	require.Less(t, blocks[0].Broadcast(), blocks[1].Network)

	// switch 0's terminals in ordinal order, terminal 1 first
	require.Equal(t, "192.168.0.1", terminals[1].Address.String())
	require.Equal(t, "192.168.0.2", terminals[2].Address.String())
	require.Equal(t, "192.168.1.1", terminals[0].Address.String())

	for idx, rt := range terminals {
		require.Equal(t, TerminalIndex(idx), rt.Terminal)
		require.Equal(t, attachments[idx], rt.Attachment)
		require.True(t, blocks[rt.Attachment.Switch].Contains(rt.Address))
	}
}

func TestPlanAddresses_SwitchWithoutTerminalsSkipsItsSlot(t *testing.T) {
	ports, attachments, err := Resolve([]LinkRecord{
		link(terminal(), sw(0)),
		link(sw(0), sw(1)),
		link(sw(1), sw(2)),
		link(terminal(), sw(2)),
	}, 2, 3)
	require.NoError(t, err)

	blocks, terminals, err := PlanAddresses(ports, attachments, 3, DefaultAddressBase())
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	require.Equal(t, SwitchIndex(0), blocks[0].Switch)
	require.Equal(t, "10.1.1.0/24", blocks[0].String())
	require.Equal(t, SwitchIndex(2), blocks[1].Switch)
	require.Equal(t, "10.1.3.0/24", blocks[1].String())

	require.Equal(t, "10.1.1.1", terminals[0].Address.String())
	require.Equal(t, "10.1.3.1", terminals[1].Address.String())
}

func TestPlanAddresses_BlocksDisjointAndIncreasing(t *testing.T) {
	topology, err := GenerateTree(TreeOptions{Depth: 3, Fanout: 4, TerminalsPerLeaf: 5})
	require.NoError(t, err)

	ports, attachments, err := Resolve(topology.Links(), topology.Terminals, topology.Switches)
	require.NoError(t, err)

	base, err := NewAddressBase("172.16.0.0", 28)
	require.NoError(t, err)

	blocks, terminals, err := PlanAddresses(ports, attachments, topology.Switches, base)
	require.NoError(t, err)

	for idx := 1; idx < len(blocks); idx++ {
		require.Less(t, blocks[idx-1].Switch, blocks[idx].Switch)
		require.Less(t, blocks[idx-1].Broadcast(), blocks[idx].Network)
	}

	seen := map[Address]bool{}

	for _, rt := range terminals {
		require.False(t, seen[rt.Address], rt.Address.String())
		seen[rt.Address] = true
	}

	require.Len(t, seen, topology.Terminals)
}

func TestPlanAddresses_AddressSpaceErrors(t *testing.T) {
	ports, attachments, err := Resolve([]LinkRecord{
		link(terminal(), sw(0)),
		link(terminal(), sw(0)),
		link(terminal(), sw(0)),
	}, 3, 1)
	require.NoError(t, err)

	base, err := NewAddressBase("10.0.0.0", 30)
	require.NoError(t, err)

	_, _, err = PlanAddresses(ports, attachments, 1, base)
	require.ErrorIs(t, err, ErrAddressSpace)

	ports, attachments, err = Resolve([]LinkRecord{
		link(terminal(), sw(0)),
		link(terminal(), sw(1)),
	}, 2, 2)
	require.NoError(t, err)

	base, err = NewAddressBase("255.255.255.0", 24)
	require.NoError(t, err)

	_, _, err = PlanAddresses(ports, attachments, 2, base)
	require.ErrorIs(t, err, ErrAddressSpace)
}

func TestPlanAddresses_InvariantViolations(t *testing.T) {
	ports, attachments, err := Resolve([]LinkRecord{
		link(terminal(), sw(0)),
		link(sw(0), sw(1)),
	}, 1, 2)
	require.NoError(t, err)

	_, _, err = PlanAddresses(ports, attachments, 3, DefaultAddressBase())
	require.ErrorIs(t, err, ErrInvariantViolation)

	_, _, err = PlanAddresses(ports, []TerminalAttachment{{Switch: 1, Port: 0, Ordinal: 1}}, 2, DefaultAddressBase())
	require.ErrorIs(t, err, ErrInvariantViolation)
	require.ErrorContains(t, err, "received no address block")

	_, _, err = PlanAddresses(ports, []TerminalAttachment{{Switch: 5, Port: 0, Ordinal: 1}}, 2, DefaultAddressBase())
	require.ErrorIs(t, err, ErrInvariantViolation)

	_, _, err = PlanAddresses(ports, []TerminalAttachment{{Switch: 0, Port: 0, Ordinal: 2}}, 2, DefaultAddressBase())
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestAddressBlock_Host(t *testing.T) {
	b := AddressBlock{Network: mustAddress(t, "10.1.2.0"), PrefixLength: 24, Hosts: 2}

	first, err := b.Host(1)
	require.NoError(t, err)
	require.Equal(t, "10.1.2.1", first.String())

	_, err = b.Host(0)
	require.ErrorIs(t, err, ErrInvariantViolation)

	_, err = b.Host(3)
	require.ErrorIs(t, err, ErrInvariantViolation)

	require.Equal(t, "10.1.2.255", b.Broadcast().String())
	require.True(t, b.Contains(first))
	require.False(t, b.Contains(mustAddress(t, "10.1.3.0")))
}
