package wireplan

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

const (
	addressBits = 32
	addressSpan = uint64(1) << addressBits

	// a /31 or /32 block leaves no usable host addresses.
	maxPrefixLength = 30
)

// Address is an IPv4 address held as its 32-bit value.
type Address uint32

// String renders the address as a dotted quad.
func (a Address) String() string {
	var b [4]byte

	binary.BigEndian.PutUint32(b[:], uint32(a))

	return netip.AddrFrom4(b).String()
}

// Hex renders the address as fixed width, zero padded hex, e.g. 0x0a010101.
func (a Address) Hex() string {
	return fmt.Sprintf("0x%0*x", hexAddressWidth, uint32(a))
}

// ParseAddress parses a dotted quad IPv4 address.
func ParseAddress(s string) (Address, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid address %q, err: %s", ErrConfig, s, err)
	}

	if !addr.Is4() {
		return 0, fmt.Errorf("%w: address %q is not an ipv4 address", ErrConfig, s)
	}

	b := addr.As4()

	return Address(binary.BigEndian.Uint32(b[:])), nil
}

// ParseHexAddress parses the Hex form of an address back to its value.
func ParseHexAddress(s string) (Address, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok || len(digits) != hexAddressWidth {
		return 0, fmt.Errorf(
			"%w: hex address %q must be 0x followed by %d hex digits",
			ErrConfig, s, hexAddressWidth,
		)
	}

	v, err := strconv.ParseUint(digits, 16, addressBits)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex address %q, err: %s", ErrConfig, s, err)
	}

	return Address(v), nil
}

// AddressBase is where block allocation starts and how large each per-switch block is.
type AddressBase struct {
	Network      Address
	PrefixLength int
}

// DefaultAddressBase returns the 10.1.1.0/24 base.
func DefaultAddressBase() AddressBase {
	b, _ := NewAddressBase(BaseNetwork, PrefixLength)

	return b
}

// NewAddressBase returns an AddressBase for the given network and prefix length. The network
// must be aligned to the prefix length.
func NewAddressBase(network string, prefixLength int) (AddressBase, error) {
	if prefixLength < 1 || prefixLength > maxPrefixLength {
		return AddressBase{}, fmt.Errorf(
			"%w: prefix length %d must be between 1 and %d",
			ErrConfig, prefixLength, maxPrefixLength,
		)
	}

	addr, err := ParseAddress(network)
	if err != nil {
		return AddressBase{}, err
	}

	b := AddressBase{Network: addr, PrefixLength: prefixLength}

	if uint64(addr)%b.blockSize() != 0 {
		return AddressBase{}, fmt.Errorf(
			"%w: base network %s is not aligned to a /%d boundary",
			ErrConfig, addr, prefixLength,
		)
	}

	return b, nil
}

func (b AddressBase) String() string {
	return fmt.Sprintf("%s/%d", b.Network, b.PrefixLength)
}

func (b AddressBase) blockSize() uint64 {
	return uint64(1) << (addressBits - b.PrefixLength)
}

// AddressBlock is the contiguous range handed to the terminals of one switch.
type AddressBlock struct {
	Switch       SwitchIndex
	Network      Address
	PrefixLength int
	// Hosts is the number of terminals the block was allocated for.
	Hosts int
}

func (b AddressBlock) String() string {
	return fmt.Sprintf("%s/%d", b.Network, b.PrefixLength)
}

// Broadcast returns the last address of the block.
func (b AddressBlock) Broadcast() Address {
	return Address(uint64(b.Network) + (uint64(1) << (addressBits - b.PrefixLength)) - 1)
}

// Contains reports whether a falls inside the block.
func (b AddressBlock) Contains(a Address) bool {
	return a >= b.Network && a <= b.Broadcast()
}

// Host returns the address of the terminal with the given 1-based ordinal on the block's
// switch; ordinal 1 is the first host address after the network address.
func (b AddressBlock) Host(ordinal int) (Address, error) {
	if ordinal < 1 || ordinal > b.Hosts {
		return 0, fmt.Errorf(
			"%w: ordinal %d outside block %s of switch %d holding %d hosts",
			ErrInvariantViolation, ordinal, b, b.Switch, b.Hosts,
		)
	}

	return b.Network + Address(ordinal), nil
}

// ResolvedTerminal is a terminal, its attachment, and its final address.
type ResolvedTerminal struct {
	Terminal   TerminalIndex
	Attachment TerminalAttachment
	Address    Address
}

// PlanAddresses walks switches in index order and gives every switch with at least one
// terminal its own address block, then resolves each terminal's address from its switch's
// block and its ordinal. Every switch consumes one block sized slot of the address space, so
// blocks never overlap and always increase with switch index; switches without terminals leave
// their slot unused.
func PlanAddresses(
	table SwitchPortTable,
	attachments []TerminalAttachment,
	switchCount int,
	base AddressBase,
) ([]AddressBlock, []ResolvedTerminal, error) {
	if len(table) != switchCount {
		return nil, nil, fmt.Errorf(
			"%w: port table holds %d switches, expected %d",
			ErrInvariantViolation, len(table), switchCount,
		)
	}

	blocks, blockBySwitch, err := allocateBlocks(table, base)
	if err != nil {
		return nil, nil, err
	}

	resolved := make([]ResolvedTerminal, len(attachments))

	for idx, attachment := range attachments {
		if attachment.Switch < 0 || int(attachment.Switch) >= switchCount {
			return nil, nil, fmt.Errorf(
				"%w: terminal %d attached to unknown switch %d",
				ErrInvariantViolation, idx, attachment.Switch,
			)
		}

		blockIdx := blockBySwitch[attachment.Switch]
		if blockIdx < 0 {
			return nil, nil, fmt.Errorf(
				"%w: terminal %d attached to switch %d which received no address block",
				ErrInvariantViolation, idx, attachment.Switch,
			)
		}

		addr, err := blocks[blockIdx].Host(attachment.Ordinal)
		if err != nil {
			return nil, nil, err
		}

		resolved[idx] = ResolvedTerminal{
			Terminal:   TerminalIndex(idx),
			Attachment: attachment,
			Address:    addr,
		}
	}

	return blocks, resolved, nil
}

// allocateBlocks returns the allocated blocks and, per switch, the position of its block or -1.
func allocateBlocks(table SwitchPortTable, base AddressBase) ([]AddressBlock, []int, error) {
	size := base.blockSize()
	usable := size - reservedHostsPerBlock

	blocks := make([]AddressBlock, 0, len(table))
	blockBySwitch := make([]int, len(table))

	cursor := uint64(base.Network)

	for idx, ports := range table {
		network := cursor
		cursor += size

		blockBySwitch[idx] = -1

		n := ports.TerminalCount()
		if n == 0 {
			continue
		}

		if cursor > addressSpan {
			return nil, nil, fmt.Errorf(
				"%w: no /%d block left for switch %d starting from %s",
				ErrAddressSpace, base.PrefixLength, idx, base,
			)
		}

		if uint64(n) > usable {
			return nil, nil, fmt.Errorf(
				"%w: switch %d has %d terminals but a /%d block holds %d hosts",
				ErrAddressSpace, idx, n, base.PrefixLength, usable,
			)
		}

		blockBySwitch[idx] = len(blocks)

		blocks = append(blocks, AddressBlock{
			Switch:       SwitchIndex(idx),
			Network:      Address(network),
			PrefixLength: base.PrefixLength,
			Hosts:        n,
		})
	}

	return blocks, blockBySwitch, nil
}
