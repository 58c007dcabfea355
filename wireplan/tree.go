package wireplan

import (
	"fmt"
)

// TreeOptions describes a tree topology: Depth levels of switches, each non-leaf switch having
// Fanout child switches, and TerminalsPerLeaf terminals on every leaf switch.
type TreeOptions struct {
	Depth            int
	Fanout           int
	TerminalsPerLeaf int
}

// GenerateTree builds a tree topology. Switches are numbered breadth first from the root
// (switch 0). Parent to child switch links are declared first, in breadth first order, then the
// terminal links of each leaf in leaf order.
func GenerateTree(opts TreeOptions) (*Topology, error) {
	if opts.Depth < 1 {
		return nil, fmt.Errorf("%w: tree depth %d must be at least 1", ErrTopology, opts.Depth)
	}

	if opts.Depth > 1 && opts.Fanout < 1 {
		return nil, fmt.Errorf("%w: tree fanout %d must be at least 1", ErrTopology, opts.Fanout)
	}

	if opts.TerminalsPerLeaf < 1 {
		return nil, fmt.Errorf(
			"%w: terminals per leaf %d must be at least 1", ErrTopology, opts.TerminalsPerLeaf,
		)
	}

	t := &Topology{}

	// level holds the switch indexes of the level being expanded
	level := []int{0}
	t.Switches = 1

	for depth := 1; depth < opts.Depth; depth++ {
		next := make([]int, 0, len(level)*opts.Fanout)

		for _, parent := range level {
			for i := 0; i < opts.Fanout; i++ {
				child := t.Switches
				t.Switches++

				t.LinkRecords = append(t.LinkRecords, LinkRecord{
					From: Endpoint{Kind: KindSwitch, Index: parent},
					To:   Endpoint{Kind: KindSwitch, Index: child},
				})

				next = append(next, child)
			}
		}

		level = next
	}

	for _, leaf := range level {
		for i := 0; i < opts.TerminalsPerLeaf; i++ {
			t.LinkRecords = append(t.LinkRecords, LinkRecord{
				From: Endpoint{Kind: KindTerminal},
				To:   Endpoint{Kind: KindSwitch, Index: leaf},
			})
			t.Terminals++
		}
	}

	return t, nil
}
