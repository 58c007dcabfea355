package wireplan

import (
	"errors"
)

// ErrStructuralInput is returned when the declared links cannot be wired -- an unsupported
// endpoint kind pair, a switch index out of range, or terminal links that do not match the
// declared terminal count. The whole resolution fails, no partial tables are produced.
var ErrStructuralInput = errors.New("errStructuralInput")

// ErrInvariantViolation indicates a defect: state reached the address planner or exporter that
// the wiring resolver guarantees can not exist.
var ErrInvariantViolation = errors.New("errInvariantViolation")

// ErrAddressSpace is returned when an address block can not hold a switch's terminals or the
// allocation cursor runs out of the 32-bit address space.
var ErrAddressSpace = errors.New("errAddressSpace")

// ErrTopology is a generic error for topology files that can not be read, decoded, or generated.
var ErrTopology = errors.New("errTopology")

// ErrConfig is a generic error for invalid configuration values.
var ErrConfig = errors.New("errConfig")
