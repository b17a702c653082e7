package fingerprint

import (
	"fmt"
	"strings"
)

// Mode selects the hashing strategy.
type Mode int

const (
	// ModeOrdered is sensitive to row order.
	ModeOrdered Mode = iota
	// ModeUnordered is invariant under row permutation.
	ModeUnordered
)

func (m Mode) String() string {
	switch m {
	case ModeOrdered:
		return "ordered"
	case ModeUnordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// ParseMode maps a user-supplied mode name to a Mode. The numeric aliases
// mirror the interactive menu, where 1 selects the order-dependent digest
// and 2 the order-independent one.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "ordered", "order-dependent", "dependent":
		return ModeOrdered, nil
	case "2", "unordered", "order-independent", "independent":
		return ModeUnordered, nil
	default:
		return ModeOrdered, fmt.Errorf("invalid fingerprint mode %q", s)
	}
}
