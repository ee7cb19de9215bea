package entity

import (
	"time"

	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

const (
	GuardStartDate  = "startDate"
	GuardMintLimit  = "mintLimit"
	GuardSolPayment = "solPayment"
)

// GuardSet is the set of access rules attached to a machine. A nil rule is disabled.
type GuardSet struct {
	StartDate  *StartDateGuard
	MintLimit  *MintLimitGuard
	SolPayment *SolPaymentGuard
}

// StartDateGuard forbids minting before Date.
type StartDateGuard struct {
	Date time.Time
}

// MintLimitGuard caps the number of mints per identity. ID scopes the counter.
type MintLimitGuard struct {
	ID    uint8
	Limit uint16
}

// SolPaymentGuard charges Lamports per mint, paid to Destination.
type SolPaymentGuard struct {
	Lamports    uint64
	Destination keypair.PublicKey
}

// Names returns the names of the enabled rules.
func (g GuardSet) Names() []string {
	names := make([]string, 0, 3)
	if g.StartDate != nil {
		names = append(names, GuardStartDate)
	}
	if g.MintLimit != nil {
		names = append(names, GuardMintLimit)
	}
	if g.SolPayment != nil {
		names = append(names, GuardSolPayment)
	}
	return names
}

// Count returns the number of enabled rules.
func (g GuardSet) Count() int {
	return len(g.Names())
}

// IsEmpty reports whether no rule is enabled.
func (g GuardSet) IsEmpty() bool {
	return g.Count() == 0
}
