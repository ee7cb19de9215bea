package usecase

import (
	"time"

	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

type Usecase struct {
	ledgerDg datagateway.LedgerDataGateway
	operator keypair.PublicKey
	settings Settings
	now      func() time.Time
}

type Option func(*Usecase)

// WithClock sets the clock used by the mint preflight checks.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(ledgerDg datagateway.LedgerDataGateway, operator keypair.PublicKey, settings Settings, opts ...Option) *Usecase {
	u := &Usecase{
		ledgerDg: ledgerDg,
		operator: operator,
		settings: settings,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Operator returns the address every stage is signed and paid by.
func (u *Usecase) Operator() keypair.PublicKey {
	return u.operator
}

// Settings returns the workflow settings.
func (u *Usecase) Settings() Settings {
	return u.settings
}
