package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/lamports"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
)

type MintResult struct {
	Machine        keypair.PublicKey
	Minted         *entity.Minted
	ItemsRemaining uint64
}

// MintItem mints the next item of the machine to the operator.
func (u *Usecase) MintItem(ctx context.Context, machineAddress keypair.PublicKey) (*MintResult, error) {
	machine, err := u.getOwnedMachine(ctx, machineAddress)
	if err != nil {
		return nil, err
	}
	if err := u.preflightMint(ctx, machine); err != nil {
		return nil, errors.Wrapf(err, "can't mint from machine %s", machine.Address)
	}

	minted, err := u.ledgerDg.Mint(ctx, datagateway.MintParams{
		Machine:                   machine.Address,
		Owner:                     u.operator,
		CollectionUpdateAuthority: u.operator,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't mint from machine %s", machine.Address)
	}

	// A failed refresh only costs the remaining count.
	remaining := machine.ItemsRemaining() - 1
	if refreshed, err := u.ledgerDg.GetMachine(ctx, machine.Address); err != nil {
		logger.WarnContext(ctx, "Can't refresh machine after mint", slogx.Error(err))
	} else {
		remaining = refreshed.ItemsRemaining()
	}

	logger.InfoContext(ctx, "Minted item",
		slogx.Stringer("machine", machine.Address),
		slogx.Stringer("item", minted.Address),
		slogx.String("name", minted.Item.Name),
		slogx.Uint64("items_remaining", remaining),
	)
	return &MintResult{
		Machine:        machine.Address,
		Minted:         minted,
		ItemsRemaining: remaining,
	}, nil
}

// preflightMint rejects mints the ledger would reject for a reason known locally.
// The mint limit counter lives on the ledger and is left to it.
func (u *Usecase) preflightMint(ctx context.Context, machine *entity.Machine) error {
	if machine.ItemsLoaded == 0 {
		return errors.Wrap(errs.SupplyExhausted, "inventory is empty")
	}
	if machine.ItemsMintable() == 0 {
		return errors.Wrapf(errs.SupplyExhausted, "all %d items are minted", machine.ItemsRedeemed)
	}
	if !machine.IsFullyLoaded() {
		return errors.Wrapf(errs.ValidationFailure, "%d of %d items loaded", machine.ItemsLoaded, machine.ItemsAvailable)
	}

	guards := machine.Guards
	if guards.StartDate != nil {
		if now := u.now(); now.Before(guards.StartDate.Date) {
			return errors.Wrapf(errs.GuardRejected, "%s: mint opens at %s", entity.GuardStartDate, guards.StartDate.Date.Format(time.RFC3339))
		}
	}
	if guards.SolPayment != nil {
		balance, err := u.ledgerDg.GetBalance(ctx, u.operator)
		if err != nil {
			return errors.Wrap(err, "can't get operator balance")
		}
		if balance < guards.SolPayment.Lamports {
			return errors.Wrapf(errs.InsufficientFunds, "%s: price is %s SOL, balance is %s SOL", entity.GuardSolPayment,
				lamports.ToSol(guards.SolPayment.Lamports), lamports.ToSol(balance))
		}
	}
	return nil
}
