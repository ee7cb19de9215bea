package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
)

type MachineResult struct {
	Machine    *entity.Machine
	Submission *entity.Submission
}

// CreateMachine initializes a machine issuing items of collection.
func (u *Usecase) CreateMachine(ctx context.Context, collection keypair.PublicKey) (*MachineResult, error) {
	if collection.IsZero() {
		return nil, errors.Wrap(errs.ArgumentRequired, "collection address is required")
	}
	if err := u.settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	machine, submission, err := u.ledgerDg.CreateMachine(ctx, datagateway.CreateMachineParams{
		Authority:                 u.operator,
		Collection:                collection,
		CollectionUpdateAuthority: u.operator,
		Symbol:                    u.settings.Machine.Symbol,
		ItemsAvailable:            u.settings.Machine.ItemsAvailable,
		SellerFeeBasisPoints:      u.settings.Machine.SellerFeeBasisPoints,
		MaxEditionSupply:          u.settings.Machine.MaxEditionSupply,
		IsMutable:                 u.settings.Machine.IsMutable,
		Creators: []entity.Creator{
			{Address: u.operator, Share: 100},
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't create machine for collection %s", collection)
	}

	logger.InfoContext(ctx, "Created machine",
		slogx.Stringer("machine", machine.Address),
		slogx.Stringer("collection", collection),
		slogx.Uint64("items_available", machine.ItemsAvailable),
	)
	return &MachineResult{
		Machine:    machine,
		Submission: submission,
	}, nil
}

// getOwnedMachine fetches the machine and checks the operator is its authority.
func (u *Usecase) getOwnedMachine(ctx context.Context, address keypair.PublicKey) (*entity.Machine, error) {
	if address.IsZero() {
		return nil, errors.Wrap(errs.ArgumentRequired, "machine address is required")
	}
	machine, err := u.ledgerDg.GetMachine(ctx, address)
	if err != nil {
		return nil, errors.Wrapf(err, "can't get machine %s", address)
	}
	if machine.Authority != u.operator {
		return nil, errors.Wrapf(errs.ValidationFailure, "machine %s is owned by %s", address, machine.Authority)
	}
	return machine, nil
}
