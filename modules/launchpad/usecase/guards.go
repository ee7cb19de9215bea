package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
)

type GuardsResult struct {
	Machine    keypair.PublicKey
	Guards     entity.GuardSet
	Submission *entity.Submission
}

// Guards returns the rules attached by ConfigureGuards. Payments go to the operator.
func (u *Usecase) Guards() entity.GuardSet {
	return entity.GuardSet{
		StartDate: &entity.StartDateGuard{
			Date: u.settings.Guards.StartDate,
		},
		MintLimit: &entity.MintLimitGuard{
			ID:    u.settings.Guards.MintLimitID,
			Limit: u.settings.Guards.MintLimit,
		},
		SolPayment: &entity.SolPaymentGuard{
			Lamports:    u.settings.Guards.SolPayment,
			Destination: u.operator,
		},
	}
}

// ConfigureGuards replaces the guard set of the machine.
func (u *Usecase) ConfigureGuards(ctx context.Context, machineAddress keypair.PublicKey) (*GuardsResult, error) {
	machine, err := u.getOwnedMachine(ctx, machineAddress)
	if err != nil {
		return nil, err
	}

	guards := u.Guards()
	submission, err := u.ledgerDg.UpdateGuards(ctx, datagateway.UpdateGuardsParams{
		Machine: machine.Address,
		Guards:  guards,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't update guards of machine %s", machine.Address)
	}

	logger.InfoContext(ctx, "Updated guards",
		slogx.Stringer("machine", machine.Address),
		slogx.Any("guards", guards.Names()),
		slogx.Stringer("signature", submission.Signature),
	)
	return &GuardsResult{
		Machine:    machine.Address,
		Guards:     guards,
		Submission: submission,
	}, nil
}
